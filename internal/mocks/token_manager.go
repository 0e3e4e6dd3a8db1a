package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/temirov/blogapi/internal/model"
)

// TokenManager is a mock implementation of model.TokenManager.
type TokenManager struct {
	mock.Mock
}

var _ model.TokenManager = (*TokenManager)(nil)

func (_m *TokenManager) SignAccessToken(claims model.TokenClaims) (string, error) {
	ret := _m.Called(claims)
	return ret.String(0), ret.Error(1)
}

func (_m *TokenManager) SignRefreshToken(claims model.TokenClaims) (string, error) {
	ret := _m.Called(claims)
	return ret.String(0), ret.Error(1)
}

func (_m *TokenManager) VerifyAccessToken(token string) (model.TokenClaims, error) {
	ret := _m.Called(token)

	var r0 model.TokenClaims
	if v, ok := ret.Get(0).(model.TokenClaims); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (_m *TokenManager) VerifyRefreshToken(token string) (model.TokenClaims, error) {
	ret := _m.Called(token)

	var r0 model.TokenClaims
	if v, ok := ret.Get(0).(model.TokenClaims); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (_m *TokenManager) AccessTokenTTLSeconds() int {
	ret := _m.Called()
	return ret.Int(0)
}

func (_m *TokenManager) RefreshTokenTTLSeconds() int {
	ret := _m.Called()
	return ret.Int(0)
}

// NewTokenManager creates a mock bound to the test lifecycle.
func NewTokenManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *TokenManager {
	m := &TokenManager{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
