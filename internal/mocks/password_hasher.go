package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/temirov/blogapi/internal/model"
)

// PasswordHasher is a mock implementation of model.PasswordHasher.
type PasswordHasher struct {
	mock.Mock
}

var _ model.PasswordHasher = (*PasswordHasher)(nil)

func (_m *PasswordHasher) Hash(plaintext string) (string, error) {
	ret := _m.Called(plaintext)
	return ret.String(0), ret.Error(1)
}

func (_m *PasswordHasher) Verify(plaintext, digest string) (bool, error) {
	ret := _m.Called(plaintext, digest)
	return ret.Bool(0), ret.Error(1)
}

// NewPasswordHasher creates a mock bound to the test lifecycle.
func NewPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *PasswordHasher {
	m := &PasswordHasher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
