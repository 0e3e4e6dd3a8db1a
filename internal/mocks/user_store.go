// Package mocks provides testify mocks for the model interfaces used in
// unit tests.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/temirov/blogapi/internal/model"
)

// UserStore is a mock implementation of model.UserStore.
type UserStore struct {
	mock.Mock
}

var _ model.UserStore = (*UserStore)(nil)

func (_m *UserStore) GetByUsername(ctx context.Context, username string) (model.User, error) {
	ret := _m.Called(ctx, username)

	var r0 model.User
	if v, ok := ret.Get(0).(model.User); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (_m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	ret := _m.Called(ctx, id)

	var r0 model.User
	if v, ok := ret.Get(0).(model.User); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (_m *UserStore) List(ctx context.Context, page model.Page) ([]model.User, error) {
	ret := _m.Called(ctx, page)

	var r0 []model.User
	if v, ok := ret.Get(0).([]model.User); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (_m *UserStore) Count(ctx context.Context, search string) (int, error) {
	ret := _m.Called(ctx, search)
	return ret.Int(0), ret.Error(1)
}

func (_m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	ret := _m.Called(ctx, user)

	var r0 model.User
	if v, ok := ret.Get(0).(model.User); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (_m *UserStore) Update(ctx context.Context, user model.User) (model.User, error) {
	ret := _m.Called(ctx, user)

	var r0 model.User
	if v, ok := ret.Get(0).(model.User); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (_m *UserStore) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// NewUserStore creates a mock bound to the test lifecycle: expectations are
// asserted on cleanup.
func NewUserStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserStore {
	m := &UserStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
