package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/temirov/blogapi/internal/model"
)

// SessionStore is a mock implementation of model.SessionStore.
type SessionStore struct {
	mock.Mock
}

var _ model.SessionStore = (*SessionStore)(nil)

func (_m *SessionStore) Create(ctx context.Context, session model.Session) error {
	ret := _m.Called(ctx, session)
	return ret.Error(0)
}

func (_m *SessionStore) GetBySessionID(ctx context.Context, sessionID string) (model.Session, error) {
	ret := _m.Called(ctx, sessionID)

	var r0 model.Session
	if v, ok := ret.Get(0).(model.Session); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (_m *SessionStore) Revoke(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// NewSessionStore creates a mock bound to the test lifecycle.
func NewSessionStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *SessionStore {
	m := &SessionStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
