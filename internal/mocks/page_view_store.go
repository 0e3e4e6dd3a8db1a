package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/temirov/blogapi/internal/model"
)

// PageViewStore is a mock implementation of model.PageViewStore.
type PageViewStore struct {
	mock.Mock
}

var _ model.PageViewStore = (*PageViewStore)(nil)

func (_m *PageViewStore) Create(ctx context.Context, view model.PageView) error {
	ret := _m.Called(ctx, view)
	return ret.Error(0)
}

func (_m *PageViewStore) Count(ctx context.Context, filter model.PageViewFilter) (int, error) {
	ret := _m.Called(ctx, filter)
	return ret.Int(0), ret.Error(1)
}

func (_m *PageViewStore) ListInRange(ctx context.Context, filter model.PageViewFilter) ([]model.PageView, error) {
	ret := _m.Called(ctx, filter)

	var r0 []model.PageView
	if v, ok := ret.Get(0).([]model.PageView); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (_m *PageViewStore) CountByArticle(ctx context.Context, articleID uuid.UUID) (int, error) {
	ret := _m.Called(ctx, articleID)
	return ret.Int(0), ret.Error(1)
}

// NewPageViewStore creates a mock bound to the test lifecycle.
func NewPageViewStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *PageViewStore {
	m := &PageViewStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
