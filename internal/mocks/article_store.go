package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/temirov/blogapi/internal/model"
)

// ArticleStore is a mock implementation of model.ArticleStore.
type ArticleStore struct {
	mock.Mock
}

var _ model.ArticleStore = (*ArticleStore)(nil)

func (_m *ArticleStore) GetByID(ctx context.Context, id uuid.UUID, publishedOnly bool) (model.Article, error) {
	ret := _m.Called(ctx, id, publishedOnly)

	var r0 model.Article
	if v, ok := ret.Get(0).(model.Article); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (_m *ArticleStore) List(ctx context.Context, page model.Page, publishedOnly bool) ([]model.Article, error) {
	ret := _m.Called(ctx, page, publishedOnly)

	var r0 []model.Article
	if v, ok := ret.Get(0).([]model.Article); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (_m *ArticleStore) Count(ctx context.Context, search string, publishedOnly bool) (int, error) {
	ret := _m.Called(ctx, search, publishedOnly)
	return ret.Int(0), ret.Error(1)
}

func (_m *ArticleStore) Create(ctx context.Context, article model.Article) (model.Article, error) {
	ret := _m.Called(ctx, article)

	var r0 model.Article
	if v, ok := ret.Get(0).(model.Article); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (_m *ArticleStore) Update(ctx context.Context, article model.Article) (model.Article, error) {
	ret := _m.Called(ctx, article)

	var r0 model.Article
	if v, ok := ret.Get(0).(model.Article); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (_m *ArticleStore) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// NewArticleStore creates a mock bound to the test lifecycle.
func NewArticleStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *ArticleStore {
	m := &ArticleStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
