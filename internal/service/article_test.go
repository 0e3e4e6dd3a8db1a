package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/temirov/blogapi/internal/logger"
	"github.com/temirov/blogapi/internal/mocks"
	"github.com/temirov/blogapi/internal/model"
)

func newArticleService(articleStore *mocks.ArticleStore, userStore *mocks.UserStore, pageViewStore *mocks.PageViewStore) *Article {
	if articleStore == nil {
		articleStore = &mocks.ArticleStore{}
	}
	if userStore == nil {
		userStore = &mocks.UserStore{}
	}
	if pageViewStore == nil {
		pageViewStore = &mocks.PageViewStore{}
	}
	return NewArticle(articleStore, userStore, pageViewStore, logger.New(0))
}

func TestArticle_List_AnonymousSeesPublishedOnly(t *testing.T) {
	ctx := context.Background()
	articleStore := &mocks.ArticleStore{}

	page := model.Page{Page: 1, PerPage: 10}
	articleStore.On("List", mock.Anything, page, true).Return([]model.Article{}, nil)
	articleStore.On("Count", mock.Anything, "", true).Return(0, nil)

	s := newArticleService(articleStore, nil, nil)

	_, err := s.List(ctx, page, false)
	require.NoError(t, err)
	articleStore.AssertCalled(t, "List", mock.Anything, page, true)
}

func TestArticle_List_AuthenticatedSeesDrafts(t *testing.T) {
	ctx := context.Background()
	articleStore := &mocks.ArticleStore{}

	page := model.Page{Page: 1, PerPage: 10}
	articleStore.On("List", mock.Anything, page, false).Return([]model.Article{{Status: model.ArticleStatusDraft}}, nil)
	articleStore.On("Count", mock.Anything, "", false).Return(1, nil)

	s := newArticleService(articleStore, nil, nil)

	list, err := s.List(ctx, page, true)
	require.NoError(t, err)
	assert.Len(t, list.Articles, 1)
}

func TestArticle_GetByID_JoinsAuthorAndViews(t *testing.T) {
	ctx := context.Background()
	articleStore := &mocks.ArticleStore{}
	userStore := &mocks.UserStore{}
	pageViewStore := &mocks.PageViewStore{}

	author := model.User{ID: uuid.New(), Username: "johndoe"}
	article := model.Article{ID: uuid.New(), AuthorID: author.ID, Status: model.ArticleStatusPublished}

	articleStore.On("GetByID", mock.Anything, article.ID, true).Return(article, nil)
	userStore.On("GetByID", mock.Anything, author.ID).Return(author, nil)
	pageViewStore.On("CountByArticle", mock.Anything, article.ID).Return(42, nil)

	s := newArticleService(articleStore, userStore, pageViewStore)

	detail, err := s.GetByID(ctx, article.ID, false)
	require.NoError(t, err)
	assert.Equal(t, article.ID, detail.Article.ID)
	assert.Equal(t, "johndoe", detail.Author.Username)
	assert.Equal(t, 42, detail.TotalViews)
}

func TestArticle_Create_AuthorFromPrincipal(t *testing.T) {
	ctx := context.Background()
	articleStore := &mocks.ArticleStore{}

	principal := model.Principal{UserID: uuid.New(), Username: "johndoe"}
	articleStore.On("Create", mock.Anything, mock.MatchedBy(func(a model.Article) bool {
		return a.AuthorID == principal.UserID && a.Title == "First post"
	})).Return(model.Article{ID: uuid.New(), AuthorID: principal.UserID}, nil)

	s := newArticleService(articleStore, nil, nil)

	created, err := s.Create(ctx, principal, CreateArticleParams{
		Title:   "First post",
		Content: "Hello",
		Status:  model.ArticleStatusDraft,
	})
	require.NoError(t, err)
	assert.Equal(t, principal.UserID, created.AuthorID)
}

func TestArticle_Update_OwnerOnly(t *testing.T) {
	ctx := context.Background()
	articleStore := &mocks.ArticleStore{}

	article := model.Article{ID: uuid.New(), AuthorID: uuid.New()}
	articleStore.On("GetByID", mock.Anything, article.ID, false).Return(article, nil)

	s := newArticleService(articleStore, nil, nil)

	stranger := model.Principal{UserID: uuid.New()}
	err := s.Update(ctx, stranger, UpdateArticleParams{ID: article.ID, Title: "x", Content: "y", Status: model.ArticleStatusDraft})
	require.Error(t, err)
	assert.Equal(t, model.KindAuthorizationDenied, model.KindOf(err))
	assert.Equal(t, "you don't have access to this resource", err.Error())
	articleStore.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestArticle_Update_NotFoundBeforeOwnership(t *testing.T) {
	ctx := context.Background()
	articleStore := &mocks.ArticleStore{}

	missing := uuid.New()
	articleStore.On("GetByID", mock.Anything, missing, false).Return(model.Article{}, model.ErrNotFound("article not found"))

	s := newArticleService(articleStore, nil, nil)

	err := s.Update(ctx, model.Principal{UserID: uuid.New()}, UpdateArticleParams{ID: missing})
	require.Error(t, err)
	assert.Equal(t, model.KindNotFound, model.KindOf(err))
}

func TestArticle_Update_Owner_Success(t *testing.T) {
	ctx := context.Background()
	articleStore := &mocks.ArticleStore{}

	owner := model.Principal{UserID: uuid.New()}
	article := model.Article{ID: uuid.New(), AuthorID: owner.UserID, Title: "old", Status: model.ArticleStatusDraft}
	articleStore.On("GetByID", mock.Anything, article.ID, false).Return(article, nil)
	articleStore.On("Update", mock.Anything, mock.MatchedBy(func(a model.Article) bool {
		return a.ID == article.ID && a.Title == "new" && a.Status == model.ArticleStatusPublished
	})).Return(model.Article{}, nil)

	s := newArticleService(articleStore, nil, nil)

	err := s.Update(ctx, owner, UpdateArticleParams{ID: article.ID, Title: "new", Content: "body", Status: model.ArticleStatusPublished})
	require.NoError(t, err)
}

func TestArticle_Delete_OwnerOnly(t *testing.T) {
	ctx := context.Background()
	articleStore := &mocks.ArticleStore{}

	article := model.Article{ID: uuid.New(), AuthorID: uuid.New()}
	articleStore.On("GetByID", mock.Anything, article.ID, false).Return(article, nil)

	s := newArticleService(articleStore, nil, nil)

	err := s.Delete(ctx, model.Principal{UserID: uuid.New()}, article.ID)
	require.Error(t, err)
	assert.Equal(t, model.KindAuthorizationDenied, model.KindOf(err))
	articleStore.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
