package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temirov/blogapi/internal/api/http/middleware"
	"github.com/temirov/blogapi/internal/model"
	"github.com/temirov/blogapi/internal/service"
	"github.com/temirov/blogapi/internal/testutil"
)

type articleServiceStub struct {
	list          service.ArticleList
	detail        service.ArticleDetail
	created       model.Article
	err           error
	authenticated bool
	gotPage       model.Page
	gotParams     service.CreateArticleParams
}

func (s *articleServiceStub) List(_ context.Context, page model.Page, authenticated bool) (service.ArticleList, error) {
	s.gotPage = page
	s.authenticated = authenticated
	return s.list, s.err
}

func (s *articleServiceStub) GetByID(_ context.Context, _ uuid.UUID, authenticated bool) (service.ArticleDetail, error) {
	s.authenticated = authenticated
	return s.detail, s.err
}

func (s *articleServiceStub) Create(_ context.Context, _ model.Principal, params service.CreateArticleParams) (model.Article, error) {
	s.gotParams = params
	return s.created, s.err
}

func (s *articleServiceStub) Update(_ context.Context, _ model.Principal, _ service.UpdateArticleParams) error {
	return s.err
}

func (s *articleServiceStub) Delete(_ context.Context, _ model.Principal, _ uuid.UUID) error {
	return s.err
}

func TestArticleHandler_GetAll_Defaults(t *testing.T) {
	stub := &articleServiceStub{list: service.ArticleList{Size: 11, TotalPages: 2}}
	h := NewArticle(stub, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	rec := httptest.NewRecorder()
	h.GetAll(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.Page{Page: 1, PerPage: 10, Sort: "desc", SortBy: "createdAt"}, stub.gotPage)
	assert.False(t, stub.authenticated)
	assert.Contains(t, rec.Body.String(), `"hasNextPage":true`)
	assert.Contains(t, rec.Body.String(), `"totalPage":2`)
}

func TestArticleHandler_GetAll_AuthenticatedFlag(t *testing.T) {
	stub := &articleServiceStub{}
	h := NewArticle(stub, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	ctx := middleware.WithPrincipal(req.Context(), model.Principal{UserID: uuid.New()})
	rec := httptest.NewRecorder()
	h.GetAll(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, stub.authenticated)
}

func TestArticleHandler_GetAll_QueryOverrides(t *testing.T) {
	stub := &articleServiceStub{}
	h := NewArticle(stub, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/articles?page=3&perPage=5&sort=asc&sortBy=title&search=go", nil)
	rec := httptest.NewRecorder()
	h.GetAll(rec, req)

	assert.Equal(t, model.Page{Page: 3, PerPage: 5, Sort: "asc", SortBy: "title", Search: "go"}, stub.gotPage)
}

func TestArticleHandler_Create_Success(t *testing.T) {
	principal := model.Principal{UserID: uuid.New()}
	stub := &articleServiceStub{created: model.Article{ID: uuid.New(), AuthorID: principal.UserID}}
	h := NewArticle(stub, testutil.MakeNoopLogger())

	body := `{"title":"First post","content":"Hello","status":"DRAFT"}`
	req := httptest.NewRequest(http.MethodPost, "/articles", strings.NewReader(body))
	ctx := middleware.WithPrincipal(req.Context(), principal)
	rec := httptest.NewRecorder()
	h.Create(rec, req.WithContext(ctx))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "First post", stub.gotParams.Title)
	assert.Equal(t, model.ArticleStatusDraft, stub.gotParams.Status)
}

func TestArticleHandler_Create_InvalidStatus(t *testing.T) {
	stub := &articleServiceStub{}
	h := NewArticle(stub, testutil.MakeNoopLogger())

	body := `{"title":"First post","content":"Hello","status":"ARCHIVED"}`
	req := httptest.NewRequest(http.MethodPost, "/articles", strings.NewReader(body))
	ctx := middleware.WithPrincipal(req.Context(), model.Principal{UserID: uuid.New()})
	rec := httptest.NewRecorder()
	h.Create(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "must be DRAFT or PUBLISHED")
}

func TestArticleHandler_Update_OwnershipDenied(t *testing.T) {
	stub := &articleServiceStub{err: model.ErrAuthorizationDenied("you don't have access to this resource")}
	h := NewArticle(stub, testutil.MakeNoopLogger())

	body := `{"title":"x","content":"y","status":"DRAFT"}`
	req := httptest.NewRequest(http.MethodPatch, "/articles/"+uuid.NewString(), strings.NewReader(body))
	req = withChiParam(req, "id", uuid.NewString())
	ctx := middleware.WithPrincipal(req.Context(), model.Principal{UserID: uuid.New()})
	rec := httptest.NewRecorder()
	h.Update(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "you don't have access to this resource")
}

func TestArticleHandler_GetByID_BadUUID(t *testing.T) {
	h := NewArticle(&articleServiceStub{}, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/articles/not-a-uuid", nil)
	req = withChiParam(req, "id", "not-a-uuid")
	rec := httptest.NewRecorder()
	h.GetByID(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func withChiParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
