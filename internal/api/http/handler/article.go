package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/temirov/blogapi/internal/api/http/middleware"
	"github.com/temirov/blogapi/internal/logger"
	"github.com/temirov/blogapi/internal/model"
	"github.com/temirov/blogapi/internal/service"
)

// ArticleService drives the article resource endpoints.
type ArticleService interface {
	List(ctx context.Context, page model.Page, authenticated bool) (service.ArticleList, error)
	GetByID(ctx context.Context, id uuid.UUID, authenticated bool) (service.ArticleDetail, error)
	Create(ctx context.Context, principal model.Principal, params service.CreateArticleParams) (model.Article, error)
	Update(ctx context.Context, principal model.Principal, params service.UpdateArticleParams) error
	Delete(ctx context.Context, principal model.Principal, id uuid.UUID) error
}

type Article struct {
	service ArticleService
	logger  *logger.Logger
}

func NewArticle(service ArticleService, logger *logger.Logger) *Article {
	return &Article{service: service, logger: logger}
}

type articleRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Status  string `json:"status"`
}

func (r articleRequest) validate() []model.FieldViolation {
	var violations []model.FieldViolation
	if r.Title == "" {
		violations = append(violations, model.FieldViolation{Field: "title", Message: "must not be empty"})
	}
	if r.Content == "" {
		violations = append(violations, model.FieldViolation{Field: "content", Message: "must not be empty"})
	}
	if !model.ValidArticleStatus(model.ArticleStatus(r.Status)) {
		violations = append(violations, model.FieldViolation{Field: "status", Message: "must be DRAFT or PUBLISHED"})
	}
	return violations
}

type articleResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	AuthorID  uuid.UUID `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type articleDetailResponse struct {
	articleResponse
	Author     userResponse `json:"author"`
	TotalViews int          `json:"totalViews"`
}

func newArticleResponse(article model.Article) articleResponse {
	return articleResponse{
		ID:        article.ID,
		Title:     article.Title,
		Content:   article.Content,
		Status:    string(article.Status),
		AuthorID:  article.AuthorID,
		CreatedAt: article.CreatedAt,
		UpdatedAt: article.UpdatedAt,
	}
}

func (h *Article) GetAll(w http.ResponseWriter, r *http.Request) {
	page := parsePage(r)
	_, authenticated := middleware.PrincipalFromContext(r.Context())

	list, err := h.service.List(r.Context(), page, authenticated)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	articles := make([]articleResponse, 0, len(list.Articles))
	for _, article := range list.Articles {
		articles = append(articles, newArticleResponse(article))
	}

	writePaginated(w, articles, newPagination(page.Page, page.PerPage, list.Size, list.TotalPages))
}

func (h *Article) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	_, authenticated := middleware.PrincipalFromContext(r.Context())

	detail, err := h.service.GetByID(r.Context(), id, authenticated)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Success", articleDetailResponse{
		articleResponse: newArticleResponse(detail.Article),
		Author:          newUserResponse(detail.Author),
		TotalViews:      detail.TotalViews,
	})
}

func (h *Article) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, model.ErrUnauthorized("Unauthorized"))
		return
	}

	var req articleRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	if violations := req.validate(); len(violations) > 0 {
		writeError(w, h.logger, model.ErrValidationFailed(violations))
		return
	}

	article, err := h.service.Create(r.Context(), principal, service.CreateArticleParams{
		Title:   req.Title,
		Content: req.Content,
		Status:  model.ArticleStatus(req.Status),
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "Article created", newArticleResponse(article))
}

func (h *Article) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, model.ErrUnauthorized("Unauthorized"))
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var req articleRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	if violations := req.validate(); len(violations) > 0 {
		writeError(w, h.logger, model.ErrValidationFailed(violations))
		return
	}

	err = h.service.Update(r.Context(), principal, service.UpdateArticleParams{
		ID:      id,
		Title:   req.Title,
		Content: req.Content,
		Status:  model.ArticleStatus(req.Status),
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Article updated", nil)
}

func (h *Article) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, model.ErrUnauthorized("Unauthorized"))
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	if err := h.service.Delete(r.Context(), principal, id); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Article deleted", nil)
}
