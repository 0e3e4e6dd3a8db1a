package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/temirov/blogapi/internal/api/http/middleware"
	"github.com/temirov/blogapi/internal/logger"
	"github.com/temirov/blogapi/internal/model"
	"github.com/temirov/blogapi/internal/service"
)

// PageViewService drives the page view endpoints.
type PageViewService interface {
	Record(ctx context.Context, principal model.Principal, articleID uuid.UUID) error
	Count(ctx context.Context, filter model.PageViewFilter) (int, error)
	Aggregate(ctx context.Context, interval service.Interval, filter model.PageViewFilter) ([]service.ViewBucket, error)
}

type PageView struct {
	service PageViewService
	logger  *logger.Logger
}

func NewPageView(service PageViewService, logger *logger.Logger) *PageView {
	return &PageView{service: service, logger: logger}
}

type recordViewRequest struct {
	ArticleID string `json:"articleId"`
}

type viewCountResponse struct {
	TotalViews int `json:"totalViews"`
}

func (h *PageView) Record(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, model.ErrUnauthorized("Unauthorized"))
		return
	}

	var req recordViewRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	articleID, err := uuid.Parse(req.ArticleID)
	if err != nil {
		writeError(w, h.logger, model.ErrValidationFailed([]model.FieldViolation{
			{Field: "articleId", Message: "must be a valid UUID"},
		}))
		return
	}

	if err := h.service.Record(r.Context(), principal, articleID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "View recorded", nil)
}

func (h *PageView) Count(w http.ResponseWriter, r *http.Request) {
	filter, err := parseViewFilter(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	count, err := h.service.Count(r.Context(), filter)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Success", viewCountResponse{TotalViews: count})
}

func (h *PageView) Aggregate(w http.ResponseWriter, r *http.Request) {
	interval := service.Interval(r.URL.Query().Get("interval"))
	if interval == "" {
		interval = service.IntervalDaily
	}
	if !service.ValidInterval(interval) {
		writeError(w, h.logger, model.ErrValidationFailed([]model.FieldViolation{
			{Field: "interval", Message: "must be hourly, daily or monthly"},
		}))
		return
	}

	filter, err := parseViewFilter(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	buckets, err := h.service.Aggregate(r.Context(), interval, filter)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Success", buckets)
}

func parseViewFilter(r *http.Request) (model.PageViewFilter, error) {
	var filter model.PageViewFilter

	if raw := r.URL.Query().Get("articleId"); raw != "" {
		articleID, err := uuid.Parse(raw)
		if err != nil {
			return model.PageViewFilter{}, model.ErrValidationFailed([]model.FieldViolation{
				{Field: "articleId", Message: "must be a valid UUID"},
			})
		}
		filter.ArticleID = articleID
	}

	startAt, err := queryTime(r, "startAt")
	if err != nil {
		return model.PageViewFilter{}, err
	}
	filter.StartAt = startAt

	endAt, err := queryTime(r, "endAt")
	if err != nil {
		return model.PageViewFilter{}, err
	}
	filter.EndAt = endAt

	return filter, nil
}
