package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/temirov/blogapi/internal/model"
)

const (
	defaultPage    = 1
	defaultPerPage = 10
	defaultSort    = "desc"
	defaultSortBy  = "createdAt"
)

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return model.ErrValidationFailed([]model.FieldViolation{
			{Field: "body", Message: "must be valid JSON"},
		})
	}
	return nil
}

// parsePage reads the pagination query parameters, falling back to the
// documented defaults for anything absent or malformed.
func parsePage(r *http.Request) model.Page {
	query := r.URL.Query()

	page := defaultPage
	if parsed, err := strconv.Atoi(query.Get("page")); err == nil && parsed > 0 {
		page = parsed
	}

	perPage := defaultPerPage
	if parsed, err := strconv.Atoi(query.Get("perPage")); err == nil && parsed > 0 {
		perPage = parsed
	}

	sort := query.Get("sort")
	if sort == "" {
		sort = defaultSort
	}

	sortBy := query.Get("sortBy")
	if sortBy == "" {
		sortBy = defaultSortBy
	}

	return model.Page{
		Page:    page,
		PerPage: perPage,
		Sort:    sort,
		SortBy:  sortBy,
		Search:  query.Get("search"),
	}
}

// pathID parses the named chi route parameter as a UUID.
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, model.ErrValidationFailed([]model.FieldViolation{
			{Field: name, Message: "must be a valid UUID"},
		})
	}
	return id, nil
}

// queryTime parses an optional timestamp query parameter, accepting RFC 3339
// or a bare date. A zero time means the parameter was absent.
func queryTime(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, nil
	}

	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed, nil
	}
	if parsed, err := time.Parse("2006-01-02", raw); err == nil {
		return parsed, nil
	}

	return time.Time{}, model.ErrValidationFailed([]model.FieldViolation{
		{Field: name, Message: "must be an RFC 3339 timestamp or a YYYY-MM-DD date"},
	})
}
