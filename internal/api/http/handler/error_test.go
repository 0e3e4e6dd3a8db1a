package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/temirov/blogapi/internal/model"
	"github.com/temirov/blogapi/internal/testutil"
)

func TestWriteError_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"authentication failed", model.ErrAuthenticationFailed("bad credentials"), http.StatusForbidden},
		{"unauthorized", model.ErrUnauthorized("no token"), http.StatusUnauthorized},
		{"forbidden", model.ErrForbidden("bad token"), http.StatusForbidden},
		{"authorization denied", model.ErrAuthorizationDenied("not yours"), http.StatusForbidden},
		{"not found", model.ErrNotFound("gone"), http.StatusNotFound},
		{"already exists", model.ErrAlreadyExists("taken"), http.StatusBadRequest},
		{"validation failed", model.ErrValidationFailed(nil), http.StatusBadRequest},
		{"internal", model.ErrInternal("boom"), http.StatusInternalServerError},
		{"untyped", fmt.Errorf("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, testutil.MakeNoopLogger(), tt.err)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestWriteError_WrappedErrorKeepsKind(t *testing.T) {
	rec := httptest.NewRecorder()
	err := fmt.Errorf("failed to get article by id: %w", model.ErrNotFound("article not found"))

	writeError(rec, testutil.MakeNoopLogger(), err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	// Only the domain message crosses the boundary, not the wrap chain.
	assert.JSONEq(t, `{"code":404,"message":"article not found"}`, rec.Body.String())
}

func TestWriteError_WrappedAuthorizationDenied(t *testing.T) {
	rec := httptest.NewRecorder()
	err := fmt.Errorf("failed to update article: %w", model.ErrAuthorizationDenied("you don't have access to this resource"))

	writeError(rec, testutil.MakeNoopLogger(), err)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"code":403,"message":"you don't have access to this resource"}`, rec.Body.String())
}

func TestWriteError_InternalHidesDetails(t *testing.T) {
	rec := httptest.NewRecorder()

	writeError(rec, testutil.MakeNoopLogger(), fmt.Errorf("pq: connection refused on 10.0.0.5"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
	assert.Contains(t, rec.Body.String(), "something went wrong")
}

func TestWriteError_ValidationCarriesFields(t *testing.T) {
	rec := httptest.NewRecorder()
	err := model.ErrValidationFailed([]model.FieldViolation{
		{Field: "username", Message: "must not be empty"},
	})

	writeError(rec, testutil.MakeNoopLogger(), err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{
		"code": 400,
		"message": "invalid request payload",
		"cause": [{"field":"username","message":"must not be empty"}]
	}`, rec.Body.String())
}
