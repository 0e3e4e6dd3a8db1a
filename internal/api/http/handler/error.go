package handler

import (
	"errors"
	"net/http"

	"github.com/temirov/blogapi/internal/logger"
	"github.com/temirov/blogapi/internal/model"
)

// statusByKind is the only place domain error kinds meet HTTP status codes.
var statusByKind = map[model.Kind]int{
	model.KindAuthenticationFailed: http.StatusForbidden,
	model.KindUnauthorized:         http.StatusUnauthorized,
	model.KindForbidden:            http.StatusForbidden,
	model.KindAuthorizationDenied:  http.StatusForbidden,
	model.KindNotFound:             http.StatusNotFound,
	model.KindAlreadyExists:        http.StatusBadRequest,
	model.KindValidationFailed:     http.StatusBadRequest,
	model.KindInternal:             http.StatusInternalServerError,
}

// writeError maps a domain error to its HTTP reply. The body carries only
// the domain error's own message, never the wrap chain the layers added on
// the way up; anything untyped or internal is logged with the real cause
// and reported generically.
func writeError(w http.ResponseWriter, log *logger.Logger, err error) {
	var domainErr *model.Error
	if !errors.As(err, &domainErr) || domainErr.Kind == model.KindInternal {
		log.Error("handler: internal error", "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "something went wrong",
		})
		return
	}

	status, ok := statusByKind[domainErr.Kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	response := ErrorResponse{
		Code:    status,
		Message: domainErr.Message,
	}
	if len(domainErr.Fields) > 0 {
		response.Cause = domainErr.Fields
	}

	writeJSON(w, status, response)
}
