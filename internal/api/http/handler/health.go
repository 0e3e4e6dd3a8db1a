package handler

import (
	"context"
	"net/http"

	"github.com/temirov/blogapi/internal/logger"
	"github.com/temirov/blogapi/internal/model"
)

// Pinger reports database liveness for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Health struct {
	pinger Pinger
	logger *logger.Logger
}

func NewHealth(pinger Pinger, logger *logger.Logger) *Health {
	return &Health{pinger: pinger, logger: logger}
}

func (h *Health) Index(w http.ResponseWriter, r *http.Request) {
	if err := h.pinger.Ping(r.Context()); err != nil {
		writeError(w, h.logger, model.ErrInternal("database unreachable: %s", err))
		return
	}

	writeSuccess(w, http.StatusOK, "OK", nil)
}
