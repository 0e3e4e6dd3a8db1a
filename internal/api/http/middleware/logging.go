package middleware

import (
	"net/http"
	"time"

	"github.com/temirov/blogapi/internal/logger"
)

// Logging logs method, path, status and duration for each request.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Handle wraps next with request logging.
func (l *Logging) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		requestLogger := l.logger.With("method", r.Method, "path", r.URL.Path)

		next.ServeHTTP(rec, r)

		requestLogger.Info("HTTP request completed",
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds())
	})
}
