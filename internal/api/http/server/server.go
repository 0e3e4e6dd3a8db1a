// Package server wraps the standard HTTP server with the lifecycle used by
// the entrypoint: blocking start, optional TLS, graceful stop.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/temirov/blogapi/internal/logger"
)

type Config struct {
	Port               string
	EnableHTTPS        bool
	CertFileName       string
	PrivateKeyFileName string
}

type Server struct {
	httpServer *http.Server
	config     Config
	logger     *logger.Logger
}

func New(handler http.Handler, config Config, logger *logger.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + config.Port,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		config: config,
		logger: logger,
	}
}

// Start blocks serving requests until Stop is called or the listener fails.
func (s *Server) Start() error {
	s.logger.Info("HTTP server starting",
		"addr", s.httpServer.Addr,
		"https", s.config.EnableHTTPS)

	var err error
	if s.config.EnableHTTPS {
		err = s.httpServer.ListenAndServeTLS(s.config.CertFileName, s.config.PrivateKeyFileName)
	} else {
		err = s.httpServer.ListenAndServe()
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}

	return nil
}

// Stop drains in-flight requests until ctx expires.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("HTTP server stopping")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
