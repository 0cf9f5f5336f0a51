// Package server exposes the colour analysis engine over HTTP. It is a
// thin collaborator: decoding, resizing and sampling happen here, all
// colour science happens in the engine packages.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hashicorp/go-hclog"

	"github.com/colorcraft/colorcraft/internal/config"
)

// Server hosts the HTTP API around the analysis engine.
type Server struct {
	cfg    *config.Config
	logger hclog.Logger
	http   *http.Server
}

// New creates a Server with its routes wired.
func New(cfg *config.Config, logger hclog.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		logger: logger,
	}
	s.http = &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      s.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// Router builds the chi routing tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/extract-colors", s.handleExtract)
		r.Post("/analyze-colors", s.handleAnalyze)
		r.Post("/suggest-colors", s.handleSuggest)
		r.Post("/full-analysis", s.handleFullAnalysis)
	})
	return r
}

// Start serves until the context is cancelled, then shuts down
// gracefully within the configured timeout.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.ListenAddr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "timeout", s.cfg.GracefulShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.GracefulShutdownTimeout)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}
