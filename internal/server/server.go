// Package server exposes the parsing pipeline over HTTP.
package server

import (
	"context"
	"net/http"

	"ecakir/fintext/internal/logging"
	"ecakir/fintext/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Parser is the inbound pipeline boundary the server depends on.
type Parser interface {
	ParseAndCreate(ctx context.Context, userID, text string) (*models.ParseResult, error)
}

// Server glues the router to the pipeline.
type Server struct {
	parser Parser
	logger logging.Logger
}

// New creates a Server.
func New(parser Parser, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Server{parser: parser, logger: logger}
}

// Routes builds the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/api/v1/parse", s.handleParse)

	return r
}
