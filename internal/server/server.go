// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the search engine over HTTP.
package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/briefcase/internal/history"
	"github.com/pdiddy/briefcase/internal/search"
)

// Server wires the search service and the optional history store into an
// HTTP API.
type Server struct {
	svc     *search.Service
	history *history.Store
	started time.Time
}

// New creates a server. The history store may be nil, in which case
// searches are not recorded.
func New(svc *search.Service, hist *history.Store) *Server {
	return &Server{svc: svc, history: hist, started: time.Now()}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/health", s.handleHealth)
	r.GET("/sources", s.handleSources)
	r.POST("/search", s.handleSearch)
	r.GET("/cases/:source/:caseId", s.handleDetails)

	return r
}

// Run starts serving on the given port, blocking until the listener fails.
func (s *Server) Run(port int) error {
	return s.Router().Run(fmt.Sprintf(":%d", port))
}

// statusForError maps the search error taxonomy onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, search.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, search.ErrMissingCredential):
		return http.StatusUnauthorized
	case errors.Is(err, search.ErrAuth):
		return http.StatusForbidden
	case errors.Is(err, search.ErrUnknownSource), errors.Is(err, search.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, search.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, search.ErrParse):
		return http.StatusBadGateway
	case errors.Is(err, search.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
