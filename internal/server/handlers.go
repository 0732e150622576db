// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/briefcase/internal/history"
	"github.com/pdiddy/briefcase/internal/search"
	"github.com/pdiddy/briefcase/pkg/types"
)

// SearchRequest is the POST /search body. Source names one backend;
// Sources fans out to several; with neither set every source is queried.
type SearchRequest struct {
	Query   string              `json:"query"`
	Source  string              `json:"source"`
	Sources []string            `json:"sources"`
	APIKey  string              `json:"apiKey"`
	Filters types.SearchFilters `json:"filters"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(200, gin.H{
		"success":   true,
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(s.started).Round(time.Second).String(),
	})
}

func (s *Server) handleSources(c *gin.Context) {
	infos := s.svc.Registry().List()
	c.JSON(200, gin.H{
		"success": true,
		"total":   len(infos),
		"sources": infos,
	})
}

func (s *Server) handleSearch(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, fmt.Errorf("malformed request body: %w", search.ErrInvalidRequest))
		return
	}

	coreReq := search.Request{
		Query:      req.Query,
		Credential: req.APIKey,
		Filters:    req.Filters,
	}

	if req.Source != "" && req.Source != "all" {
		s.singleSearch(c, req.Source, coreReq)
		return
	}
	s.multiSearch(c, req.Sources, coreReq)
}

func (s *Server) singleSearch(c *gin.Context, sourceID string, req search.Request) {
	results, err := s.svc.Search(c.Request.Context(), sourceID, req)
	if err != nil {
		s.fail(c, err)
		return
	}

	s.record(req.Query, []string{sourceID}, results)

	src, _ := s.svc.Registry().Lookup(sourceID)
	c.JSON(200, gin.H{
		"success":      true,
		"source":       sourceID,
		"sourceName":   src.Name(),
		"query":        req.Query,
		"totalResults": len(results),
		"results":      results,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) multiSearch(c *gin.Context, sourceIDs []string, req search.Request) {
	out, err := s.svc.SearchAll(c.Request.Context(), sourceIDs, req)
	if err != nil {
		s.fail(c, err)
		return
	}

	searched := sourceIDs
	if len(searched) == 0 {
		for _, info := range s.svc.Registry().List() {
			searched = append(searched, info.ID)
		}
	}
	s.record(req.Query, searched, out.Results)

	resp := gin.H{
		"success":      true,
		"source":       "all",
		"query":        req.Query,
		"totalResults": len(out.Results),
		"results":      out.Results,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	}
	if len(out.SourceErrors) > 0 {
		resp["sourceErrors"] = out.SourceErrors
	}
	c.JSON(200, resp)
}

func (s *Server) handleDetails(c *gin.Context) {
	sourceID := c.Param("source")
	caseID := c.Param("caseId")

	details, err := s.svc.Details(c.Request.Context(), sourceID, caseID, c.Query("apiKey"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(200, gin.H{
		"success": true,
		"source":  sourceID,
		"case":    details,
	})
}

// fail renders an error with its mapped status. Rate-limit errors carry
// the upstream's suggested retry interval when one was given.
func (s *Server) fail(c *gin.Context, err error) {
	body := gin.H{"success": false, "error": err.Error()}

	var rle *search.RateLimitError
	if errors.As(err, &rle) && rle.RetryAfter > 0 {
		secs := int(rle.RetryAfter.Seconds())
		c.Header("Retry-After", fmt.Sprintf("%d", secs))
		body["retryAfterSeconds"] = secs
	}
	c.JSON(statusForError(err), body)
}

// record persists a completed search; history failures are non-fatal.
func (s *Server) record(query string, sources []string, results []types.CaseResult) {
	if s.history == nil {
		return
	}
	entry := history.Entry{
		Term:       query,
		Sources:    sources,
		Results:    results,
		SearchedAt: time.Now(),
	}
	if err := s.history.Record(entry); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record search history: %v\n", err)
	}
}
