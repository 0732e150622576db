// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search queries legal-database backends and returns unified,
// deduplicated case results. Each backend implements the Source interface;
// heterogeneous upstream shapes are reduced to types.CaseResult by the
// normalizer and combined by the merger.
package search

import (
	"context"

	"github.com/pdiddy/briefcase/pkg/types"
)

// Request holds the parameters of one search against one source. The
// credential is an opaque string supplied by the caller per request; the
// core never caches it.
type Request struct {
	Query      string
	Credential string
	Filters    types.SearchFilters
}

// RawResult is the intermediate record an adapter produces before
// normalization. Adapters resolve their upstream's field aliases into this
// shape; the normalizer owns all cleaning and standardization.
type RawResult struct {
	ID         string
	Title      string
	Citation   string
	Court      string
	Date       string
	Judges     []string
	Summary    string
	URL        string
	Score      float64
	Parties    *types.Parties
	Categories []string
}

// Source searches a single legal-database backend. Implementations exist
// per source; the structured API sources and the HTML-scraping sources
// conform to the same contract so callers never know which kind they hold.
//
// Search returns an empty slice, not an error, when the source has no
// matches. Failures use the package error taxonomy (ErrAuth,
// ErrRateLimited, ErrUnavailable, ErrParse).
type Source interface {
	ID() string
	Name() string
	RequiresAuth() bool
	Search(ctx context.Context, req Request) ([]RawResult, error)
	Details(ctx context.Context, caseID, credential string) (*types.CaseDetails, error)
}

// Registry is the fixed set of sources, in registration order. Order is
// also merge priority: when two sources return the same case, the
// earlier-registered source's copy wins.
type Registry struct {
	order []string
	byID  map[string]Source
}

// NewRegistry builds a registry from sources in priority order.
func NewRegistry(sources ...Source) *Registry {
	r := &Registry{byID: make(map[string]Source, len(sources))}
	for _, s := range sources {
		if _, dup := r.byID[s.ID()]; dup {
			continue
		}
		r.order = append(r.order, s.ID())
		r.byID[s.ID()] = s
	}
	return r
}

// Lookup returns the source registered under id.
func (r *Registry) Lookup(id string) (Source, bool) {
	s, ok := r.byID[id]
	return s, ok
}

// List returns descriptors for all registered sources in priority order.
func (r *Registry) List() []types.SourceInfo {
	infos := make([]types.SourceInfo, 0, len(r.order))
	for _, id := range r.order {
		s := r.byID[id]
		infos = append(infos, types.SourceInfo{
			ID:           s.ID(),
			Name:         s.Name(),
			RequiresAuth: s.RequiresAuth(),
		})
	}
	return infos
}

// Priority returns the merge priority of a source id; lower is stronger.
// Unregistered ids sort last.
func (r *Registry) Priority(id string) int {
	for i, known := range r.order {
		if known == id {
			return i
		}
	}
	return len(r.order)
}
