// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/pdiddy/briefcase/internal/scrape"
	"github.com/pdiddy/briefcase/pkg/types"
)

// Source ids, in merge-priority order. The authenticated databases rank
// above the public scrapers because their records are richer and their
// metadata more reliable.
const (
	SourceLawNet    = "lawnet"
	SourceVLex      = "vlex"
	SourceCommonLII = "commonlii"
	SourceCourts    = "singapore-courts"
	SourceJudiciary = "judiciary-sg"
	SourceSLW       = "slw"
	SourceOGP       = "ogp"
)

// SourceError reports one source's failure during a multi-source search.
// Failures never abort the fan-out; they are collected alongside whatever
// the healthy sources returned.
type SourceError struct {
	Source string `json:"source"`
	Error  string `json:"error"`
}

// Output holds merged results plus per-source failures from a fan-out.
type Output struct {
	Results      []types.CaseResult
	SourceErrors []SourceError
}

// Service coordinates searches across the registered sources.
type Service struct {
	registry *Registry
	cfg      types.SearchConfig
}

// NewService builds a service over an explicit registry. Tests inject mock
// sources this way.
func NewService(registry *Registry, cfg types.SearchConfig) *Service {
	return &Service{registry: registry, cfg: cfg}
}

// NewDefaultService wires the full production source set, honoring the
// per-source enable flags. One fetcher is shared by all scrapers so the
// per-host politeness intervals and the robots.txt cache are global.
func NewDefaultService(cfg types.Config) *Service {
	fetcher := scrape.NewFetcher(cfg.Search.HTTPConfig, cfg.Scrape)

	var sources []Source
	if cfg.Search.EnableLawNet {
		sources = append(sources, NewLawNet(cfg.Search.HTTPConfig))
	}
	if cfg.Search.EnableVLex {
		sources = append(sources, NewVLex(cfg.Search.HTTPConfig))
	}
	if cfg.Search.EnableCommonLII {
		sources = append(sources, NewCommonLII(fetcher))
	}
	if cfg.Search.EnableSingaporeCourts {
		sources = append(sources, NewCourts(fetcher))
	}
	if cfg.Search.EnableJudiciary {
		sources = append(sources, NewJudiciary(fetcher))
	}
	if cfg.Search.EnableSLW {
		sources = append(sources, NewSLW(fetcher))
	}
	if cfg.Search.EnableOGP {
		sources = append(sources, NewOGP(fetcher))
	}
	return NewService(NewRegistry(sources...), cfg.Search)
}

// Registry exposes the service's source set for listing.
func (s *Service) Registry() *Registry { return s.registry }

// Search runs the query against a single named source and returns its
// normalized, relevance-sorted results. An empty result set is a valid
// outcome, not an error.
func (s *Service) Search(ctx context.Context, sourceID string, req Request) ([]types.CaseResult, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, fmt.Errorf("search query is empty: %w", ErrInvalidRequest)
	}
	src, ok := s.registry.Lookup(sourceID)
	if !ok {
		return nil, fmt.Errorf("no source registered as %q: %w", sourceID, ErrUnknownSource)
	}
	if src.RequiresAuth() && strings.TrimSpace(req.Credential) == "" {
		return nil, fmt.Errorf("%s requires an API credential: %w", sourceID, ErrMissingCredential)
	}

	raw, err := src.Search(ctx, req)
	if err != nil {
		return nil, err
	}
	results := Normalize(raw, sourceID)
	results = s.Merge(results)
	if s.cfg.MaxResults > 0 && len(results) > s.cfg.MaxResults {
		results = results[:s.cfg.MaxResults]
	}
	return results, nil
}

// SearchAll fans the query out to sources concurrently, merges the
// normalized result sets and collects per-source failures. sourceIDs
// narrows the fan-out; empty means every registered source. Sources whose
// credential is missing are skipped with a SourceError rather than
// blocking the rest.
func (s *Service) SearchAll(ctx context.Context, sourceIDs []string, req Request) (Output, error) {
	if strings.TrimSpace(req.Query) == "" {
		return Output{}, fmt.Errorf("search query is empty: %w", ErrInvalidRequest)
	}

	var targets []Source
	if len(sourceIDs) == 0 {
		for _, info := range s.registry.List() {
			src, _ := s.registry.Lookup(info.ID)
			targets = append(targets, src)
		}
	} else {
		for _, id := range sourceIDs {
			src, ok := s.registry.Lookup(id)
			if !ok {
				return Output{}, fmt.Errorf("no source registered as %q: %w", id, ErrUnknownSource)
			}
			targets = append(targets, src)
		}
	}

	type sourceResult struct {
		id      string
		results []types.CaseResult
		err     error
	}

	ch := make(chan sourceResult, len(targets))
	var wg sync.WaitGroup

	for _, src := range targets {
		if src.RequiresAuth() && strings.TrimSpace(req.Credential) == "" {
			ch <- sourceResult{id: src.ID(), err: fmt.Errorf("%s requires an API credential: %w", src.ID(), ErrMissingCredential)}
			continue
		}
		wg.Add(1)
		go func(src Source) {
			defer wg.Done()
			raw, err := src.Search(ctx, req)
			if err != nil {
				ch <- sourceResult{id: src.ID(), err: err}
				return
			}
			ch <- sourceResult{id: src.ID(), results: Normalize(raw, src.ID())}
		}(src)
	}

	go func() {
		wg.Wait()
		close(ch)
	}()

	var sets [][]types.CaseResult
	var out Output
	for sr := range ch {
		if sr.err != nil {
			out.SourceErrors = append(out.SourceErrors, SourceError{Source: sr.id, Error: sr.err.Error()})
			continue
		}
		sets = append(sets, sr.results)
	}

	out.Results = s.Merge(sets...)
	if s.cfg.MaxResults > 0 && len(out.Results) > s.cfg.MaxResults {
		out.Results = out.Results[:s.cfg.MaxResults]
	}
	return out, nil
}

// Details fetches the full record of a single case from its source.
func (s *Service) Details(ctx context.Context, sourceID, caseID, credential string) (*types.CaseDetails, error) {
	if strings.TrimSpace(caseID) == "" {
		return nil, fmt.Errorf("case id is empty: %w", ErrInvalidRequest)
	}
	src, ok := s.registry.Lookup(sourceID)
	if !ok {
		return nil, fmt.Errorf("no source registered as %q: %w", sourceID, ErrUnknownSource)
	}
	if src.RequiresAuth() && strings.TrimSpace(credential) == "" {
		return nil, fmt.Errorf("%s requires an API credential: %w", sourceID, ErrMissingCredential)
	}
	return src.Details(ctx, caseID, credential)
}
