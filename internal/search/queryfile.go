// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/briefcase/pkg/types"
)

// QueryFile is the on-disk representation of a search and its results.
// A researcher can save a search to a file and reload it later without
// re-querying the sources.
type QueryFile struct {
	Query   QueryParams        `yaml:"query"`
	Results []types.CaseResult `yaml:"results"`
	Summary QuerySummary       `yaml:"summary"`
}

// QueryParams stores the search parameters in a serializable form.
type QueryParams struct {
	Text     string   `yaml:"text"`
	Sources  []string `yaml:"sources,omitempty"`
	DateFrom string   `yaml:"date_from,omitempty"`
	DateTo   string   `yaml:"date_to,omitempty"`
	Court    string   `yaml:"court,omitempty"`
	CaseType string   `yaml:"case_type,omitempty"`
}

// QuerySummary stores result statistics and a timestamp.
type QuerySummary struct {
	Total        int           `yaml:"total"`
	SourceErrors []SourceError `yaml:"source_errors,omitempty"`
	Timestamp    time.Time     `yaml:"timestamp"`
}

// WriteQueryFile saves search parameters and results to a YAML file.
func WriteQueryFile(path string, req Request, sources []string, out Output) error {
	qf := QueryFile{
		Query: QueryParams{
			Text:     req.Query,
			Sources:  sources,
			DateFrom: req.Filters.DateFrom,
			DateTo:   req.Filters.DateTo,
			Court:    req.Filters.Court,
			CaseType: req.Filters.CaseType,
		},
		Results: out.Results,
		Summary: QuerySummary{
			Total:        len(out.Results),
			SourceErrors: out.SourceErrors,
			Timestamp:    time.Now(),
		},
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}

// ToRequest converts stored QueryParams back into a search Request.
func (p QueryParams) ToRequest() Request {
	return Request{
		Query: p.Text,
		Filters: types.SearchFilters{
			DateFrom: p.DateFrom,
			DateTo:   p.DateTo,
			Court:    p.Court,
			CaseType: p.CaseType,
		},
	}
}
