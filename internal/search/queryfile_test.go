// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"path/filepath"
	"testing"

	"github.com/pdiddy/briefcase/pkg/types"
)

func TestQueryFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.yaml")

	req := Request{
		Query: "breach of contract",
		Filters: types.SearchFilters{
			DateFrom: "2020-01-01",
			Court:    "SGCA",
		},
	}
	out := Output{
		Results: []types.CaseResult{
			{ID: "l1", Title: "Tan v. Lim", Citation: "[2023] SGCA 15", Source: SourceLawNet, RelevanceScore: 9},
		},
		SourceErrors: []SourceError{{Source: SourceSLW, Error: "slw: upstream returned HTTP 503"}},
	}

	if err := WriteQueryFile(path, req, []string{SourceLawNet, SourceSLW}, out); err != nil {
		t.Fatalf("WriteQueryFile: %v", err)
	}

	qf, err := ReadQueryFile(path)
	if err != nil {
		t.Fatalf("ReadQueryFile: %v", err)
	}
	if qf.Query.Text != "breach of contract" {
		t.Errorf("Text = %q", qf.Query.Text)
	}
	if len(qf.Results) != 1 || qf.Results[0].Citation != "[2023] SGCA 15" {
		t.Errorf("Results = %+v", qf.Results)
	}
	if qf.Summary.Total != 1 || len(qf.Summary.SourceErrors) != 1 {
		t.Errorf("Summary = %+v", qf.Summary)
	}

	back := qf.Query.ToRequest()
	if back.Query != req.Query || back.Filters.DateFrom != "2020-01-01" || back.Filters.Court != "SGCA" {
		t.Errorf("ToRequest = %+v", back)
	}
}

func TestReadQueryFileMissing(t *testing.T) {
	if _, err := ReadQueryFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
