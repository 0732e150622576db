// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/pdiddy/briefcase/pkg/types"
)

// --- mock source ---

type mockSource struct {
	id      string
	name    string
	auth    bool
	results []RawResult
	err     error
	details *types.CaseDetails
}

func (m *mockSource) ID() string { return m.id }

func (m *mockSource) Name() string {
	if m.name != "" {
		return m.name
	}
	return m.id
}

func (m *mockSource) RequiresAuth() bool { return m.auth }

func (m *mockSource) Search(_ context.Context, _ Request) ([]RawResult, error) {
	return m.results, m.err
}

func (m *mockSource) Details(_ context.Context, _, _ string) (*types.CaseDetails, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.details, nil
}

// --- Registry ---

func TestRegistryOrderAndPriority(t *testing.T) {
	r := NewRegistry(&mockSource{id: "a"}, &mockSource{id: "b"}, &mockSource{id: "a"})
	if len(r.List()) != 2 {
		t.Fatalf("duplicate registration not ignored: %v", r.List())
	}
	if r.Priority("a") != 0 || r.Priority("b") != 1 {
		t.Errorf("priorities: a=%d b=%d", r.Priority("a"), r.Priority("b"))
	}
	if r.Priority("nope") != 2 {
		t.Errorf("unknown id should sort last, got %d", r.Priority("nope"))
	}
}

func TestRegistryList(t *testing.T) {
	r := NewRegistry(
		&mockSource{id: "lawnet", name: "LawNet Singapore", auth: true},
		&mockSource{id: "commonlii", name: "CommonLII Singapore"},
	)
	infos := r.List()
	if len(infos) != 2 {
		t.Fatalf("len = %d, want 2", len(infos))
	}
	if infos[0].ID != "lawnet" || !infos[0].RequiresAuth {
		t.Errorf("infos[0] = %+v", infos[0])
	}
	if infos[1].RequiresAuth {
		t.Errorf("commonlii should not require auth")
	}
}

// --- Search (single source) ---

func TestSearchEmptyQuery(t *testing.T) {
	s := testService(&mockSource{id: "m"})
	for _, q := range []string{"", "   "} {
		if _, err := s.Search(context.Background(), "m", Request{Query: q}); !errors.Is(err, ErrInvalidRequest) {
			t.Errorf("query %q: err = %v, want ErrInvalidRequest", q, err)
		}
	}
}

func TestSearchUnknownSource(t *testing.T) {
	s := testService(&mockSource{id: "m"})
	_, err := s.Search(context.Background(), "westlaw", Request{Query: "contract"})
	if !errors.Is(err, ErrUnknownSource) {
		t.Errorf("err = %v, want ErrUnknownSource", err)
	}
}

func TestSearchAuthSourceWithoutCredential(t *testing.T) {
	s := testService(&mockSource{id: "lawnet", auth: true})
	_, err := s.Search(context.Background(), "lawnet", Request{Query: "contract"})
	if !errors.Is(err, ErrMissingCredential) {
		t.Errorf("err = %v, want ErrMissingCredential", err)
	}
}

func TestSearchNormalizesAndSorts(t *testing.T) {
	s := testService(&mockSource{id: SourceCommonLII, results: []RawResult{
		{Title: "2. Weak match", Score: 2},
		{Title: "Strong match", Citation: "[2023]sgca5", Score: 9},
	}})

	got, err := s.Search(context.Background(), SourceCommonLII, Request{Query: "contract"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Title != "Strong match" {
		t.Errorf("results not sorted by score: %+v", got)
	}
	if got[0].Citation != "[2023] SGCA 5" {
		t.Errorf("citation not normalized: %q", got[0].Citation)
	}
	if got[1].Title != "Weak match" {
		t.Errorf("list prefix not stripped: %q", got[1].Title)
	}
	if got[0].Source != SourceCommonLII || got[0].Jurisdiction != "Singapore" {
		t.Errorf("source fields not stamped: %+v", got[0])
	}
}

func TestSearchEmptyResultsIsNotError(t *testing.T) {
	s := testService(&mockSource{id: "m"})
	got, err := s.Search(context.Background(), "m", Request{Query: "nothing matches"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestSearchHonorsMaxResults(t *testing.T) {
	var raw []RawResult
	for i := 0; i < 30; i++ {
		raw = append(raw, RawResult{Title: fmt.Sprintf("Case %d", i), Citation: fmt.Sprintf("[2023] SGHC %d", i)})
	}
	s := NewService(NewRegistry(&mockSource{id: "m", results: raw}), types.SearchConfig{MaxResults: 5})

	got, err := s.Search(context.Background(), "m", Request{Query: "case"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 5 {
		t.Errorf("len = %d, want 5", len(got))
	}
}

// --- SearchAll ---

func TestSearchAllMergesAndCollectsErrors(t *testing.T) {
	s := testService(
		&mockSource{id: SourceLawNet, auth: true, results: []RawResult{
			{ID: "l1", Title: "Tan v. Lim", Citation: "[2023] SGCA 15", Score: 5},
		}},
		&mockSource{id: SourceCommonLII, results: []RawResult{
			{Title: "Tan v Lim", Citation: "[2023]SGCA 15", Score: 9},
			{Title: "Ong v. Wong", Citation: "[2022] SGHC 101", Score: 4},
		}},
		&mockSource{id: SourceSLW, err: fmt.Errorf("slw: upstream returned HTTP 503: %w", ErrUnavailable)},
	)

	out, err := s.SearchAll(context.Background(), nil, Request{Query: "tan", Credential: "key"})
	if err != nil {
		t.Fatalf("SearchAll: %v", err)
	}
	if len(out.Results) != 2 {
		t.Fatalf("len = %d, want 2 (duplicate citation merged): %+v", len(out.Results), out.Results)
	}
	// The duplicate resolves to the stronger-priority source.
	var winner types.CaseResult
	for _, r := range out.Results {
		if r.Citation == "[2023] SGCA 15" {
			winner = r
		}
	}
	if winner.Source != SourceLawNet {
		t.Errorf("duplicate winner = %s, want %s", winner.Source, SourceLawNet)
	}
	if len(out.SourceErrors) != 1 || out.SourceErrors[0].Source != SourceSLW {
		t.Errorf("SourceErrors = %+v", out.SourceErrors)
	}
}

func TestSearchAllSkipsAuthSourcesWithoutCredential(t *testing.T) {
	s := testService(
		&mockSource{id: SourceLawNet, auth: true},
		&mockSource{id: SourceCommonLII, results: []RawResult{{Title: "Ong v. Wong", Score: 3}}},
	)

	out, err := s.SearchAll(context.Background(), nil, Request{Query: "ong"})
	if err != nil {
		t.Fatalf("SearchAll: %v", err)
	}
	if len(out.Results) != 1 {
		t.Errorf("len = %d, want 1", len(out.Results))
	}
	if len(out.SourceErrors) != 1 || out.SourceErrors[0].Source != SourceLawNet {
		t.Errorf("SourceErrors = %+v", out.SourceErrors)
	}
}

func TestSearchAllSubsetAndUnknownID(t *testing.T) {
	s := testService(
		&mockSource{id: "a", results: []RawResult{{Title: "A case"}}},
		&mockSource{id: "b", results: []RawResult{{Title: "B case"}}},
	)

	out, err := s.SearchAll(context.Background(), []string{"b"}, Request{Query: "case"})
	if err != nil {
		t.Fatalf("SearchAll: %v", err)
	}
	if len(out.Results) != 1 || out.Results[0].Title != "B case" {
		t.Errorf("subset not honored: %+v", out.Results)
	}

	if _, err := s.SearchAll(context.Background(), []string{"b", "zzz"}, Request{Query: "case"}); !errors.Is(err, ErrUnknownSource) {
		t.Errorf("err = %v, want ErrUnknownSource", err)
	}
}

func TestSearchAllEmptyQuery(t *testing.T) {
	s := testService(&mockSource{id: "m"})
	if _, err := s.SearchAll(context.Background(), nil, Request{Query: " "}); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("err = %v, want ErrInvalidRequest", err)
	}
}

// --- Details ---

func TestDetailsValidation(t *testing.T) {
	s := testService(&mockSource{id: "lawnet", auth: true, details: &types.CaseDetails{}})

	if _, err := s.Details(context.Background(), "lawnet", "", "key"); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("empty case id: err = %v, want ErrInvalidRequest", err)
	}
	if _, err := s.Details(context.Background(), "nope", "c1", "key"); !errors.Is(err, ErrUnknownSource) {
		t.Errorf("unknown source: err = %v, want ErrUnknownSource", err)
	}
	if _, err := s.Details(context.Background(), "lawnet", "c1", ""); !errors.Is(err, ErrMissingCredential) {
		t.Errorf("missing credential: err = %v, want ErrMissingCredential", err)
	}
	if _, err := s.Details(context.Background(), "lawnet", "c1", "key"); err != nil {
		t.Errorf("Details: %v", err)
	}
}

// --- error taxonomy ---

func TestStatusErrorClassification(t *testing.T) {
	tests := []struct {
		code int
		want error
	}{
		{401, ErrAuth},
		{403, ErrAuth},
		{429, ErrRateLimited},
		{500, ErrUnavailable},
		{503, ErrUnavailable},
		{418, ErrUnavailable},
	}
	for _, tt := range tests {
		if err := statusError("m", tt.code, ""); !errors.Is(err, tt.want) {
			t.Errorf("code %d: err = %v, want %v", tt.code, err, tt.want)
		}
	}
}

func TestRateLimitErrorCarriesRetryAfter(t *testing.T) {
	err := statusError("m", 429, "120")
	var rle *RateLimitError
	if !errors.As(err, &rle) {
		t.Fatalf("err = %T, want *RateLimitError", err)
	}
	if rle.RetryAfter.Seconds() != 120 {
		t.Errorf("RetryAfter = %v, want 2m0s", rle.RetryAfter)
	}
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("RateLimitError should match ErrRateLimited")
	}
}

func TestTransportErrorPreservesCancellation(t *testing.T) {
	if err := transportError("m", context.Canceled); !errors.Is(err, context.Canceled) {
		t.Errorf("cancellation should pass through, got %v", err)
	}
	if err := transportError("m", context.DeadlineExceeded); !errors.Is(err, ErrUnavailable) {
		t.Errorf("deadline should classify as unavailable, got %v", err)
	}
}
