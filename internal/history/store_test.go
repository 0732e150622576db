// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/pdiddy/briefcase/pkg/types"
)

func newTestStore(t *testing.T, maxEntries int) *Store {
	t.Helper()
	s, err := NewStore(types.HistoryConfig{Dir: t.TempDir(), MaxEntries: maxEntries})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndGet(t *testing.T) {
	s := newTestStore(t, 10)

	entry := Entry{
		Term:    "breach of contract",
		Sources: []string{"lawnet", "commonlii"},
		Results: []types.CaseResult{
			{ID: "l1", Title: "Tan v. Lim", Citation: "[2023] SGCA 15", Source: "lawnet", RelevanceScore: 9},
		},
		SearchedAt: time.Now().Truncate(time.Second),
	}
	if err := s.Record(entry); err != nil {
		t.Fatalf("Record: %v", err)
	}

	got, err := s.Get("breach of contract")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Term != entry.Term || len(got.Sources) != 2 || len(got.Results) != 1 {
		t.Errorf("got = %+v", got)
	}
	if got.Results[0].Citation != "[2023] SGCA 15" {
		t.Errorf("results not round-tripped: %+v", got.Results)
	}
}

func TestEntryResultSet(t *testing.T) {
	at := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	entry := Entry{
		Term:       "unjust enrichment",
		Sources:    []string{"lawnet", "slw"},
		Results:    []types.CaseResult{{ID: "l1", Title: "Ong v. Wong", Source: "lawnet"}},
		SearchedAt: at,
	}

	set := entry.ResultSet()
	if set.SearchTerm != "unjust enrichment" {
		t.Errorf("SearchTerm = %q", set.SearchTerm)
	}
	if set.SourceID != "lawnet,slw" {
		t.Errorf("SourceID = %q, want %q", set.SourceID, "lawnet,slw")
	}
	if len(set.Results) != 1 || set.Results[0].ID != "l1" {
		t.Errorf("Results = %+v", set.Results)
	}
	if !set.Timestamp.Equal(at) {
		t.Errorf("Timestamp = %v, want %v", set.Timestamp, at)
	}
}

func TestGetMissingTerm(t *testing.T) {
	s := newTestStore(t, 10)
	if _, err := s.Get("never searched"); !errors.Is(err, ErrNoEntry) {
		t.Errorf("err = %v, want ErrNoEntry", err)
	}
}

func TestRecordReplacesSameTerm(t *testing.T) {
	s := newTestStore(t, 10)

	first := Entry{Term: "negligence", Results: []types.CaseResult{{ID: "a"}}, SearchedAt: time.Now().Add(-time.Hour)}
	second := Entry{Term: "negligence", Results: []types.CaseResult{{ID: "b"}, {ID: "c"}}, SearchedAt: time.Now()}
	if err := s.Record(first); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := s.Record(second); err != nil {
		t.Fatalf("Record: %v", err)
	}

	got, err := s.Get("negligence")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.Results) != 2 || got.Results[0].ID != "b" {
		t.Errorf("entry not replaced: %+v", got.Results)
	}

	entries, err := s.Recent(0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("len = %d, want 1 (no duplicate rows)", len(entries))
	}
}

func TestRecentOrderAndEviction(t *testing.T) {
	s := newTestStore(t, 3)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		entry := Entry{
			Term:       fmt.Sprintf("term %d", i),
			SearchedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := s.Record(entry); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	entries, err := s.Recent(0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3 (oldest evicted)", len(entries))
	}
	if entries[0].Term != "term 4" || entries[2].Term != "term 2" {
		t.Errorf("order wrong: %v, %v, %v", entries[0].Term, entries[1].Term, entries[2].Term)
	}
}

func TestClear(t *testing.T) {
	s := newTestStore(t, 10)
	if err := s.Record(Entry{Term: "x"}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	entries, err := s.Recent(0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("len = %d, want 0", len(entries))
	}
}
