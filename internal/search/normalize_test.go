// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"strings"
	"testing"

	"github.com/pdiddy/briefcase/pkg/types"
)

func TestNormalizePreservesCount(t *testing.T) {
	raw := []RawResult{
		{Title: "Tan v. Lim [2023] SGCA 15"},
		{},
		{Title: "Ong v. Wong", Citation: "[2022] SGHC 101"},
	}
	got := Normalize(raw, SourceCommonLII)
	if len(got) != len(raw) {
		t.Fatalf("len = %d, want %d", len(got), len(raw))
	}
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"trimmed", "  Tan v. Lim  ", "Tan v. Lim"},
		{"leading list number", "3. Tan v. Lim", "Tan v. Lim"},
		{"empty", "", "Untitled Case"},
		{"only whitespace", "   ", "Untitled Case"},
		{"number only", "12. ", "Untitled Case"},
		{"internal number kept", "Tan 3. Lim", "Tan 3. Lim"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanTitle(tt.title); got != tt.want {
				t.Errorf("cleanTitle(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestNormalizeCitationField(t *testing.T) {
	tests := []struct {
		name string
		cite string
		want string
	}{
		{"canonical", "[2023] SGCA 15", "[2023] SGCA 15"},
		{"no spaces", "[2023]SGHC15", "[2023] SGHC 15"},
		{"lowercase code", "[2023] sghc 15", "[2023] SGHC 15"},
		{"foreign passthrough", "[2019] 2 SLR 216", "[2019] 2 SLR 216"},
		{"empty", "", ""},
		{"garbage passthrough", "not a citation", "not a citation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeCitation(tt.cite); got != tt.want {
				t.Errorf("normalizeCitation(%q) = %q, want %q", tt.cite, got, tt.want)
			}
		})
	}
}

func TestNormalizeCourt(t *testing.T) {
	tests := []struct {
		name  string
		court string
		want  string
	}{
		{"exact code", "SGCA", "Court of Appeal"},
		{"lowercase code", "sghc", "High Court"},
		{"code inside text", "SGDC (Civil)", "District Court"},
		{"magistrates", "SGMC", "Magistrates Court"},
		{"unknown passthrough", "Family Justice Courts", "Family Justice Courts"},
		{"empty", "", "Unknown Court"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeCourt(tt.court); got != tt.want {
				t.Errorf("normalizeCourt(%q) = %q, want %q", tt.court, got, tt.want)
			}
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
	}{
		{"already iso", "2023-06-15", "2023-06-15"},
		{"long form", "15 June 2023", "2023-06-15"},
		{"short month", "15 Jun 2023", "2023-06-15"},
		{"us style", "June 15, 2023", "2023-06-15"},
		{"slashes", "15/06/2023", "2023-06-15"},
		{"unparsable passthrough", "sometime in 2023", "sometime in 2023"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeDate(tt.date); got != tt.want {
				t.Errorf("normalizeDate(%q) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}

func TestCleanSummaryTruncation(t *testing.T) {
	long := strings.Repeat("a", 600)
	got := cleanSummary(long)
	if len(got) != 500 {
		t.Errorf("len = %d, want 500", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("summary should end with ellipsis, got %q", got[490:])
	}

	exact := strings.Repeat("b", 500)
	if got := cleanSummary(exact); got != exact {
		t.Errorf("500-char summary should pass through untouched")
	}
}

func TestCleanSummaryCollapsesWhitespace(t *testing.T) {
	got := cleanSummary("  The court\n\theld   that  ")
	want := "The court held that"
	if got != want {
		t.Errorf("cleanSummary = %q, want %q", got, want)
	}
}

func TestNormalizeSourceExtensions(t *testing.T) {
	raw := []RawResult{{
		Title:      "Tan v. Lim",
		Judges:     []string{"Chan CJ"},
		Parties:    &types.Parties{Plaintiff: "Tan", Defendant: "Lim"},
		Categories: []string{"Contract"},
	}}

	lawnet := Normalize(raw, SourceLawNet)[0]
	if len(lawnet.Judges) != 1 || lawnet.Parties == nil || len(lawnet.Categories) != 1 {
		t.Errorf("lawnet extension fields not carried: %+v", lawnet)
	}

	commonlii := Normalize(raw, SourceCommonLII)[0]
	if commonlii.Jurisdiction != "Singapore" {
		t.Errorf("commonlii Jurisdiction = %q, want Singapore", commonlii.Jurisdiction)
	}
	if commonlii.Judges != nil {
		t.Errorf("commonlii should not carry judges")
	}

	ogp := Normalize(raw, SourceOGP)[0]
	if !ogp.Government {
		t.Errorf("ogp result should be flagged as government")
	}
}

func TestNormalizeCourtType(t *testing.T) {
	tests := []struct {
		court string
		want  string
	}{
		{"SGCA", "appellate"},
		{"SGHC", "superior"},
		{"SGDC", "subordinate"},
		{"SGMC", "subordinate"},
		{"", "general"},
	}
	for _, tt := range tests {
		got := Normalize([]RawResult{{Court: tt.court}}, SourceCourts)[0]
		if got.CourtType != tt.want {
			t.Errorf("court %q: CourtType = %q, want %q", tt.court, got.CourtType, tt.want)
		}
	}
}

func TestNormalizeGeneratesIDs(t *testing.T) {
	got := Normalize([]RawResult{{Title: "A"}, {Title: "B"}}, SourceSLW)
	if got[0].ID == "" || got[1].ID == "" {
		t.Fatalf("ids not generated: %+v", got)
	}
	if !strings.HasPrefix(got[0].ID, "slw_") {
		t.Errorf("id = %q, want slw_ prefix", got[0].ID)
	}
	if got[0].ID == got[1].ID {
		t.Errorf("generated ids collide: %q", got[0].ID)
	}
}

func TestRelevance(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		summary string
		query   string
		want    float64
	}{
		{"verbatim title match", "contract breach damages", "", "contract breach", 10 + 3 + 3},
		{"word hits only", "breach of warranty", "the contract was breached", "contract breach", 3 + 1 + 1},
		{"short words ignored", "A v. B", "", "a v b", 0},
		{"summary only", "irrelevant", "negligence claim", "negligence", 1},
		{"no match", "Tan v. Lim", "", "trademark", 0},
		{"empty query", "Tan v. Lim", "summary", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Relevance(tt.title, tt.summary, tt.query); got != tt.want {
				t.Errorf("Relevance() = %v, want %v", got, tt.want)
			}
		})
	}
}
