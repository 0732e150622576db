// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/pdiddy/briefcase/internal/citation"
	"github.com/pdiddy/briefcase/pkg/types"
)

var (
	leadingNumberRe = regexp.MustCompile(`^\d+\.\s*`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

// courtNames maps citation court codes to full court names. Exact match is
// tried first, then substring, so free-text court fields like "SGCA (Civil
// Division)" still resolve.
var courtNames = map[string]string{
	"SGCA": "Court of Appeal",
	"SGHC": "High Court",
	"SGDC": "District Court",
	"SGMC": "Magistrates Court",
}

// dateLayouts are the upstream date formats accepted before falling back
// to passing the raw string through.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"02 Jan 2006",
	"2 Jan 2006",
	"02 January 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"02/01/2006",
}

// Normalize converts a source's raw results into unified CaseResults. It is
// count-preserving: every raw record produces exactly one output record,
// however sparse. Source-specific enrichment (LawNet metadata, CommonLII
// jurisdiction, courts courtType, OGP government flag) is applied here so
// adapters stay thin.
func Normalize(raw []RawResult, sourceID string) []types.CaseResult {
	out := make([]types.CaseResult, 0, len(raw))
	for _, r := range raw {
		c := types.CaseResult{
			ID:             r.ID,
			Title:          cleanTitle(r.Title),
			Citation:       normalizeCitation(r.Citation),
			Court:          normalizeCourt(r.Court),
			Date:           normalizeDate(r.Date),
			Summary:        cleanSummary(r.Summary),
			URL:            strings.TrimSpace(r.URL),
			Source:         sourceID,
			RelevanceScore: r.Score,
		}
		if c.ID == "" {
			c.ID = generateID(sourceID)
		}
		switch sourceID {
		case SourceLawNet, SourceVLex:
			c.Judges = r.Judges
			c.Parties = r.Parties
			c.Categories = r.Categories
		case SourceCommonLII:
			c.Jurisdiction = "Singapore"
		case SourceCourts:
			c.CourtType = classifyCourt(c.Court)
		case SourceOGP:
			c.Government = true
		}
		out = append(out, c)
	}
	return out
}

// cleanTitle trims, strips a leading list-number prefix ("3. "), and
// substitutes a placeholder for empty titles.
func cleanTitle(title string) string {
	t := strings.TrimSpace(leadingNumberRe.ReplaceAllString(strings.TrimSpace(title), ""))
	if t == "" {
		return "Untitled Case"
	}
	return t
}

// normalizeCitation re-emits a recognized Singapore neutral citation as
// "[YYYY] CODE N" with the court code uppercased. Anything else passes
// through trimmed.
func normalizeCitation(cite string) string {
	return citation.Normalize(cite)
}

// normalizeCourt resolves a court code or free-text court field to a full
// court name; unrecognized non-empty values pass through, empty becomes
// "Unknown Court".
func normalizeCourt(court string) string {
	court = strings.TrimSpace(court)
	if court == "" {
		return "Unknown Court"
	}
	upper := strings.ToUpper(court)
	if name, ok := courtNames[upper]; ok {
		return name
	}
	for code, name := range courtNames {
		if strings.Contains(upper, code) {
			return name
		}
	}
	return court
}

// normalizeDate converts recognized date formats to ISO 8601 (YYYY-MM-DD).
// Unrecognized non-empty values pass through unchanged.
func normalizeDate(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return date
}

// cleanSummary collapses internal whitespace and truncates long summaries
// to 500 characters including the trailing ellipsis.
func cleanSummary(summary string) string {
	s := strings.TrimSpace(whitespaceRe.ReplaceAllString(summary, " "))
	if len(s) > 500 {
		return s[:497] + "..."
	}
	return s
}

// classifyCourt buckets a normalized court name for the courts source.
func classifyCourt(court string) string {
	lower := strings.ToLower(court)
	switch {
	case strings.Contains(lower, "appeal"):
		return "appellate"
	case strings.Contains(lower, "high"):
		return "superior"
	case strings.Contains(lower, "district"), strings.Contains(lower, "magistrate"):
		return "subordinate"
	default:
		return "general"
	}
}

// generateID synthesizes a collision-resistant result id for sources that
// do not supply one.
func generateID(sourceID string) string {
	return fmt.Sprintf("%s_%d_%06d", sourceID, time.Now().UnixMilli(), rand.Intn(1_000_000))
}
