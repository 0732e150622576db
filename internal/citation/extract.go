// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package citation identifies Singapore court case citations in free text
// and standardizes citation strings.
package citation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Citation patterns. Party names must be capitalized word runs; the
// connective accepts "v" and "v."; the reporter code is matched
// case-insensitively.
var (
	// neutralRe matches SG-series neutral citations, e.g.
	// "Tan v. Lim [2021] SGCA 5".
	neutralRe = regexp.MustCompile(
		`[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\s+v\.?\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*` +
			`\s+\[\d{4}\]\s+(?i:SG[A-Z]{2,4})\s+\d+`)

	// reportRe matches law-report citations with an optional volume, e.g.
	// "Ong v Wong [2008] 2 SLR(R) 18" or "Lee v Lee [1999] 1 AC 20".
	reportRe = regexp.MustCompile(
		`[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\s+v\.?\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*` +
			`\s+\[\d{4}\]\s+(?:\d+\s+)?(?i:SLR\(R\)|SLR|All\s+ER|WLR|MLJ|AC)\s+\d+`)

	// sgCiteRe matches a bare SG citation fragment, e.g. "[2023] sgca 15".
	sgCiteRe = regexp.MustCompile(`\[(\d{4})\]\s*((?i:SG[A-Z]{2,4}))\s*(\d+)`)
)

// Extract scans text for case citations and returns the unique candidates
// in order of first appearance. The neutral-citation pattern takes
// precedence: the report pattern only contributes matches whose span does
// not overlap a neutral match. Each candidate has internal whitespace runs
// collapsed; deduplication is case-insensitive, first occurrence wins.
func Extract(text string) []string {
	strict := neutralRe.FindAllStringIndex(text, -1)

	spans := make([][]int, 0, len(strict))
	spans = append(spans, strict...)

	for _, loose := range reportRe.FindAllStringIndex(text, -1) {
		if !overlapsAny(loose, strict) {
			spans = append(spans, loose)
		}
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i][0] < spans[j][0] })

	seen := make(map[string]bool)
	var candidates []string
	for _, span := range spans {
		c := collapseSpace(text[span[0]:span[1]])
		key := strings.ToLower(c)
		if seen[key] {
			continue
		}
		seen[key] = true
		candidates = append(candidates, c)
	}
	return candidates
}

// overlapsAny reports whether span intersects any of the taken spans.
func overlapsAny(span []int, taken [][]int) bool {
	for _, t := range taken {
		if span[0] < t[1] && t[0] < span[1] {
			return true
		}
	}
	return false
}

// Normalize standardizes a citation string. SG neutral citations are
// re-emitted as "[YYYY] CODE N" with the code uppercased; anything else is
// passed through trimmed. Normalizing an already-normalized citation yields
// the same string.
func Normalize(cite string) string {
	cite = strings.TrimSpace(cite)
	if cite == "" {
		return ""
	}
	m := sgCiteRe.FindStringSubmatch(cite)
	if m == nil {
		return cite
	}
	return fmt.Sprintf("[%s] %s %s", m[1], strings.ToUpper(m[2]), m[3])
}

// Find returns the first SG citation fragment in text (typically a case
// title scraped from a listing page), or "" when none is present. The
// fragment is returned as matched; callers normalize it later.
func Find(text string) string {
	return sgCiteRe.FindString(text)
}

// Parse splits an SG neutral citation into its year, court code (uppercased),
// and sequence number. ok is false when cite holds no SG citation.
func Parse(cite string) (year, code, number string, ok bool) {
	m := sgCiteRe.FindStringSubmatch(cite)
	if m == nil {
		return "", "", "", false
	}
	return m[1], strings.ToUpper(m[2]), m[3], true
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
