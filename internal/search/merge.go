// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"sort"
	"strings"

	"github.com/pdiddy/briefcase/pkg/types"
)

// Merge combines result sets from multiple sources into one deduplicated
// list ordered by descending relevance. When two sources report the same
// case, the copy from the stronger-priority source is kept whole; no field
// mixing across sources. Inputs are not mutated. Merging a single set with
// nothing is effectively a no-op apart from ordering.
func (s *Service) Merge(sets ...[]types.CaseResult) []types.CaseResult {
	var all []types.CaseResult
	for _, set := range sets {
		all = append(all, set...)
	}
	// Stronger-priority sources first so the first occurrence of a key wins.
	sort.SliceStable(all, func(i, j int) bool {
		return s.registry.Priority(all[i].Source) < s.registry.Priority(all[j].Source)
	})

	seen := make(map[string]struct{}, len(all))
	merged := make([]types.CaseResult, 0, len(all))
	for _, r := range all {
		key := dedupeKey(r)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, r)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].RelevanceScore > merged[j].RelevanceScore
	})
	return merged
}

// dedupeKey identifies a case across sources: the citation when present
// (lowercased, all whitespace removed), otherwise a title prefix. Results
// with neither never collide thanks to their generated ids.
func dedupeKey(r types.CaseResult) string {
	if r.Citation != "" {
		return "c:" + strings.ReplaceAll(strings.ToLower(r.Citation), " ", "")
	}
	if r.Title != "" && r.Title != "Untitled Case" {
		title := strings.ReplaceAll(strings.ToLower(r.Title), " ", "")
		if len(title) > 50 {
			title = title[:50]
		}
		return "t:" + title
	}
	return "i:" + r.ID
}
