// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import "strings"

// Relevance scores a result against the query text. The verbatim query in
// the title dominates; individual query words (longer than two characters,
// so stopwords like "v", "of", "re" never score) add smaller weights for
// title and summary hits. Scraped sources have no upstream ranking signal,
// so this heuristic is their only ordering.
func Relevance(title, summary, query string) float64 {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0
	}
	titleLower := strings.ToLower(title)
	summaryLower := strings.ToLower(summary)

	var score float64
	if strings.Contains(titleLower, q) {
		score += 10
	}
	for _, word := range strings.Fields(q) {
		if len(word) <= 2 {
			continue
		}
		if strings.Contains(titleLower, word) {
			score += 3
		}
		if strings.Contains(summaryLower, word) {
			score++
		}
	}
	return score
}
