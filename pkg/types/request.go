// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SearchFilters narrows a search. All fields are optional; zero values mean
// "no filter". Only the structured APIs honour every field. Scraped sites
// expose no filter controls, so the scraping adapters ignore filters and
// the orchestrator caps result counts after merging.
type SearchFilters struct {
	Limit    int    `json:"limit,omitempty" yaml:"limit,omitempty"`
	Offset   int    `json:"offset,omitempty" yaml:"offset,omitempty"`
	Sort     string `json:"sort,omitempty" yaml:"sort,omitempty"`
	DateFrom string `json:"dateFrom,omitempty" yaml:"date_from,omitempty"`
	DateTo   string `json:"dateTo,omitempty" yaml:"date_to,omitempty"`
	Court    string `json:"court,omitempty" yaml:"court,omitempty"`
	CaseType string `json:"caseType,omitempty" yaml:"case_type,omitempty"`
}
