// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the briefcase pipeline:
// canonical case records, search requests, and configuration.
package types

import "time"

// Parties holds the named parties of a case when the source reports them.
type Parties struct {
	Plaintiff string `json:"plaintiff,omitempty" yaml:"plaintiff,omitempty"`
	Defendant string `json:"defendant,omitempty" yaml:"defendant,omitempty"`
}

// CaseResult is the canonical, source-agnostic record produced for every
// search hit regardless of which backend found it. All sources are reduced
// to this shape by the normalizer; only the extension fields at the bottom
// vary per source.
type CaseResult struct {
	// ID is unique per result and prefixed with the source id. Results
	// without an upstream id get a generated one.
	ID string `json:"id" yaml:"id"`

	// Title is the case title, never empty ("Untitled Case" when the
	// source omits it).
	Title string `json:"title" yaml:"title"`

	// Citation is the standardized "[YYYY] CODE N" citation when one was
	// recognized, the source's text otherwise, or empty when absent.
	Citation string `json:"citation,omitempty" yaml:"citation,omitempty"`

	// Court is the normalized court name, or "Unknown Court".
	Court string `json:"court" yaml:"court"`

	// Date is ISO YYYY-MM-DD when the source date parsed, the original
	// string otherwise, or empty when absent.
	Date string `json:"date,omitempty" yaml:"date,omitempty"`

	// Summary is the whitespace-collapsed headnote or snippet, truncated
	// to 500 characters.
	Summary string `json:"summary" yaml:"summary"`

	// URL points at the judgment on the source site when known.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Source identifies which backend found this result (e.g. "lawnet",
	// "commonlii").
	Source string `json:"source" yaml:"source"`

	// RelevanceScore orders results within one source. Scores are not
	// calibrated across sources.
	RelevanceScore float64 `json:"relevanceScore" yaml:"relevance_score"`

	// Extension fields, populated per source.
	Judges       []string `json:"judges,omitempty" yaml:"judges,omitempty"`
	Parties      *Parties `json:"parties,omitempty" yaml:"parties,omitempty"`
	Categories   []string `json:"categories,omitempty" yaml:"categories,omitempty"`
	Jurisdiction string   `json:"jurisdiction,omitempty" yaml:"jurisdiction,omitempty"`
	CourtType    string   `json:"courtType,omitempty" yaml:"court_type,omitempty"`
	Government   bool     `json:"government,omitempty" yaml:"government,omitempty"`
}

// CaseDetails is the full detail record returned by a source's details
// lookup. Scraping sources only fill ID, Source, URL, and Message since
// judgment parsing is out of scope; the structured API fills the rest.
type CaseDetails struct {
	CaseResult `yaml:",inline"`

	FullText         string   `json:"fullText,omitempty" yaml:"full_text,omitempty"`
	ProcedureHistory string   `json:"procedureHistory,omitempty" yaml:"procedure_history,omitempty"`
	CitedCases       []string `json:"citedCases,omitempty" yaml:"cited_cases,omitempty"`
	Legislation      []string `json:"legislation,omitempty" yaml:"legislation,omitempty"`
	Keywords         []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Catchwords       string   `json:"catchwords,omitempty" yaml:"catchwords,omitempty"`

	// Message is a placeholder note for sources that only point back at
	// their own site.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// SourceInfo describes one registered backend for listing purposes.
type SourceInfo struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	RequiresAuth bool   `json:"requiresAuth" yaml:"requires_auth"`
}

// SearchResultSet is one completed search: the term that was dispatched,
// the source(s) it ran against, and the ranked canonical results. Callers
// keep at most one set per term, replacing it on re-search.
type SearchResultSet struct {
	SearchTerm string       `json:"searchTerm" yaml:"search_term"`
	SourceID   string       `json:"sourceId" yaml:"source_id"`
	Results    []CaseResult `json:"results" yaml:"results"`
	Timestamp  time.Time    `json:"timestamp" yaml:"timestamp"`
}
