// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/briefcase/internal/httputil"
	"github.com/pdiddy/briefcase/pkg/types"
)

// lawnetAPIBase is the LawNet case search API root. Declared as a var so
// tests can substitute an httptest server.
var lawnetAPIBase = "https://api.lawnet.sg/v1"

// LawNet queries the commercial LawNet case database. It is the only
// source with upstream relevance ranking and structured judge, party and
// category metadata, so it carries the strongest merge priority.
type LawNet struct {
	client    *http.Client
	userAgent string
}

// NewLawNet builds the LawNet source.
func NewLawNet(cfg types.HTTPConfig) *LawNet {
	return &LawNet{client: httputil.NewClient(cfg.Timeout), userAgent: cfg.UserAgent}
}

func (l *LawNet) ID() string         { return SourceLawNet }
func (l *LawNet) Name() string       { return "LawNet Singapore" }
func (l *LawNet) RequiresAuth() bool { return true }

// lawnetCase mirrors the API's case record. The API has shipped two field
// vocabularies over time; both are decoded and the older aliases win only
// when the newer names are absent.
type lawnetCase struct {
	ID              string   `json:"id"`
	CaseID          string   `json:"caseId"`
	Title           string   `json:"title"`
	CaseName        string   `json:"caseName"`
	Citation        string   `json:"citation"`
	NeutralCitation string   `json:"neutralCitation"`
	Court           string   `json:"court"`
	CourtName       string   `json:"courtName"`
	Date            string   `json:"date"`
	DecisionDate    string   `json:"decisionDate"`
	Judges          []string `json:"judges"`
	JudgeNames      []string `json:"judgeNames"`
	Summary         string   `json:"summary"`
	Headnote        string   `json:"headnote"`
	URL             string   `json:"url"`
	Permalink       string   `json:"permalink"`
	Score           *float64 `json:"score"`
	Relevance       *float64 `json:"relevance"`
	Parties         *types.Parties `json:"parties"`
	Categories      []string `json:"categories"`
}

type lawnetResponse struct {
	Results []lawnetCase `json:"results"`
	Cases   []lawnetCase `json:"cases"`
}

// Search queries the LawNet search endpoint with Bearer authentication.
func (l *LawNet) Search(ctx context.Context, req Request) ([]RawResult, error) {
	params := url.Values{"q": {req.Query}}
	f := req.Filters
	if f.Limit > 0 {
		params.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		params.Set("offset", strconv.Itoa(f.Offset))
	}
	if f.Sort != "" {
		params.Set("sort", f.Sort)
	}
	if f.DateFrom != "" {
		params.Set("dateFrom", f.DateFrom)
	}
	if f.DateTo != "" {
		params.Set("dateTo", f.DateTo)
	}
	if f.Court != "" {
		params.Set("court", f.Court)
	}
	if f.CaseType != "" {
		params.Set("caseType", f.CaseType)
	}

	body, err := l.get(ctx, lawnetAPIBase+"/cases/search?"+params.Encode(), req.Credential)
	if err != nil {
		return nil, err
	}

	var lr lawnetResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return nil, parseError(SourceLawNet, fmt.Errorf("decoding search response: %v", err))
	}
	cases := lr.Results
	if len(cases) == 0 {
		cases = lr.Cases
	}

	results := make([]RawResult, 0, len(cases))
	for _, c := range cases {
		r := RawResult{
			ID:         firstNonEmpty(c.ID, c.CaseID),
			Title:      firstNonEmpty(c.Title, c.CaseName),
			Citation:   firstNonEmpty(c.Citation, c.NeutralCitation),
			Court:      firstNonEmpty(c.Court, c.CourtName),
			Date:       firstNonEmpty(c.Date, c.DecisionDate),
			Summary:    firstNonEmpty(c.Summary, c.Headnote),
			URL:        firstNonEmpty(c.URL, c.Permalink),
			Judges:     c.Judges,
			Parties:    c.Parties,
			Categories: c.Categories,
		}
		if len(r.Judges) == 0 {
			r.Judges = c.JudgeNames
		}
		switch {
		case c.Score != nil:
			r.Score = *c.Score
		case c.Relevance != nil:
			r.Score = *c.Relevance
		default:
			// Records the API chose to return are relevant even unranked.
			r.Score = 5
		}
		results = append(results, r)
	}
	return results, nil
}

// Details fetches the full record of one case.
func (l *LawNet) Details(ctx context.Context, caseID, credential string) (*types.CaseDetails, error) {
	body, err := l.get(ctx, lawnetAPIBase+"/cases/"+url.PathEscape(caseID), credential)
	if err != nil {
		return nil, err
	}

	var d struct {
		lawnetCase
		FullText         string   `json:"fullText"`
		ProcedureHistory string   `json:"procedureHistory"`
		CitedCases       []string `json:"citedCases"`
		Legislation      []string `json:"legislation"`
		Keywords         []string `json:"keywords"`
		Catchwords       string   `json:"catchwords"`
	}
	if err := json.Unmarshal(body, &d); err != nil {
		return nil, parseError(SourceLawNet, fmt.Errorf("decoding case record: %v", err))
	}

	raw := RawResult{
		ID:         firstNonEmpty(d.ID, d.CaseID, caseID),
		Title:      firstNonEmpty(d.Title, d.CaseName),
		Citation:   firstNonEmpty(d.Citation, d.NeutralCitation),
		Court:      firstNonEmpty(d.Court, d.CourtName),
		Date:       firstNonEmpty(d.Date, d.DecisionDate),
		Summary:    firstNonEmpty(d.Summary, d.Headnote),
		URL:        firstNonEmpty(d.URL, d.Permalink),
		Judges:     d.Judges,
		Parties:    d.Parties,
		Categories: d.Categories,
	}
	normalized := Normalize([]RawResult{raw}, SourceLawNet)
	return &types.CaseDetails{
		CaseResult:       normalized[0],
		FullText:         d.FullText,
		ProcedureHistory: d.ProcedureHistory,
		CitedCases:       d.CitedCases,
		Legislation:      d.Legislation,
		Keywords:         d.Keywords,
		Catchwords:       d.Catchwords,
	}, nil
}

// get performs an authenticated GET and returns the body on HTTP 200,
// classifying every other outcome into the error taxonomy.
func (l *LawNet) get(ctx context.Context, reqURL, credential string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: creating request: %w", SourceLawNet, err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+strings.TrimSpace(credential))
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", l.userAgent)

	resp, err := l.client.Do(httpReq)
	if err != nil {
		return nil, transportError(SourceLawNet, err)
	}
	if resp.StatusCode == http.StatusNotFound {
		httputil.DrainClose(resp)
		return nil, fmt.Errorf("%s: no case matches the requested id: %w", SourceLawNet, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		retryAfter := resp.Header.Get("Retry-After")
		httputil.DrainClose(resp)
		return nil, statusError(SourceLawNet, resp.StatusCode, retryAfter)
	}
	return readBody(SourceLawNet, resp)
}

// firstNonEmpty returns the first non-blank value.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
