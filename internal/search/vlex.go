// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pdiddy/briefcase/internal/httputil"
	"github.com/pdiddy/briefcase/pkg/types"
)

// vlexAPIBase is the vLex Justis search endpoint. Var for test override.
var vlexAPIBase = "https://api.vlex.com/v1"

// VLex queries the vLex Justis commercial database, scoped to Singapore
// judgments.
type VLex struct {
	client    *http.Client
	userAgent string
}

// NewVLex builds the vLex source.
func NewVLex(cfg types.HTTPConfig) *VLex {
	return &VLex{client: httputil.NewClient(cfg.Timeout), userAgent: cfg.UserAgent}
}

func (v *VLex) ID() string         { return SourceVLex }
func (v *VLex) Name() string       { return "vLex Justis" }
func (v *VLex) RequiresAuth() bool { return true }

type vlexDocument struct {
	DocID     string         `json:"docId"`
	Heading   string         `json:"heading"`
	Citation  string         `json:"citation"`
	Court     string         `json:"court"`
	Decided   string         `json:"decided"`
	Snippet   string         `json:"snippet"`
	Link      string         `json:"link"`
	Rank      float64        `json:"rank"`
	Judges    []string       `json:"bench"`
	Parties   *types.Parties `json:"parties"`
	Subjects  []string       `json:"subjects"`
}

// Search queries the vLex document search with token authentication.
func (v *VLex) Search(ctx context.Context, req Request) ([]RawResult, error) {
	params := url.Values{
		"q":            {req.Query},
		"jurisdiction": {"SG"},
	}
	if req.Filters.Limit > 0 {
		params.Set("per_page", strconv.Itoa(req.Filters.Limit))
	}
	if req.Filters.DateFrom != "" {
		params.Set("decided_after", req.Filters.DateFrom)
	}
	if req.Filters.DateTo != "" {
		params.Set("decided_before", req.Filters.DateTo)
	}

	body, err := v.get(ctx, vlexAPIBase+"/search?"+params.Encode(), req.Credential)
	if err != nil {
		return nil, err
	}

	var vr struct {
		Documents []vlexDocument `json:"documents"`
	}
	if err := json.Unmarshal(body, &vr); err != nil {
		return nil, parseError(SourceVLex, fmt.Errorf("decoding search response: %v", err))
	}

	results := make([]RawResult, 0, len(vr.Documents))
	for _, d := range vr.Documents {
		score := d.Rank
		if score == 0 {
			score = 5
		}
		results = append(results, RawResult{
			ID:         d.DocID,
			Title:      d.Heading,
			Citation:   d.Citation,
			Court:      d.Court,
			Date:       d.Decided,
			Summary:    d.Snippet,
			URL:        d.Link,
			Score:      score,
			Judges:     d.Judges,
			Parties:    d.Parties,
			Categories: d.Subjects,
		})
	}
	return results, nil
}

// Details fetches the full document record for one case.
func (v *VLex) Details(ctx context.Context, caseID, credential string) (*types.CaseDetails, error) {
	body, err := v.get(ctx, vlexAPIBase+"/documents/"+url.PathEscape(caseID), credential)
	if err != nil {
		return nil, err
	}

	var d struct {
		vlexDocument
		FullText   string   `json:"fullText"`
		Cited      []string `json:"citedCases"`
		Statutes   []string `json:"statutes"`
		Keywords   []string `json:"keywords"`
		Catchwords string   `json:"catchwords"`
	}
	if err := json.Unmarshal(body, &d); err != nil {
		return nil, parseError(SourceVLex, fmt.Errorf("decoding document record: %v", err))
	}

	raw := RawResult{
		ID:         firstNonEmpty(d.DocID, caseID),
		Title:      d.Heading,
		Citation:   d.Citation,
		Court:      d.Court,
		Date:       d.Decided,
		Summary:    d.Snippet,
		URL:        d.Link,
		Judges:     d.Judges,
		Parties:    d.Parties,
		Categories: d.Subjects,
	}
	normalized := Normalize([]RawResult{raw}, SourceVLex)
	return &types.CaseDetails{
		CaseResult:  normalized[0],
		FullText:    d.FullText,
		CitedCases:  d.Cited,
		Legislation: d.Statutes,
		Keywords:    d.Keywords,
		Catchwords:  d.Catchwords,
	}, nil
}

func (v *VLex) get(ctx context.Context, reqURL, credential string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: creating request: %w", SourceVLex, err)
	}
	httpReq.Header.Set("Authorization", "Token "+credential)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", v.userAgent)

	resp, err := v.client.Do(httpReq)
	if err != nil {
		return nil, transportError(SourceVLex, err)
	}
	if resp.StatusCode == http.StatusNotFound {
		httputil.DrainClose(resp)
		return nil, fmt.Errorf("%s: no document matches the requested id: %w", SourceVLex, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		retryAfter := resp.Header.Get("Retry-After")
		httputil.DrainClose(resp)
		return nil, statusError(SourceVLex, resp.StatusCode, retryAfter)
	}
	return readBody(SourceVLex, resp)
}
