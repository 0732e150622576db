// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/pdiddy/briefcase/internal/citation"
	"github.com/pdiddy/briefcase/internal/scrape"
	"github.com/pdiddy/briefcase/pkg/types"
	"golang.org/x/net/html"
)

// ogpBase is the Open Government Products judgments site root. Var for
// test override.
var ogpBase = "https://judgments.gov.sg"

// OGP scrapes the government judgments search. The endpoint serves JSON to
// API-shaped requests and HTML otherwise depending on deploy, so both
// payloads are accepted.
type OGP struct {
	fetcher *scrape.Fetcher
}

// NewOGP builds the OGP judgments source.
func NewOGP(f *scrape.Fetcher) *OGP {
	f.SetHostInterval("judgments.gov.sg", 2*time.Second)
	return &OGP{fetcher: f}
}

func (o *OGP) ID() string         { return SourceOGP }
func (o *OGP) Name() string       { return "Singapore Judgments (OGP)" }
func (o *OGP) RequiresAuth() bool { return false }

// Search queries the judgments search endpoint and parses whichever shape
// comes back.
func (o *OGP) Search(ctx context.Context, req Request) ([]RawResult, error) {
	searchURL := ogpBase + "/search?" + url.Values{"q": {req.Query}}.Encode()

	page, err := fetchPage(ctx, o.fetcher, SourceOGP, searchURL)
	if err != nil {
		return nil, err
	}

	if isJSON(page) {
		return o.parseJSON(page, req.Query)
	}
	return o.parseHTML(page, req.Query)
}

func isJSON(page *scrape.Page) bool {
	if strings.Contains(page.ContentType, "application/json") {
		return true
	}
	trimmed := strings.TrimSpace(page.Body)
	return strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")
}

func (o *OGP) parseJSON(page *scrape.Page, query string) ([]RawResult, error) {
	var jr struct {
		Results []struct {
			Title    string  `json:"title"`
			Citation string  `json:"citation"`
			Court    string  `json:"court"`
			Date     string  `json:"date"`
			Summary  string  `json:"summary"`
			URL      string  `json:"url"`
			Score    float64 `json:"score"`
		} `json:"results"`
	}
	if err := json.Unmarshal([]byte(page.Body), &jr); err != nil {
		return nil, parseError(SourceOGP, fmt.Errorf("decoding search response: %v", err))
	}

	results := make([]RawResult, 0, len(jr.Results))
	for _, r := range jr.Results {
		score := r.Score
		if score == 0 {
			score = Relevance(r.Title, r.Summary, query)
		}
		court := r.Court
		if court == "" {
			court = "Supreme Court of Singapore"
		}
		results = append(results, RawResult{
			Title:    r.Title,
			Citation: r.Citation,
			Court:    court,
			Date:     r.Date,
			Summary:  r.Summary,
			URL:      absoluteURL(page.FinalURL, r.URL),
			Score:    score,
		})
	}
	return results, nil
}

func (o *OGP) parseHTML(page *scrape.Page, query string) ([]RawResult, error) {
	doc, err := scrape.ParseHTML(page.Body)
	if err != nil {
		return nil, parseError(SourceOGP, fmt.Errorf("parsing result page: %v", err))
	}

	items := scrape.FindAll(doc, func(n *html.Node) bool {
		return scrape.HasAnyClass(n, "search-result", "result-item")
	})

	var results []RawResult
	for _, item := range items {
		link := scrape.FirstLink(item)
		if link == nil {
			continue
		}
		title := scrape.Text(link)
		if title == "" {
			continue
		}

		summary := scrape.TextByClass(item, "summary")
		cite := citation.Find(title)
		results = append(results, RawResult{
			Title:    title,
			Citation: cite,
			Court:    "Supreme Court of Singapore",
			Date:     scrape.TextByClass(item, "date"),
			Summary:  summary,
			URL:      absoluteURL(page.FinalURL, scrape.Attr(link, "href")),
			Score:    Relevance(title, summary, query),
		})
	}
	return results, nil
}

// Details is not served by the judgments site.
func (o *OGP) Details(ctx context.Context, caseID, credential string) (*types.CaseDetails, error) {
	return scraperDetails(SourceOGP, o.Name(), caseID), nil
}
