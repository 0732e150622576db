// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/pdiddy/briefcase/internal/scrape"
	"github.com/pdiddy/briefcase/pkg/types"
	"golang.org/x/net/html"
)

// slwBase is the Singapore Law Watch site root. Var for test override.
var slwBase = "https://www.singaporelawwatch.sg"

// SLW scrapes Singapore Law Watch's free judgments feed.
type SLW struct {
	fetcher *scrape.Fetcher
}

// NewSLW builds the Singapore Law Watch source.
func NewSLW(f *scrape.Fetcher) *SLW {
	f.SetHostInterval("www.singaporelawwatch.sg", 3*time.Second)
	return &SLW{fetcher: f}
}

func (s *SLW) ID() string         { return SourceSLW }
func (s *SLW) Name() string       { return "Singapore Law Watch" }
func (s *SLW) RequiresAuth() bool { return false }

// Search scrapes the judgments section and keeps entries matching the
// query.
func (s *SLW) Search(ctx context.Context, req Request) ([]RawResult, error) {
	searchURL := slwBase + "/Judgments?" + url.Values{"q": {req.Query}}.Encode()

	page, err := fetchPage(ctx, s.fetcher, SourceSLW, searchURL)
	if err != nil {
		return nil, err
	}

	doc, err := scrape.ParseHTML(page.Body)
	if err != nil {
		return nil, parseError(SourceSLW, fmt.Errorf("parsing judgments page: %v", err))
	}

	items := scrape.FindAll(doc, func(n *html.Node) bool {
		return scrape.HasClass(n, "judgment-item")
	})

	var results []RawResult
	for _, item := range items {
		titleNode := scrape.FindFirst(item, func(n *html.Node) bool {
			return scrape.HasClass(n, "title")
		})
		if titleNode == nil {
			continue
		}
		title := scrape.Text(titleNode)
		if title == "" {
			continue
		}

		summary := scrape.TextByClass(item, "summary")
		score := Relevance(title, summary, req.Query)
		if score == 0 {
			continue
		}

		var href string
		if link := scrape.FirstLink(titleNode); link != nil {
			href = absoluteURL(page.FinalURL, scrape.Attr(link, "href"))
		}
		cite := scrape.TextByClass(item, "citation")
		results = append(results, RawResult{
			Title:    title,
			Citation: cite,
			Court:    courtFromCitation(cite),
			Date:     scrape.TextByClass(item, "date"),
			Summary:  summary,
			URL:      href,
			Score:    score,
		})
	}
	return results, nil
}

// Details is not served by Singapore Law Watch.
func (s *SLW) Details(ctx context.Context, caseID, credential string) (*types.CaseDetails, error) {
	return scraperDetails(SourceSLW, s.Name(), caseID), nil
}
