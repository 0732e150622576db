// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/pdiddy/briefcase/internal/citation"
	"github.com/pdiddy/briefcase/internal/scrape"
	"github.com/pdiddy/briefcase/pkg/types"
	"golang.org/x/net/html"
)

// judiciaryBase is the judiciary news-and-resources judgments listing.
// Var for test override.
var judiciaryBase = "https://www.judiciary.gov.sg"

// Judiciary scrapes the judiciary's recent-judgments listing, which
// surfaces newly published decisions before they reach the searchable
// archives.
type Judiciary struct {
	fetcher *scrape.Fetcher
}

// NewJudiciary builds the judiciary listing source.
func NewJudiciary(f *scrape.Fetcher) *Judiciary {
	f.SetHostInterval("www.judiciary.gov.sg", 3*time.Second)
	return &Judiciary{fetcher: f}
}

func (j *Judiciary) ID() string         { return SourceJudiciary }
func (j *Judiciary) Name() string       { return "Singapore Judiciary" }
func (j *Judiciary) RequiresAuth() bool { return false }

// Search scrapes the judgments listing and keeps entries matching the
// query.
func (j *Judiciary) Search(ctx context.Context, req Request) ([]RawResult, error) {
	listURL := judiciaryBase + "/news-and-resources/judgments?" + url.Values{"search": {req.Query}}.Encode()

	page, err := fetchPage(ctx, j.fetcher, SourceJudiciary, listURL)
	if err != nil {
		return nil, err
	}

	doc, err := scrape.ParseHTML(page.Body)
	if err != nil {
		return nil, parseError(SourceJudiciary, fmt.Errorf("parsing listing page: %v", err))
	}

	items := scrape.FindAll(doc, func(n *html.Node) bool {
		return scrape.HasClass(n, "judgments-listing-item")
	})

	var results []RawResult
	for _, item := range items {
		heading := scrape.FindFirst(item, func(n *html.Node) bool {
			return n.Type == html.ElementNode && n.Data == "h2"
		})
		if heading == nil {
			continue
		}
		link := scrape.FirstLink(heading)
		title := scrape.Text(heading)
		if title == "" {
			continue
		}

		summary := scrape.TextByClass(item, "judgment-summary")
		score := Relevance(title, summary, req.Query)
		if score == 0 {
			continue
		}

		var href string
		if link != nil {
			href = absoluteURL(page.FinalURL, scrape.Attr(link, "href"))
		}
		cite := citation.Find(title)
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

// Details is not served by the listing.
func (j *Judiciary) Details(ctx context.Context, caseID, credential string) (*types.CaseDetails, error) {
	return scraperDetails(SourceJudiciary, j.Name(), caseID), nil
}
