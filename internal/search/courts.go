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

// courtsBase is the Singapore Courts judgments portal root. Var for test
// override.
var courtsBase = "https://www.judiciary.gov.sg"

// Courts scrapes the Singapore Courts judgments search. The portal has
// shipped several markup generations, so the parser accepts any of the
// known result-container and field class names, and a second search path
// is tried when the first returns nothing usable.
type Courts struct {
	fetcher *scrape.Fetcher
}

// NewCourts builds the Singapore Courts source.
func NewCourts(f *scrape.Fetcher) *Courts {
	f.SetHostInterval("www.judiciary.gov.sg", 3*time.Second)
	return &Courts{fetcher: f}
}

func (c *Courts) ID() string         { return SourceCourts }
func (c *Courts) Name() string       { return "Singapore Courts" }
func (c *Courts) RequiresAuth() bool { return false }

// Search queries the judgments search page, falling back to the
// alternative listing path when the primary yields no results.
func (c *Courts) Search(ctx context.Context, req Request) ([]RawResult, error) {
	primary := courtsBase + "/judgments/search?" + url.Values{"q": {req.Query}}.Encode()
	results, err := c.searchPage(ctx, primary, req.Query)
	if err != nil {
		return nil, err
	}
	if len(results) > 0 {
		return results, nil
	}

	fallback := courtsBase + "/judgments?" + url.Values{"keyword": {req.Query}}.Encode()
	return c.searchPage(ctx, fallback, req.Query)
}

func (c *Courts) searchPage(ctx context.Context, pageURL, query string) ([]RawResult, error) {
	page, err := fetchPage(ctx, c.fetcher, SourceCourts, pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := scrape.ParseHTML(page.Body)
	if err != nil {
		return nil, parseError(SourceCourts, fmt.Errorf("parsing result page: %v", err))
	}

	items := scrape.FindAll(doc, func(n *html.Node) bool {
		return scrape.HasAnyClass(n, "judgment-item", "case-item", "result-item")
	})

	var results []RawResult
	for _, item := range items {
		title := scrape.TextByClass(item, "case-title", "judgment-title")
		if title == "" {
			if h := scrape.FindFirst(item, func(n *html.Node) bool {
				return n.Type == html.ElementNode && (n.Data == "h3" || n.Data == "h4")
			}); h != nil {
				title = scrape.Text(h)
			}
		}

		summary := scrape.TextByClass(item, "summary", "headnote")
		score := Relevance(title, summary, query)
		if score == 0 {
			continue
		}

		var href string
		if link := scrape.FirstLink(item); link != nil {
			href = absoluteURL(page.FinalURL, scrape.Attr(link, "href"))
		}

		results = append(results, RawResult{
			Title:    title,
			Citation: scrape.TextByClass(item, "citation"),
			Court:    scrape.TextByClass(item, "court"),
			Date:     scrape.TextByClass(item, "date"),
			Summary:  summary,
			URL:      href,
			Score:    score,
		})
	}
	return results, nil
}

// Details is not served by the judgments portal.
func (c *Courts) Details(ctx context.Context, caseID, credential string) (*types.CaseDetails, error) {
	return scraperDetails(SourceCourts, c.Name(), caseID), nil
}
