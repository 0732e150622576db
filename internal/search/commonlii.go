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

// commonliiBase is the CommonLII site root. Var for test override.
var commonliiBase = "http://www.commonlii.org"

// CommonLII scrapes the free CommonLII archive of Singapore judgments.
// Result pages list each hit as a dt (linked title) followed by a dd
// (context snippet).
type CommonLII struct {
	fetcher *scrape.Fetcher
}

// NewCommonLII builds the CommonLII source and registers its politeness
// interval with the shared fetcher.
func NewCommonLII(f *scrape.Fetcher) *CommonLII {
	f.SetHostInterval("www.commonlii.org", 2*time.Second)
	return &CommonLII{fetcher: f}
}

func (c *CommonLII) ID() string         { return SourceCommonLII }
func (c *CommonLII) Name() string       { return "CommonLII Singapore" }
func (c *CommonLII) RequiresAuth() bool { return false }

// Search runs a full-text query against the CommonLII search CGI and
// parses the dt/dd result listing.
func (c *CommonLII) Search(ctx context.Context, req Request) ([]RawResult, error) {
	params := url.Values{
		"method":    {"auto"},
		"query":     {req.Query},
		"mask_path": {"sg"},
	}
	searchURL := commonliiBase + "/cgi-bin/sinosrch.cgi?" + params.Encode()

	page, err := fetchPage(ctx, c.fetcher, SourceCommonLII, searchURL)
	if err != nil {
		return nil, err
	}

	doc, err := scrape.ParseHTML(page.Body)
	if err != nil {
		return nil, parseError(SourceCommonLII, fmt.Errorf("parsing result page: %v", err))
	}

	var results []RawResult
	for _, dt := range scrape.FindAll(doc, scrape.Element("dt")) {
		link := scrape.FirstLink(dt)
		if link == nil {
			continue
		}
		title := scrape.Text(link)
		if title == "" {
			continue
		}

		var summary string
		if dd := nextElement(dt, "dd"); dd != nil {
			summary = scrape.Text(dd)
		}

		cite := citation.Find(title)
		results = append(results, RawResult{
			Title:    title,
			Citation: cite,
			Court:    courtFromCitation(cite),
			Date:     yearFromCitation(cite),
			Summary:  summary,
			URL:      absoluteURL(page.FinalURL, scrape.Attr(link, "href")),
			Score:    Relevance(title, summary, req.Query),
		})
	}
	return results, nil
}

// Details is not served by CommonLII; the listing URL is the record.
func (c *CommonLII) Details(ctx context.Context, caseID, credential string) (*types.CaseDetails, error) {
	return scraperDetails(SourceCommonLII, c.Name(), caseID), nil
}

// nextElement returns the next sibling element with the given tag,
// skipping interleaved text nodes.
func nextElement(n *html.Node, tag string) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			if s.Data == tag {
				return s
			}
			return nil
		}
	}
	return nil
}

// courtFromCitation derives the court field from a citation's court code
// so the normalizer can resolve it to a full name.
func courtFromCitation(cite string) string {
	_, code, _, ok := citation.Parse(cite)
	if !ok {
		return ""
	}
	return code
}

// yearFromCitation derives a coarse date from the citation year when the
// listing carries no date of its own.
func yearFromCitation(cite string) string {
	year, _, _, ok := citation.Parse(cite)
	if !ok {
		return ""
	}
	return year
}
