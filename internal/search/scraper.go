// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/briefcase/internal/scrape"
	"github.com/pdiddy/briefcase/pkg/types"
)

// fetchPage retrieves one page through the shared fetcher and classifies
// failures into the source error taxonomy. Scraped sites report errors the
// same way the APIs do, so callers dispatch uniformly.
func fetchPage(ctx context.Context, f *scrape.Fetcher, sourceID, pageURL string) (*scrape.Page, error) {
	page, err := f.Get(ctx, pageURL)
	if err != nil {
		if errors.Is(err, scrape.ErrRobotsDisallowed) {
			return nil, fmt.Errorf("%s: robots.txt disallows %s: %w", sourceID, pageURL, ErrUnavailable)
		}
		return nil, transportError(sourceID, err)
	}
	if page.StatusCode != http.StatusOK {
		return nil, statusError(sourceID, page.StatusCode, page.RetryAfter)
	}
	return page, nil
}

// absoluteURL resolves a possibly-relative href against the page it was
// scraped from. Unresolvable hrefs come back unchanged.
func absoluteURL(pageURL, href string) string {
	if href == "" {
		return ""
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

// scraperDetails is the Details implementation shared by the scraped
// sources: they expose no per-case endpoint, so the response points the
// caller at the source website instead.
func scraperDetails(sourceID, sourceName, caseID string) *types.CaseDetails {
	return &types.CaseDetails{
		CaseResult: types.CaseResult{ID: caseID, Source: sourceID},
		Message:    fmt.Sprintf("Full case details are available on the %s website.", sourceName),
	}
}
