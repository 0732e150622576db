// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scrape provides the polite HTML fetch layer shared by the
// scraping source adapters: per-host politeness intervals, robots.txt
// compliance, and HTML node helpers.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pdiddy/briefcase/pkg/types"
)

// ErrRobotsDisallowed is returned when robots.txt forbids fetching a URL.
var ErrRobotsDisallowed = errors.New("disallowed by robots.txt")

// Page is the result of one fetch. Non-2xx responses are returned as a
// Page, not an error, so adapters can classify upstream status codes
// themselves.
type Page struct {
	Body        string
	StatusCode  int
	ContentType string
	RetryAfter  string
	FinalURL    string
}

// Fetcher fetches pages from public sites. Each fetch waits out the
// politeness interval configured for the target host and checks robots.txt
// before going to the network. A Fetcher is safe for concurrent use;
// politeness waits for one host never block fetches to another.
type Fetcher struct {
	client    *http.Client
	userAgent string
	maxBytes  int64
	limiter   *HostLimiter
	robots    *Robots
}

// NewFetcher creates a Fetcher. When cfg.RespectRobots is false the robots
// check is skipped entirely.
func NewFetcher(httpCfg types.HTTPConfig, cfg types.ScrapeConfig) *Fetcher {
	maxBytes := cfg.MaxBodyBytes
	if maxBytes <= 0 {
		maxBytes = 2 << 20
	}

	f := &Fetcher{
		client: &http.Client{
			Timeout: httpCfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: httpCfg.UserAgent,
		maxBytes:  maxBytes,
		limiter:   NewHostLimiter(),
	}
	if cfg.RespectRobots {
		f.robots = NewRobots(httpCfg.UserAgent, httpCfg.Timeout, cfg.RobotsCacheTTL)
	}
	return f
}

// SetHostInterval configures the minimum delay between consecutive
// requests to host. Adapters call this once at construction with their
// source's politeness interval.
func (f *Fetcher) SetHostInterval(host string, interval time.Duration) {
	f.limiter.SetInterval(host, interval)
}

// Get fetches rawURL after politeness and robots checks. Transport
// failures and robots refusals return an error; HTTP error statuses come
// back inside the Page.
func (f *Fetcher) Get(ctx context.Context, rawURL string) (*Page, error) {
	if err := f.limiter.Wait(ctx, rawURL); err != nil {
		return nil, err
	}

	if f.robots != nil {
		allowed, err := f.robots.Allowed(ctx, rawURL)
		if err == nil && !allowed {
			return nil, fmt.Errorf("%s: %w", rawURL, ErrRobotsDisallowed)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return &Page{
		Body:        string(body),
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		RetryAfter:  resp.Header.Get("Retry-After"),
		FinalURL:    resp.Request.URL.String(),
	}, nil
}
