// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/temoto/robotstxt"
)

// Robots checks robots.txt compliance for scraped hosts. Fetched rulesets
// are cached with a TTL so each host's robots.txt is refetched at most once
// per TTL window.
type Robots struct {
	cache     *gocache.Cache
	client    *http.Client
	userAgent string
}

// NewRobots creates a robots.txt checker caching rulesets for ttl.
func NewRobots(userAgent string, timeout, ttl time.Duration) *Robots {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Robots{
		cache:     gocache.New(ttl, 10*time.Minute),
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Allowed reports whether rawURL may be fetched according to the host's
// robots.txt. An unreachable or unparsable robots.txt allows by default.
func (r *Robots) Allowed(ctx context.Context, rawURL string) (bool, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false, fmt.Errorf("parse URL: %w", err)
	}

	data, err := r.ruleset(ctx, parsed.Scheme, parsed.Host)
	if err != nil {
		return true, nil
	}
	return data.TestAgent(parsed.Path, r.userAgent), nil
}

func (r *Robots) ruleset(ctx context.Context, scheme, host string) (*robotstxt.RobotsData, error) {
	if cached, ok := r.cache.Get(host); ok {
		return cached.(*robotstxt.RobotsData), nil
	}

	robotsURL := fmt.Sprintf("%s://%s/robots.txt", scheme, host)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		return nil, err
	}

	r.cache.SetDefault(host, data)
	return data, nil
}
