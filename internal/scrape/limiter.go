// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"context"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// HostLimiter enforces a minimum interval between requests to each host.
// Hosts without a configured interval get the default (one request per
// second). Waiting on one host's limiter never blocks another host.
type HostLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
}

const defaultInterval = time.Second

// NewHostLimiter creates an empty HostLimiter.
func NewHostLimiter() *HostLimiter {
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
	}
}

// SetInterval sets the minimum inter-request interval for host.
func (l *HostLimiter) SetInterval(host string, interval time.Duration) {
	if interval <= 0 {
		interval = defaultInterval
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.limiters[host] = rate.NewLimiter(rate.Every(interval), 1)
}

// Wait blocks until a request to rawURL's host is allowed, or until ctx is
// cancelled.
func (l *HostLimiter) Wait(ctx context.Context, rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return err
	}
	return l.limiter(parsed.Host).Wait(ctx)
}

func (l *HostLimiter) limiter(host string) *rate.Limiter {
	l.mu.RLock()
	lim, ok := l.limiters[host]
	l.mu.RUnlock()
	if ok {
		return lim
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if lim, ok := l.limiters[host]; ok {
		return lim
	}
	lim = rate.NewLimiter(rate.Every(defaultInterval), 1)
	l.limiters[host] = lim
	return lim
}
