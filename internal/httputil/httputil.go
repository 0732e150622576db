// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across source adapters.
package httputil

import (
	"io"
	"net/http"
	"strconv"
	"time"
)

// NewClient returns an HTTP client with the given timeout. Adapters share
// one client per process so connection pools are reused.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// DrainClose discards and closes a response body so the underlying
// connection can be reused.
func DrainClose(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}

// RetryAfter parses a Retry-After header value into a duration. It accepts
// the delay-seconds form ("120") and the HTTP-date form. Returns 0 when the
// value is absent or unparsable. Upstream 429s are never retried
// automatically; the parsed interval is surfaced to the caller as a
// suggestion.
func RetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(value); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}
