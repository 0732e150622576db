// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/pdiddy/briefcase/internal/httputil"
)

// Sentinel errors for the failure classes a search can produce. Callers
// dispatch with errors.Is; adapters wrap these with source and upstream
// detail using %w.
var (
	ErrInvalidRequest    = errors.New("invalid request")
	ErrUnknownSource     = errors.New("unknown source")
	ErrMissingCredential = errors.New("missing credential")
	ErrAuth              = errors.New("authentication rejected")
	ErrRateLimited       = errors.New("rate limited by source")
	ErrUnavailable       = errors.New("source unavailable")
	ErrParse             = errors.New("unparseable source response")
	ErrNotFound          = errors.New("case not found")
)

// RateLimitError is the concrete error behind ErrRateLimited when the
// upstream supplied a Retry-After hint. The interval is advisory; the
// engine never retries on the caller's behalf.
type RateLimitError struct {
	Source     string
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("%s: rate limited by source, retry after %s", e.Source, e.RetryAfter)
	}
	return fmt.Sprintf("%s: rate limited by source", e.Source)
}

func (e *RateLimitError) Is(target error) bool { return target == ErrRateLimited }

// statusError classifies a non-2xx upstream status into the error
// taxonomy. retryAfter is the raw Retry-After header value, if any.
func statusError(sourceID string, code int, retryAfter string) error {
	switch {
	case code == 401 || code == 403:
		return fmt.Errorf("%s: upstream returned HTTP %d: %w", sourceID, code, ErrAuth)
	case code == 429:
		return &RateLimitError{Source: sourceID, RetryAfter: httputil.RetryAfter(retryAfter)}
	case code >= 500:
		return fmt.Errorf("%s: upstream returned HTTP %d: %w", sourceID, code, ErrUnavailable)
	default:
		return fmt.Errorf("%s: unexpected upstream HTTP %d: %w", sourceID, code, ErrUnavailable)
	}
}

// transportError classifies a failed request (no response at all) as
// unavailability. Context cancellation passes through untouched so the
// caller's own deadline is distinguishable from a slow upstream.
func transportError(sourceID string, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%s: request timed out: %w", sourceID, ErrUnavailable)
	}
	return fmt.Errorf("%s: request failed: %v: %w", sourceID, err, ErrUnavailable)
}

// parseError wraps a malformed-payload failure.
func parseError(sourceID string, err error) error {
	return fmt.Errorf("%s: %v: %w", sourceID, err, ErrParse)
}

// apiBodyLimit caps how much of an API response is read. Legitimate search
// payloads are far smaller.
const apiBodyLimit = 4 << 20

// readBody consumes and closes a successful API response body.
func readBody(sourceID string, resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, apiBodyLimit))
	if err != nil {
		return nil, fmt.Errorf("%s: reading response body: %w", sourceID, ErrUnavailable)
	}
	return body, nil
}
