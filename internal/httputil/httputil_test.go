// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryAfterSeconds(t *testing.T) {
	assert.Equal(t, 120*time.Second, RetryAfter("120"))
	assert.Equal(t, time.Duration(0), RetryAfter("0"))
}

func TestRetryAfterHTTPDate(t *testing.T) {
	future := time.Now().Add(90 * time.Second).UTC().Format(http.TimeFormat)
	d := RetryAfter(future)
	assert.Greater(t, d, 80*time.Second)
	assert.LessOrEqual(t, d, 90*time.Second)
}

func TestRetryAfterPastDateAndGarbage(t *testing.T) {
	past := time.Now().Add(-time.Hour).UTC().Format(http.TimeFormat)
	assert.Equal(t, time.Duration(0), RetryAfter(past))
	assert.Equal(t, time.Duration(0), RetryAfter("soon"))
	assert.Equal(t, time.Duration(0), RetryAfter(""))
}

func TestDrainClose(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("body"))
	}))
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL)
	require.NoError(t, err)

	DrainClose(resp)
	// Draining twice must not panic.
	DrainClose(resp)
	DrainClose(nil)
}
