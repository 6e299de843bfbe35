// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/scholar-engine/pkg/types"
)

func TestHTTPFetcher_ReturnsBody(t *testing.T) {
	var gotHeaders http.Header
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "q=abcd", r.URL.RawQuery)
		fmt.Fprint(w, "<html><body>ok</body></html>")
	}))
	defer ts.Close()

	f := &HTTPFetcher{Client: ts.Client(), Log: zerolog.Nop()}
	body, err := f.Fetch(context.Background(), ts.URL+"/scholar?q=abcd")
	require.NoError(t, err)
	assert.Equal(t, "<html><body>ok</body></html>", body)
	assert.Empty(t, gotHeaders.Get("Cookie"))
}

func TestHTTPFetcher_NonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	f := &HTTPFetcher{Client: ts.Client(), Log: zerolog.Nop()}
	_, err := f.Fetch(context.Background(), ts.URL)
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusServiceUnavailable, se.StatusCode)
}

func TestHTTPFetcher_NoRetryByDefault(t *testing.T) {
	var calls int32
	ts := countingServer(t, -1, &calls)

	f := NewHTTPFetcher(types.HTTPConfig{}, zerolog.Nop())
	f.Client = ts.Client()
	_, err := f.Fetch(context.Background(), ts.URL)
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestHTTPFetcher_RetriesWhenConfigured(t *testing.T) {
	var calls int32
	ts := countingServer(t, 1, &calls)

	f := NewHTTPFetcher(types.HTTPConfig{MaxRetries: 2}, zerolog.Nop())
	f.Client = ts.Client()
	_, err := f.Fetch(context.Background(), ts.URL)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestHTTPFetcher_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := ts.URL
	ts.Close()

	f := NewHTTPFetcher(types.HTTPConfig{}, zerolog.Nop())
	_, err := f.Fetch(context.Background(), url)
	require.Error(t, err)
}
