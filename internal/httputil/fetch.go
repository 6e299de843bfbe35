// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/scholar-engine/pkg/types"
)

// StatusError reports a response with a status other than 200 OK.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s returned HTTP %d", e.URL, e.StatusCode)
}

// HTTPFetcher downloads documents with a plain GET request. It sets no
// headers or cookies of its own. The underlying http.Client is safe for
// concurrent use, so one fetcher can serve many in-flight requests.
type HTTPFetcher struct {
	Client *http.Client

	// MaxRetries is the number of retries on HTTP 429. Zero sends a
	// single request.
	MaxRetries int

	Log zerolog.Logger
}

// NewHTTPFetcher builds a fetcher from cfg. A zero timeout means 30s.
func NewHTTPFetcher(cfg types.HTTPConfig, log zerolog.Logger) *HTTPFetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPFetcher{
		Client:     &http.Client{Timeout: timeout},
		MaxRetries: cfg.MaxRetries,
		Log:        log,
	}
}

// Fetch returns the body of url as text.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	var resp *http.Response
	if f.MaxRetries > 0 {
		resp, err = DoWithRetry(ctx, client, req, f.MaxRetries, f.Log)
	} else {
		resp, err = client.Do(req)
	}
	if err != nil {
		return "", fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading body of %s: %w", url, err)
	}
	return string(body), nil
}
