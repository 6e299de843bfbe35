// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/scholar-engine/pkg/types"
)

// --- mock fetcher ---

type mockFetcher struct {
	doc   string
	err   error
	calls int32
	urls  sync.Map
}

func (m *mockFetcher) Fetch(_ context.Context, url string) (string, error) {
	atomic.AddInt32(&m.calls, 1)
	m.urls.Store(url, true)
	return m.doc, m.err
}

// withBaseURL points ServiceScholar at base for the duration of the test.
func withBaseURL(t *testing.T, base string) {
	t.Helper()
	old := baseURLs[ServiceScholar]
	baseURLs[ServiceScholar] = base
	t.Cleanup(func() { baseURLs[ServiceScholar] = old })
}

// otherArgs targets a service the client cannot extract.
type otherArgs struct{}

func (otherArgs) Service() Service     { return Service(99) }
func (otherArgs) URL() (string, error) { return "https://example.com/search?q=x", nil }

func TestScrapeUnsupportedServiceSkipsFetch(t *testing.T) {
	f := &mockFetcher{doc: sampleListingHTML}
	c := NewClient(f, zerolog.Nop())

	results, err := c.Scrape(context.Background(), otherArgs{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotImplemented))
	assert.Nil(t, results)
	assert.Equal(t, int32(0), atomic.LoadInt32(&f.calls))
}

func TestScrapeSuccess(t *testing.T) {
	f := &mockFetcher{doc: sampleListingHTML}
	c := NewClient(f, zerolog.Nop())

	results, err := c.Scrape(context.Background(), ScholarArgs{Query: "attention"})
	require.NoError(t, err)
	assert.Len(t, results, 4)

	_, ok := f.urls.Load("https://scholar.google.com/scholar?q=attention")
	assert.True(t, ok, "fetcher should receive the canonical URL")
}

func TestScrapeRequiredFieldSkipsFetch(t *testing.T) {
	f := &mockFetcher{doc: sampleListingHTML}
	c := NewClient(f, zerolog.Nop())

	results, err := c.Scrape(context.Background(), ScholarArgs{})
	assert.ErrorIs(t, err, ErrRequiredField)
	assert.Nil(t, results)
	assert.Equal(t, int32(0), atomic.LoadInt32(&f.calls))
}

func TestScrapeFetchFailure(t *testing.T) {
	network := errors.New("dial tcp: connection refused")
	c := NewClient(&mockFetcher{err: network}, zerolog.Nop())

	results, err := c.Scrape(context.Background(), ScholarArgs{Query: "x"})
	assert.Nil(t, results)
	assert.ErrorIs(t, err, ErrConnection)
	assert.ErrorIs(t, err, network, "transport detail should stay wrapped")
}

func TestScrapeFetchFailureAlreadyClassified(t *testing.T) {
	wrapped := fmt.Errorf("%w: proxy down", ErrConnection)
	c := NewClient(&mockFetcher{err: wrapped}, zerolog.Nop())

	_, err := c.Scrape(context.Background(), ScholarArgs{Query: "x"})
	assert.Equal(t, wrapped, err)
}

func TestScrapeInvalidResponse(t *testing.T) {
	c := NewClient(&mockFetcher{doc: `<div id="gs_captcha_ccl"></div>`}, zerolog.Nop())

	results, err := c.Scrape(context.Background(), ScholarArgs{Query: "x"})
	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Nil(t, results)
}

func TestScrapeOverHTTP(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, sampleListingHTML)
	}))
	defer ts.Close()
	withBaseURL(t, ts.URL+"/scholar")

	c := NewDefaultClient(types.HTTPConfig{}, zerolog.Nop())
	results, err := c.Scrape(context.Background(), ScholarArgs{Query: "attention", Limit: ptr[uint32](3)})
	require.NoError(t, err)
	assert.Len(t, results, 4)
	assert.Equal(t, "q=attention&num=3", gotQuery)
}

func TestScrapeHTTPStatusIsConnectionError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()
	withBaseURL(t, ts.URL+"/scholar")

	c := NewDefaultClient(types.HTTPConfig{}, zerolog.Nop())
	_, err := c.Scrape(context.Background(), ScholarArgs{Query: "x"})
	assert.ErrorIs(t, err, ErrConnection)
}

func TestScrapeConcurrent(t *testing.T) {
	f := &mockFetcher{doc: sampleListingHTML}
	c := NewClient(f, zerolog.Nop())

	const n = 8
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results, err := c.Scrape(context.Background(), ScholarArgs{Query: fmt.Sprintf("q%d", i)})
			if err == nil && len(results) != 4 {
				err = fmt.Errorf("got %d results", len(results))
			}
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(n), atomic.LoadInt32(&f.calls))
}
