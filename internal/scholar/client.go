// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pdiddy/scholar-engine/internal/httputil"
	"github.com/pdiddy/scholar-engine/pkg/types"
)

// Fetcher downloads the document at url. Retries, timeouts and redirects
// are the fetcher's business; the client only sees success or failure.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// extractors maps each service to the parser for its result page.
var extractors = map[Service]func(string) ([]types.ScholarResult, error){
	ServiceScholar: Extract,
}

// Client runs the build, fetch, extract pipeline. It holds no mutable
// state and is safe for concurrent use when its Fetcher is.
type Client struct {
	fetcher Fetcher
	log     zerolog.Logger
}

// NewClient returns a Client that fetches through f. Pass zerolog.Nop()
// for a silent client.
func NewClient(f Fetcher, log zerolog.Logger) *Client {
	return &Client{
		fetcher: f,
		log:     log.With().Str("component", "scholar").Logger(),
	}
}

// NewDefaultClient returns a Client backed by an HTTPFetcher built from cfg.
func NewDefaultClient(cfg types.HTTPConfig, log zerolog.Logger) *Client {
	return NewClient(httputil.NewHTTPFetcher(cfg, log), log)
}

// Scrape renders args into a URL, fetches it and extracts the results.
// The first failure is returned and no partial results are produced.
func (c *Client) Scrape(ctx context.Context, args Args) ([]types.ScholarResult, error) {
	u, err := args.URL()
	if err != nil {
		return nil, err
	}

	svc := args.Service()
	extract, ok := extractors[svc]
	if !ok {
		return nil, fmt.Errorf("%w: extracting %s results", ErrNotImplemented, svc)
	}

	log := c.log.With().Str("service", svc.String()).Str("url", u).Logger()
	log.Debug().Msg("fetching result page")

	doc, err := c.fetcher.Fetch(ctx, u)
	if err != nil {
		if !errors.Is(err, ErrConnection) {
			err = fmt.Errorf("%w: %w", ErrConnection, err)
		}
		log.Debug().Err(err).Msg("fetch failed")
		return nil, err
	}

	results, err := extract(doc)
	if err != nil {
		log.Debug().Err(err).Msg("extraction failed")
		return nil, err
	}

	log.Debug().Int("results", len(results)).Msg("scraped result page")
	return results, nil
}
