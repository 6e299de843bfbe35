// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import "errors"

// Error kinds returned by the pipeline. Detail is wrapped around these with
// fmt.Errorf; callers test with errors.Is.
var (
	// ErrRequiredField is returned when the query string is empty.
	ErrRequiredField = errors.New("required field missing")

	// ErrConnection is returned when the document could not be fetched.
	ErrConnection = errors.New("connection failed")

	// ErrParse is returned when the document could not be parsed at all.
	ErrParse = errors.New("document parse failed")

	// ErrInvalidResponse is returned for structurally unexpected documents,
	// such as the CAPTCHA interstitial served instead of a result listing.
	ErrInvalidResponse = errors.New("invalid response")

	// ErrInvalidService is returned for a Service with no known endpoint.
	ErrInvalidService = errors.New("invalid service")

	// ErrNotImplemented is returned by Client.Scrape for a service whose
	// result page has no extractor.
	ErrNotImplemented = errors.New("not implemented")
)
