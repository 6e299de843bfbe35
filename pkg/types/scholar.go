// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for scholar-engine.
package types

// ScholarResult is one search result scraped from a Scholar listing page.
// A record is built once per recognized result block and is not modified
// afterwards.
type ScholarResult struct {
	// Title is the result heading with type markers ([PDF], [HTML]) removed.
	Title string `json:"title" yaml:"title"`

	// Author is the part of the author line preceding the venue/year/domain suffix.
	Author string `json:"author" yaml:"author"`

	// Abstract is the snippet shown under the title.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Conference is the venue name, when the author line carries one.
	Conference *string `json:"conference,omitempty" yaml:"conference,omitempty"`

	// Link is the primary result URL.
	Link string `json:"link" yaml:"link"`

	// PDFLink is the side link to a full-text copy, if any.
	PDFLink *string `json:"pdf_link,omitempty" yaml:"pdf_link,omitempty"`

	// Domain is the trailing source token of the author line (e.g. "arxiv.org").
	Domain string `json:"domain" yaml:"domain"`

	// Year is the four-digit publication year, when present.
	Year *string `json:"year,omitempty" yaml:"year,omitempty"`

	// Citations is the "Cited by" count parsed from the actions footer.
	Citations *uint64 `json:"citations,omitempty" yaml:"citations,omitempty"`
}
