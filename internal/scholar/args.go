// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scholar builds Google Scholar request URLs and scrapes the result
// listing into structured records.
package scholar

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Service identifies a supported search service.
type Service int

const (
	// ServiceScholar is Google Scholar.
	ServiceScholar Service = iota
)

// String returns the service name.
func (s Service) String() string {
	switch s {
	case ServiceScholar:
		return "scholar"
	default:
		return fmt.Sprintf("service(%d)", int(s))
	}
}

// baseURLs maps each service to its search endpoint. Declared as a var so
// tests can substitute an httptest server.
var baseURLs = map[Service]string{
	ServiceScholar: "https://scholar.google.com/scholar",
}

// BaseURL returns the search endpoint for s.
func BaseURL(s Service) (string, error) {
	u, ok := baseURLs[s]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrInvalidService, s)
	}
	return u, nil
}

// Args is a query that knows which service it targets and how to render
// itself as a request URL.
type Args interface {
	Service() Service
	URL() (string, error)
}

// SortModeCount is the number of valid scisbd values; larger values are dropped.
const SortModeCount = 3

// ScholarArgs holds the Google Scholar query parameters. A nil field is
// omitted from the request.
type ScholarArgs struct {
	// Query is the free-text search (q). Required.
	Query string `yaml:"query"`

	// CiteID triggers a "cited by" listing for the given citation id (cites).
	CiteID *string `yaml:"cite_id,omitempty"`

	// FromYear limits results to this year onwards (as_ylo).
	FromYear *uint16 `yaml:"from_year,omitempty"`

	// ToYear limits results to this year and earlier (as_yhi).
	ToYear *uint16 `yaml:"to_year,omitempty"`

	// SortBy is 0 for relevance, 1 for abstracts only, 2 for everything (scisbd).
	// Values >= SortModeCount are ignored.
	SortBy *uint8 `yaml:"sort_by,omitempty"`

	// ClusterID queries all versions of one work (cluster).
	ClusterID *string `yaml:"cluster_id,omitempty"`

	// Lang is the UI language, e.g. "en" (hl).
	Lang *string `yaml:"lang,omitempty"`

	// LangLimit restricts result languages, e.g. "lang_fr|lang_en" (lr).
	LangLimit *string `yaml:"lang_limit,omitempty"`

	// Limit is the maximum number of results per page (num).
	Limit *uint32 `yaml:"limit,omitempty"`

	// Offset is the index of the first result (start).
	Offset *uint32 `yaml:"offset,omitempty"`

	// AdultFiltering renders as safe=active or safe=off.
	AdultFiltering *bool `yaml:"adult_filtering,omitempty"`

	// IncludeSimilarResults renders as filter=1 (similar) or filter=0 (omitted).
	IncludeSimilarResults *bool `yaml:"include_similar_results,omitempty"`

	// IncludeCitations renders as as_vis=1 or as_vis=0.
	IncludeCitations *bool `yaml:"include_citations,omitempty"`
}

// Service returns ServiceScholar.
func (a ScholarArgs) Service() Service { return ServiceScholar }

// param is one entry of the emission table: the parameter name and a
// function returning its rendered value, or false when it is omitted.
type param struct {
	name  string
	value func(a ScholarArgs) (string, bool)
}

// scholarParams lists every parameter in emission order.
var scholarParams = []param{
	{"q", func(a ScholarArgs) (string, bool) { return a.Query, true }},
	{"cites", func(a ScholarArgs) (string, bool) { return str(a.CiteID) }},
	{"as_ylo", func(a ScholarArgs) (string, bool) { return uintStr(a.FromYear) }},
	{"as_yhi", func(a ScholarArgs) (string, bool) { return uintStr(a.ToYear) }},
	{"scisbd", func(a ScholarArgs) (string, bool) {
		if a.SortBy == nil || *a.SortBy >= SortModeCount {
			return "", false
		}
		return uintStr(a.SortBy)
	}},
	{"cluster", func(a ScholarArgs) (string, bool) { return str(a.ClusterID) }},
	{"hl", func(a ScholarArgs) (string, bool) { return str(a.Lang) }},
	{"lr", func(a ScholarArgs) (string, bool) { return str(a.LangLimit) }},
	{"num", func(a ScholarArgs) (string, bool) { return uintStr(a.Limit) }},
	{"start", func(a ScholarArgs) (string, bool) { return uintStr(a.Offset) }},
	{"safe", func(a ScholarArgs) (string, bool) { return flag(a.AdultFiltering, "active", "off") }},
	{"filter", func(a ScholarArgs) (string, bool) { return flag(a.IncludeSimilarResults, "1", "0") }},
	{"as_vis", func(a ScholarArgs) (string, bool) { return flag(a.IncludeCitations, "1", "0") }},
}

// URL renders the canonical request URL. Parameters appear in a fixed
// order so the same query always yields the same string.
func (a ScholarArgs) URL() (string, error) {
	if a.Query == "" {
		return "", fmt.Errorf("%w: query", ErrRequiredField)
	}

	base, err := BaseURL(a.Service())
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(base)
	sep := byte('?')
	for _, p := range scholarParams {
		v, ok := p.value(a)
		if !ok {
			continue
		}
		b.WriteByte(sep)
		b.WriteString(p.name)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(v))
		sep = '&'
	}
	return b.String(), nil
}

func str(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

type unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

func uintStr[T unsigned](n *T) (string, bool) {
	if n == nil {
		return "", false
	}
	return strconv.FormatUint(uint64(*n), 10), true
}

func flag(b *bool, on, off string) (string, bool) {
	if b == nil {
		return "", false
	}
	if *b {
		return on, true
	}
	return off, true
}
