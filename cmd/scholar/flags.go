// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/pdiddy/scholar-engine/internal/scholar"
)

// addQueryFlags registers one flag per optional query parameter.
func addQueryFlags(fs *pflag.FlagSet) {
	fs.String("cites", "", "citation id for a \"cited by\" listing (cites)")
	fs.Uint16("from-year", 0, "results from this year onwards (as_ylo)")
	fs.Uint16("to-year", 0, "results up to this year (as_yhi)")
	fs.Uint8("sort", 0, "sort mode 0-2 (scisbd); larger values are ignored")
	fs.String("cluster", "", "cluster id to list all versions of a work (cluster)")
	fs.String("lang", "", "UI language, e.g. en (hl)")
	fs.String("lang-limit", "", "restrict result languages, e.g. lang_fr|lang_en (lr)")
	fs.Uint32("limit", 0, "results per page (num)")
	fs.Uint32("offset", 0, "index of the first result (start)")
	fs.Bool("safe", false, "adult content filtering (safe=active|off)")
	fs.Bool("similar", false, "include similar/omitted results (filter=1|0)")
	fs.Bool("include-citations", false, "include citation-only entries (as_vis=1|0)")
}

// argsFromFlags builds ScholarArgs from the positional query words and the
// flags the user actually set. Unset flags stay nil so they are omitted
// from the URL. defaultLang applies when --lang was not given.
func argsFromFlags(fs *pflag.FlagSet, words []string, defaultLang string) scholar.ScholarArgs {
	a := scholar.ScholarArgs{Query: strings.TrimSpace(strings.Join(words, " "))}

	if fs.Changed("cites") {
		v, _ := fs.GetString("cites")
		a.CiteID = &v
	}
	if fs.Changed("from-year") {
		v, _ := fs.GetUint16("from-year")
		a.FromYear = &v
	}
	if fs.Changed("to-year") {
		v, _ := fs.GetUint16("to-year")
		a.ToYear = &v
	}
	if fs.Changed("sort") {
		v, _ := fs.GetUint8("sort")
		a.SortBy = &v
	}
	if fs.Changed("cluster") {
		v, _ := fs.GetString("cluster")
		a.ClusterID = &v
	}
	if fs.Changed("lang") {
		v, _ := fs.GetString("lang")
		a.Lang = &v
	} else if defaultLang != "" {
		a.Lang = &defaultLang
	}
	if fs.Changed("lang-limit") {
		v, _ := fs.GetString("lang-limit")
		a.LangLimit = &v
	}
	if fs.Changed("limit") {
		v, _ := fs.GetUint32("limit")
		a.Limit = &v
	}
	if fs.Changed("offset") {
		v, _ := fs.GetUint32("offset")
		a.Offset = &v
	}
	if fs.Changed("safe") {
		v, _ := fs.GetBool("safe")
		a.AdultFiltering = &v
	}
	if fs.Changed("similar") {
		v, _ := fs.GetBool("similar")
		a.IncludeSimilarResults = &v
	}
	if fs.Changed("include-citations") {
		v, _ := fs.GetBool("include-citations")
		a.IncludeCitations = &v
	}
	return a
}
