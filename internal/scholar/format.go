// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pdiddy/scholar-engine/pkg/types"
)

// FormatTable writes results as a human-readable table to w.
func FormatTable(results []types.ScholarResult, w io.Writer) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-24s  %-4s  %-6s  %s\n",
		"#", "Title", "Authors", "Year", "Cited", "Domain")
	fmt.Fprintln(w, strings.Repeat("-", 120))

	for i, r := range results {
		year := ""
		if r.Year != nil {
			year = *r.Year
		}
		cited := ""
		if r.Citations != nil {
			cited = strconv.FormatUint(*r.Citations, 10)
		}
		fmt.Fprintf(w, "%-4d  %-60s  %-24s  %-4s  %-6s  %s\n",
			i+1, truncate(r.Title, 60), truncate(r.Author, 24), year, cited, r.Domain)
	}

	fmt.Fprintf(w, "\n%d results\n", len(results))
}

// FormatJSON writes results as indented JSON to w.
func FormatJSON(results []types.ScholarResult, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// truncate shortens s to max runes, marking the cut with "...".
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
