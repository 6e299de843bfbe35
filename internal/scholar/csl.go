package scholar

import (
	"io"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/scholar-engine/pkg/types"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style Language)
// format. The field names follow the CSL-YAML schema so that output is
// consumable by Pandoc and reference managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title"`
	Author         []CSLName `yaml:"author,omitempty"`
	Abstract       string    `yaml:"abstract,omitempty"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
	URL            string    `yaml:"URL,omitempty"`
	Publisher      string    `yaml:"publisher,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// FormatCSL writes results as a CSL-YAML list to w.
func FormatCSL(results []types.ScholarResult, w io.Writer) error {
	items := make([]CSLItem, len(results))
	for i, r := range results {
		items[i] = toCSLItem(r, i)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// toCSLItem converts a result to a CSLItem. Scholar assigns no stable id,
// so items are numbered by position.
func toCSLItem(r types.ScholarResult, pos int) CSLItem {
	item := CSLItem{
		ID:        "scholar-" + strconv.Itoa(pos+1),
		Type:      "article",
		Title:     r.Title,
		Abstract:  r.Abstract,
		URL:       r.Link,
		Publisher: r.Domain,
	}
	if r.Conference != nil {
		item.ContainerTitle = *r.Conference
	}

	for _, a := range splitAuthors(r.Author) {
		item.Author = append(item.Author, parseAuthorName(a))
	}

	if r.Year != nil {
		if y, err := strconv.Atoi(*r.Year); err == nil {
			item.Issued = &CSLDate{DateParts: [][]int{{y}}}
		}
	}

	return item
}

// splitAuthors splits the author part of a listing line on commas and
// drops the ellipsis Scholar appends to truncated lists.
func splitAuthors(s string) []string {
	var out []string
	for _, a := range strings.Split(s, ",") {
		a = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(a), "…"))
		if a != "" {
			out = append(out, a)
		}
	}
	return out
}

// parseAuthorName splits a name into CSL family/given parts on the last
// space. Single-token names use the literal field.
func parseAuthorName(name string) CSLName {
	name = strings.TrimSpace(name)
	if name == "" {
		return CSLName{}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return CSLName{Literal: name}
	}
	return CSLName{
		Given:  name[:idx],
		Family: name[idx+1:],
	}
}
