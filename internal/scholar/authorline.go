// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"regexp"
	"strings"
)

// authorLineRe matches the suffix of an author line:
//
//	<authors> - [<conference>, ][<year> - ]<domain>
//
// The match is the leftmost " - " so author names never absorb the venue.
var authorLineRe = regexp.MustCompile(
	`(?P<suffix>\s- (?:(?P<conference>.*), )?(?:(?P<year>\d{4}) - )?(?P<domain>.*))$`,
)

var (
	suffixIdx     = authorLineRe.SubexpIndex("suffix")
	conferenceIdx = authorLineRe.SubexpIndex("conference")
	yearIdx       = authorLineRe.SubexpIndex("year")
	domainIdx     = authorLineRe.SubexpIndex("domain")
)

// mojibake is the UTF-8 no-break space decoded as Latin-1 ("Â" + NBSP),
// which some pages carry in place of the space before the separator.
const mojibake = "\u00c2\u00a0"

var dashReplacer = strings.NewReplacer(
	" \u2013 ", " - ",
	" \u2014 ", " - ",
)

// AuthorLine is the decomposed author line of a result block.
type AuthorLine struct {
	Author     string
	Conference *string
	Year       *string
	Domain     string
}

// ParseAuthorLine splits a composite author line into authors, optional
// conference, optional year and source domain. It reports false when the
// line does not end in a recognizable suffix or names no authors.
func ParseAuthorLine(line string) (AuthorLine, bool) {
	line = normalizeAuthorLine(line)

	m := authorLineRe.FindStringSubmatchIndex(line)
	if m == nil {
		return AuthorLine{}, false
	}

	group := func(i int) (string, bool) {
		start, end := m[2*i], m[2*i+1]
		if start < 0 {
			return "", false
		}
		return line[start:end], true
	}

	domain, _ := group(domainIdx)
	author := strings.TrimSpace(line[:m[2*suffixIdx]])
	if domain == "" || author == "" {
		return AuthorLine{}, false
	}

	al := AuthorLine{
		Author: author,
		Domain: domain,
	}
	if c, ok := group(conferenceIdx); ok {
		al.Conference = &c
	}
	if y, ok := group(yearIdx); ok {
		al.Year = &y
	}
	return al, true
}

// normalizeAuthorLine repairs the NBSP mojibake, collapses every Unicode
// space run to one ASCII space and turns spaced en/em dashes into the
// hyphen separator. The result always starts with a space so a line that
// opens with the separator still matches on it.
func normalizeAuthorLine(s string) string {
	s = strings.ReplaceAll(s, mojibake, " ")
	s = " " + strings.Join(strings.Fields(s), " ")
	return dashReplacer.Replace(s)
}
