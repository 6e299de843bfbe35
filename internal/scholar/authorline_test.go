// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAuthorLine(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		author     string
		conference *string
		year       *string
		domain     string
	}{
		{
			name:       "conference and year",
			line:       "A Vaswani, N Shazeer, N Parmar… - Advances in neural information processing systems, 2017 - proceedings.neurips.cc",
			author:     "A Vaswani, N Shazeer, N Parmar…",
			conference: ptr("Advances in neural information processing systems"),
			year:       ptr("2017"),
			domain:     "proceedings.neurips.cc",
		},
		{
			name:   "domain only",
			line:   "J Smith - example.com",
			author: "J Smith",
			domain: "example.com",
		},
		{
			name:   "year without conference",
			line:   "K Lee, M Park - 2019 - arxiv.org",
			author: "K Lee, M Park",
			year:   ptr("2019"),
			domain: "arxiv.org",
		},
		{
			name:       "conference without year",
			line:       "K Lee - Some Journal, springer.com",
			author:     "K Lee",
			conference: ptr("Some Journal"),
			domain:     "springer.com",
		},
		{
			name:       "no-break space before separator",
			line:       "R Roe\u00a0- Nature, 2020 - nature.com",
			author:     "R Roe",
			conference: ptr("Nature"),
			year:       ptr("2020"),
			domain:     "nature.com",
		},
		{
			name:       "mojibake before separator",
			line:       "R Roe\u00c2\u00a0- Nature, 2020 - nature.com",
			author:     "R Roe",
			conference: ptr("Nature"),
			year:       ptr("2020"),
			domain:     "nature.com",
		},
		{
			name:   "en dash separator",
			line:   "R Roe \u2013 2021 \u2013 acm.org",
			author: "R Roe",
			year:   ptr("2021"),
			domain: "acm.org",
		},
		{
			name:   "hyphenated author name",
			line:   "J-P Sartre - 1943 - gallimard.fr",
			author: "J-P Sartre",
			year:   ptr("1943"),
			domain: "gallimard.fr",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			al, ok := ParseAuthorLine(tt.line)
			require.True(t, ok)
			assert.Equal(t, tt.author, al.Author)
			assert.Equal(t, tt.conference, al.Conference)
			assert.Equal(t, tt.year, al.Year)
			assert.Equal(t, tt.domain, al.Domain)
		})
	}
}

func TestParseAuthorLineUnmatched(t *testing.T) {
	for _, line := range []string{
		"",
		"Unknown authors",
		"J Smith -",
		"J Smith-example.com",
		"\u00a0- Nature, 2020 - nature.com",
		" - 2019 - arxiv.org",
		"- example.com",
		"\u2013 Nature, 2020 \u2013 nature.com",
	} {
		t.Run(line, func(t *testing.T) {
			_, ok := ParseAuthorLine(line)
			assert.False(t, ok)
		})
	}
}
