// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/scholar-engine/pkg/types"
)

// Selectors for the Scholar result listing markup.
const (
	selBlock      = ".gs_or"
	selTitle      = ".gs_rt"
	selTypeMarker = ".gs_ctc, .gs_ctu"
	selLink       = ".gs_rt a"
	selAbstract   = ".gs_rs"
	selAuthorLine = ".gs_a"
	selActions    = ".gs_flb"
	selPDFLink    = ".gs_or_ggsm a"
	selCaptcha    = "#gs_captcha_ccl, #captcha-form"
)

// citationsRe matches the "Cited by" count: a numeral followed by a no-break space.
var citationsRe = regexp.MustCompile(`(\d+)\x{00A0}`)

// Extract parses a result listing page and returns one record per
// well-formed result block, in document order. Blocks missing a required
// field are skipped without error.
func Extract(document string) ([]types.ScholarResult, error) {
	return ExtractReader(strings.NewReader(document))
}

// ExtractReader is Extract reading the document from r.
func ExtractReader(r io.Reader) ([]types.ScholarResult, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if doc.Find(selCaptcha).Length() > 0 {
		return nil, fmt.Errorf("%w: captcha page served instead of results", ErrInvalidResponse)
	}

	results := []types.ScholarResult{}
	doc.Find(selBlock).Each(func(_ int, block *goquery.Selection) {
		if rec, ok := parseBlock(block); ok {
			results = append(results, rec)
		}
	})
	return results, nil
}

// parseBlock builds a record from one result block. It reports false when
// a required field is missing or the author line does not decompose.
func parseBlock(block *goquery.Selection) (types.ScholarResult, bool) {
	titleSel := block.Find(selTitle).First()
	if titleSel.Length() == 0 {
		return types.ScholarResult{}, false
	}
	titleSel = titleSel.Clone()
	titleSel.Find(selTypeMarker).Remove()

	link, ok := block.Find(selLink).First().Attr("href")
	if !ok || link == "" {
		return types.ScholarResult{}, false
	}

	abstractSel := block.Find(selAbstract).First()
	if abstractSel.Length() == 0 {
		return types.ScholarResult{}, false
	}

	authorSel := block.Find(selAuthorLine).First()
	if authorSel.Length() == 0 {
		return types.ScholarResult{}, false
	}
	al, ok := ParseAuthorLine(authorSel.Text())
	if !ok {
		return types.ScholarResult{}, false
	}

	r := types.ScholarResult{
		Title:      strings.TrimSpace(titleSel.Text()),
		Author:     al.Author,
		Abstract:   strings.TrimSpace(abstractSel.Text()),
		Conference: al.Conference,
		Link:       link,
		Domain:     al.Domain,
		Year:       al.Year,
	}

	if pdf, ok := block.Find(selPDFLink).First().Attr("href"); ok && pdf != "" {
		r.PDFLink = &pdf
	}

	if actions := block.Find(selActions).First(); actions.Length() > 0 {
		r.Citations = ParseCitations(actions.Text())
	}

	return r, true
}

// ParseCitations returns the first numeral followed by a no-break space in
// the actions text, or nil when there is none or it overflows uint64.
func ParseCitations(actions string) *uint64 {
	m := citationsRe.FindStringSubmatch(actions)
	if m == nil {
		return nil
	}
	n, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return nil
	}
	return &n
}
