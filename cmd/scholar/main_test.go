// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/scholar-engine/internal/scholar"
	"github.com/pdiddy/scholar-engine/pkg/types"
)

func newQueryFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addQueryFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestArgsFromFlagsOnlySetFields(t *testing.T) {
	fs := newQueryFlags(t)
	a := argsFromFlags(fs, []string{"machine", "learning"}, "")

	assert.Equal(t, scholar.ScholarArgs{Query: "machine learning"}, a)
}

func TestArgsFromFlagsAllFields(t *testing.T) {
	fs := newQueryFlags(t,
		"--cites=213123123123", "--from-year=2018", "--to-year=2021", "--sort=0",
		"--cluster=3121312312", "--lang=en", "--lang-limit=lang_fr|lang_en",
		"--limit=10", "--offset=5", "--safe", "--similar", "--include-citations",
	)
	a := argsFromFlags(fs, []string{"abcd"}, "de")

	u, err := a.URL()
	require.NoError(t, err)
	assert.Equal(t, "https://scholar.google.com/scholar?q=abcd&cites=213123123123&as_ylo=2018&as_yhi=2021"+
		"&scisbd=0&cluster=3121312312&hl=en&lr=lang_fr%7Clang_en&num=10&start=5"+
		"&safe=active&filter=1&as_vis=1", u)
}

func TestArgsFromFlagsFalseBooleans(t *testing.T) {
	fs := newQueryFlags(t, "--safe=false", "--similar=false")
	a := argsFromFlags(fs, []string{"x"}, "")

	require.NotNil(t, a.AdultFiltering)
	assert.False(t, *a.AdultFiltering)
	require.NotNil(t, a.IncludeSimilarResults)
	assert.False(t, *a.IncludeSimilarResults)
	assert.Nil(t, a.IncludeCitations)
}

func TestArgsFromFlagsDefaultLang(t *testing.T) {
	a := argsFromFlags(newQueryFlags(t), []string{"x"}, "fr")
	require.NotNil(t, a.Lang)
	assert.Equal(t, "fr", *a.Lang)
}

func TestURLCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"url", "--log-level=off", "abcd"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "https://scholar.google.com/scholar?q=abcd\n", out.String())
}

func TestURLCommandLangFromEnv(t *testing.T) {
	t.Setenv("SCHOLAR_LANG", "fr")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"url", "--log-level=off", "abcd"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "https://scholar.google.com/scholar?q=abcd&hl=fr\n", out.String())
}

func TestReplayCommandPrintsStoredResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q.yaml")
	results := []types.ScholarResult{{
		Title:  "Stored title",
		Author: "J Smith",
		Link:   "https://example.com",
		Domain: "example.com",
	}}
	require.NoError(t, scholar.WriteQueryFile(path, scholar.ScholarArgs{Query: "stored"}, results))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"replay", "--log-level=off", "--format=csl", path})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())

	var items []scholar.CSLItem
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Stored title", items[0].Title)
}

func TestCheckFormat(t *testing.T) {
	assert.NoError(t, checkFormat("table"))
	assert.NoError(t, checkFormat("json"))
	assert.NoError(t, checkFormat("csl"))
	assert.Error(t, checkFormat("xml"))
}
