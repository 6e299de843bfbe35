// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-engine/internal/archive"
	"github.com/pdiddy/scholar-engine/internal/httputil"
	"github.com/pdiddy/scholar-engine/internal/scholar"
	"github.com/pdiddy/scholar-engine/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search QUERY...",
	Short: "Search Google Scholar and print the scraped results",
	Long: `Search renders the query into a canonical Scholar URL, fetches the result
page once and prints one record per result block. Blocks that cannot be
decomposed are skipped.

Only the flags you set are sent; everything else is omitted from the URL.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	addQueryFlags(searchCmd.Flags())
	searchCmd.Flags().String("format", "table", "output format: table, json, or csl")
	searchCmd.Flags().String("save", "", "write query and results to a YAML query file")
	searchCmd.Flags().Bool("archive", false, "store results in the SQLite archive")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, words []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	args := argsFromFlags(cmd.Flags(), words, cfg.Lang)
	format, _ := cmd.Flags().GetString("format")
	if err := checkFormat(format); err != nil {
		return err
	}

	client := scholar.NewClient(httputil.NewHTTPFetcher(cfg.HTTP, logger), logger)
	results, err := client.Scrape(cmd.Context(), args)
	if err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("save"); path != "" {
		if err := scholar.WriteQueryFile(path, args, results); err != nil {
			return err
		}
		logger.Info().Str("file", path).Int("results", len(results)).Msg("saved query file")
	}

	if archiveIt, _ := cmd.Flags().GetBool("archive"); archiveIt {
		if err := archiveResults(cmd.Context(), cfg.Archive, args, results); err != nil {
			return err
		}
	}

	return writeResults(cmd.OutOrStdout(), format, results)
}

func archiveResults(ctx context.Context, cfg types.ArchiveConfig, args scholar.ScholarArgs, results []types.ScholarResult) error {
	u, err := args.URL()
	if err != nil {
		return err
	}
	store, err := archive.NewStore(cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.Save(ctx, args.Query, u, results)
	if err != nil {
		return err
	}
	logger.Info().Int64("search_id", id).Int("results", len(results)).Msg("archived results")
	return nil
}

func checkFormat(format string) error {
	switch format {
	case "table", "json", "csl":
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use table, json, or csl", format)
	}
}

func writeResults(w io.Writer, format string, results []types.ScholarResult) error {
	switch format {
	case "json":
		return scholar.FormatJSON(results, w)
	case "csl":
		return scholar.FormatCSL(results, w)
	default:
		scholar.FormatTable(results, w)
		return nil
	}
}
