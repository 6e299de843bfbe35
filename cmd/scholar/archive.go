// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-engine/internal/archive"
	"github.com/pdiddy/scholar-engine/pkg/types"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Inspect the SQLite result archive",
	Long: `Archive reads records stored by "search --archive". Use subcommands to
list past searches or filter stored results.`,
}

var archiveSearchesCmd = &cobra.Command{
	Use:   "searches",
	Short: "List archived searches, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openArchive()
		if err != nil {
			return err
		}
		defer store.Close()

		limit, _ := cmd.Flags().GetInt("max-results")
		recs, err := store.Searches(cmd.Context(), limit)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(recs)
		}
		if len(recs) == 0 {
			fmt.Fprintln(w, "No archived searches.")
			return nil
		}
		fmt.Fprintf(w, "%-6s  %-20s  %-7s  %s\n", "ID", "Fetched", "Results", "Query")
		fmt.Fprintln(w, strings.Repeat("-", 80))
		for _, r := range recs {
			fmt.Fprintf(w, "%-6d  %-20s  %-7d  %s\n",
				r.ID, r.FetchedAt.Format("2006-01-02 15:04:05"), r.ResultCount, r.Query)
		}
		return nil
	},
}

var archiveListCmd = &cobra.Command{
	Use:   "list [TEXT]",
	Short: "List archived results matching text and filters",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openArchive()
		if err != nil {
			return err
		}
		defer store.Close()

		opts := archive.QueryOptions{}
		if len(args) == 1 {
			opts.Text = args[0]
		}
		opts.Domain, _ = cmd.Flags().GetString("domain")
		opts.Year, _ = cmd.Flags().GetString("year")
		opts.SearchID, _ = cmd.Flags().GetInt64("search")
		opts.MinCitations, _ = cmd.Flags().GetUint64("min-citations")
		opts.Limit, _ = cmd.Flags().GetInt("max-results")

		stored, err := store.Results(cmd.Context(), opts)
		if err != nil {
			return err
		}

		results := make([]types.ScholarResult, len(stored))
		for i, s := range stored {
			results[i] = s.ScholarResult
		}
		format, _ := cmd.Flags().GetString("format")
		if err := checkFormat(format); err != nil {
			return err
		}
		return writeResults(cmd.OutOrStdout(), format, results)
	},
}

func openArchive() (*archive.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return archive.NewStore(cfg.Archive, logger)
}

func init() {
	archiveSearchesCmd.Flags().Int("max-results", 0, "maximum number of searches (default from config)")
	archiveSearchesCmd.Flags().Bool("json", false, "output as JSON")

	archiveListCmd.Flags().String("domain", "", "filter by source domain")
	archiveListCmd.Flags().String("year", "", "filter by publication year")
	archiveListCmd.Flags().Int64("search", 0, "filter by search id")
	archiveListCmd.Flags().Uint64("min-citations", 0, "minimum citation count")
	archiveListCmd.Flags().Int("max-results", 0, "maximum number of results (default from config)")
	archiveListCmd.Flags().String("format", "table", "output format: table, json, or csl")

	archiveCmd.AddCommand(archiveSearchesCmd, archiveListCmd)
	rootCmd.AddCommand(archiveCmd)
}
