// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-engine/internal/httputil"
	"github.com/pdiddy/scholar-engine/internal/scholar"
)

var replayCmd = &cobra.Command{
	Use:   "replay FILE",
	Short: "Print the results stored in a query file",
	Long: `Replay loads a query file written by "search --save" and prints its
results. With --refresh the stored query is fetched again and the file is
rewritten with the new results.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().String("format", "table", "output format: table, json, or csl")
	replayCmd.Flags().Bool("refresh", false, "re-run the stored query and rewrite the file")

	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if err := checkFormat(format); err != nil {
		return err
	}

	qf, err := scholar.ReadQueryFile(args[0])
	if err != nil {
		return err
	}
	results := qf.Results

	if refresh, _ := cmd.Flags().GetBool("refresh"); refresh {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client := scholar.NewClient(httputil.NewHTTPFetcher(cfg.HTTP, logger), logger)
		results, err = client.Scrape(cmd.Context(), qf.Query)
		if err != nil {
			return err
		}
		if err := scholar.WriteQueryFile(args[0], qf.Query, results); err != nil {
			return err
		}
		logger.Info().Str("file", args[0]).Int("results", len(results)).Msg("refreshed query file")
	}

	return writeResults(cmd.OutOrStdout(), format, results)
}
