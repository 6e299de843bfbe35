// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var urlCmd = &cobra.Command{
	Use:   "url QUERY...",
	Short: "Print the canonical request URL without fetching it",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, words []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		u, err := argsFromFlags(cmd.Flags(), words, cfg.Lang).URL()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), u)
		return nil
	},
}

func init() {
	addQueryFlags(urlCmd.Flags())
	rootCmd.AddCommand(urlCmd)
}
