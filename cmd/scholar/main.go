// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the scholar CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/scholar-engine/internal/logging"
	"github.com/pdiddy/scholar-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built from configuration before any subcommand runs.
var logger = zerolog.Nop()

// rootCmd is the base command for the scholar CLI.
var rootCmd = &cobra.Command{
	Use:   "scholar",
	Short: "Query Google Scholar and scrape results into structured records",
	Long: `scholar renders structured queries into canonical Google Scholar URLs,
fetches the result listing and decomposes each result into title, authors,
venue, year, source domain and citation count.

Results can be printed as a table, JSON or CSL-YAML, saved to a query file
for later replay, or stored in a local SQLite archive.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger = logging.New(cfg.Log)
		if used := viper.ConfigFileUsed(); used != "" {
			logger.Debug().Str("file", used).Msg("using config file")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./scholar.yaml or ~/.config/scholar/config.yaml)")
	pf.String("log-level", "info", "log level: trace, debug, info, warn, error, off")
	pf.String("log-format", "console", "log format: console or json")
	pf.Duration("timeout", 30*time.Second, "HTTP request timeout")
	pf.Int("max-retries", 0, "retries on HTTP 429 (0 disables retrying)")
	pf.String("archive-db", "scholar.db", "SQLite archive path")

	viper.BindPFlag("log.level", pf.Lookup("log-level"))
	viper.BindPFlag("log.format", pf.Lookup("log-format"))
	viper.BindPFlag("http.timeout", pf.Lookup("timeout"))
	viper.BindPFlag("http.max_retries", pf.Lookup("max-retries"))
	viper.BindPFlag("archive.path", pf.Lookup("archive-db"))

	viper.SetDefault("archive.max_results", 20)
	viper.SetDefault("lang", "")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("scholar")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "scholar"))
		}
	}

	viper.SetEnvPrefix("SCHOLAR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine; a malformed one surfaces in loadConfig.
	_ = viper.ReadInConfig()
}

// loadConfig decodes the merged flag, environment and file settings.
func loadConfig() (types.ScholarConfig, error) {
	var cfg types.ScholarConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
