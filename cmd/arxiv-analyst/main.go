// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the arxiv-analyst CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-analyst/internal/arxiv"
	"github.com/pdiddy/arxiv-analyst/internal/config"
	"github.com/pdiddy/arxiv-analyst/internal/history"
)

// version is set at build time via ldflags.
var version = "dev"

// appCfg and log are populated before any subcommand runs.
var (
	appCfg config.Config
	log    zerolog.Logger
)

// rootCmd is the base command for the arxiv-analyst CLI.
var rootCmd = &cobra.Command{
	Use:   "arxiv-analyst",
	Short: "Search and analyze academic papers on arXiv",
	Long: `arxiv-analyst queries the arXiv API and derives analysis from the results:
publication trends, simulated citation metrics, related-paper discovery,
paper comparison, and export to BibTeX, JSON, CSV, or Markdown.

Each capability is a subcommand: search, paper, recent, related, citations,
trends, compare, export, and history.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		appCfg = cfg
		log = config.NewLogger(cfg.Logging)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./arxiv-analyst.yaml or ~/.config/arxiv-analyst/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("arxiv-analyst")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "arxiv-analyst"))
		}
	}

	viper.SetEnvPrefix("ARXIV_ANALYST")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newClient builds the arXiv gateway from the loaded configuration.
func newClient() *arxiv.Client {
	return arxiv.NewClient(appCfg.Client, log)
}

// recordQuery appends one query to the history store when one is
// configured. History failures are logged, never surfaced: the lookup
// already succeeded or failed on its own terms.
func recordQuery(kind, query string, resultCount int, failed bool) {
	if appCfg.History.Path == "" {
		return
	}
	store, err := history.Open(appCfg.History.Path)
	if err != nil {
		log.Warn().Err(err).Msg("could not open history store")
		return
	}
	defer store.Close()

	if err := store.Record(kind, query, resultCount, failed); err != nil {
		log.Warn().Err(err).Msg("could not record query")
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
