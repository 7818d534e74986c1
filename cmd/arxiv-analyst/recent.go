package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-analyst/internal/export"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List the most recently submitted papers",
	Long: `Recent lists papers submitted to arXiv within the last N days, newest
first, optionally restricted to one category.`,
	RunE: runRecent,
}

func init() {
	recentCmd.Flags().String("category", "", "restrict to one arXiv category (e.g. cs.LG)")
	recentCmd.Flags().Int("days", 7, "number of days back to search (1-30)")
	recentCmd.Flags().IntP("max-results", "n", 15, "maximum number of results (1-100)")
	recentCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(recentCmd)
}

func runRecent(cmd *cobra.Command, args []string) error {
	days, _ := cmd.Flags().GetInt("days")
	if days < 1 || days > 30 {
		return fmt.Errorf("--days must be between 1 and 30")
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")
	if maxResults < 1 || maxResults > 100 {
		return fmt.Errorf("--max-results must be between 1 and 100")
	}
	category, _ := cmd.Flags().GetString("category")

	result := newClient().Recent(cmd.Context(), category, days, maxResults, time.Now())
	recordQuery("recent", result.Query, result.TotalResults, result.Error != "")
	if result.Error != "" {
		return fmt.Errorf("recent papers lookup failed: %s", result.Error)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	fmt.Print(export.ResultList(result.Papers, result.TotalResults))
	return nil
}
