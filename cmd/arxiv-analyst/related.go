package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-analyst/internal/analyze"
	"github.com/pdiddy/arxiv-analyst/internal/export"
)

var relatedCmd = &cobra.Command{
	Use:   "related <arxiv-id>",
	Short: "Find papers related to a given paper",
	Long: `Related fetches the seed paper and searches for similar papers using a
query built from its categories and title keywords.`,
	Args: cobra.ExactArgs(1),
	RunE: runRelated,
}

func init() {
	relatedCmd.Flags().IntP("max-results", "n", 10, "maximum number of related papers (1-50)")
	relatedCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(relatedCmd)
}

func runRelated(cmd *cobra.Command, args []string) error {
	maxResults, _ := cmd.Flags().GetInt("max-results")
	if maxResults < 1 || maxResults > 50 {
		return fmt.Errorf("--max-results must be between 1 and 50")
	}

	client := newClient()
	seed, err := client.FetchByID(cmd.Context(), args[0])
	if err != nil {
		recordQuery("related", args[0], 0, true)
		return fmt.Errorf("could not find original paper: %w", err)
	}

	related := analyze.NewRelatedFinder(client, log).FindRelated(cmd.Context(), *seed, maxResults)
	recordQuery("related", args[0], len(related), false)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"original_paper": seed,
			"related_papers": related,
			"total_found":    len(related),
		})
	}

	fmt.Printf("Papers related to %s (%s):\n\n", seed.ID, seed.Title)
	fmt.Print(export.ResultList(related, len(related)))
	return nil
}
