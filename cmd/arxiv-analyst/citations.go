package main

import (
	"encoding/json"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-analyst/internal/analyze"
)

var citationsCmd = &cobra.Command{
	Use:   "citations <arxiv-id>",
	Short: "Estimate citation metrics for a paper (simulated)",
	Long: `Citations produces a simulated citation estimate from the paper's age and
categories. arXiv does not track citations; the numbers are illustrative
and include a random component, so repeated runs differ.`,
	Args: cobra.ExactArgs(1),
	RunE: runCitations,
}

func init() {
	citationsCmd.Flags().Int64("seed", 0, "random seed for a reproducible estimate (0 = time-seeded)")

	rootCmd.AddCommand(citationsCmd)
}

func runCitations(cmd *cobra.Command, args []string) error {
	paper, err := newClient().FetchByID(cmd.Context(), args[0])
	recordQuery("citations", args[0], boolToCount(err == nil), err != nil)
	if err != nil {
		return err
	}

	estimator := analyze.NewCitationEstimator(nil)
	if seed, _ := cmd.Flags().GetInt64("seed"); seed != 0 {
		estimator = analyze.NewCitationEstimator(rand.NewSource(seed))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(estimator.Estimate(*paper))
}
