package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-analyst/internal/arxiv"
	"github.com/pdiddy/arxiv-analyst/internal/export"
)

var paperCmd = &cobra.Command{
	Use:   "paper <arxiv-id>",
	Short: "Fetch one paper's metadata by arXiv ID",
	Long: `Paper looks a single paper up by its arXiv identifier (e.g. "2301.07041"
or "cs.AI/0001001") and prints its metadata, either as JSON or as a
formatted markdown summary.`,
	Args: cobra.ExactArgs(1),
	RunE: runPaper,
}

func init() {
	paperCmd.Flags().Bool("summary", false, "print a formatted markdown summary instead of JSON")

	rootCmd.AddCommand(paperCmd)
}

func runPaper(cmd *cobra.Command, args []string) error {
	id := args[0]
	if !arxiv.ValidID(id) {
		log.Debug().Str("id", id).Msg("identifier does not match known arXiv forms, trying anyway")
	}

	paper, err := newClient().FetchByID(cmd.Context(), id)
	recordQuery("paper", id, boolToCount(err == nil), err != nil)
	if err != nil {
		return err
	}

	if summary, _ := cmd.Flags().GetBool("summary"); summary {
		fmt.Print(export.Summary(*paper))
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(paper)
}

func boolToCount(ok bool) int {
	if ok {
		return 1
	}
	return 0
}
