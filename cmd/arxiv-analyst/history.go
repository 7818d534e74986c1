package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-analyst/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently issued queries",
	Long: `History lists queries this tool has issued, newest first. Recording is
enabled by setting history.path in the configuration; only query metadata
is stored, never paper records.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 0, "maximum entries to show (default from config)")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if appCfg.History.Path == "" {
		return fmt.Errorf("history is disabled: set history.path in the configuration")
	}

	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		limit = appCfg.History.MaxEntries
	}

	store, err := history.Open(appCfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No queries recorded.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tKIND\tRESULTS\tQUERY")
	for _, e := range entries {
		status := fmt.Sprintf("%d", e.ResultCount)
		if e.Failed {
			status = "failed"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.At.Format("2006-01-02 15:04"), e.Kind, status, e.Query)
	}
	return w.Flush()
}
