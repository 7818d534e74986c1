package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-analyst/internal/export"
	"github.com/pdiddy/arxiv-analyst/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export <arxiv-id> [arxiv-id...]",
	Short: "Export papers as BibTeX, JSON, CSV, or Markdown",
	Long: `Export fetches papers by ID and serializes them to the selected format
on stdout. Papers that fail to resolve are skipped; --from-file exports a
previously saved search result without touching the network.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("format", string(types.FormatBibTeX), "output format: bibtex, json, csv, or markdown")
	exportCmd.Flags().Bool("no-abstract", false, "omit abstracts")
	exportCmd.Flags().Bool("no-categories", false, "omit category codes")
	exportCmd.Flags().Bool("no-urls", false, "omit abstract-page and PDF URLs")
	exportCmd.Flags().String("from-file", "", "export papers from a saved result file instead of fetching")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	opts := types.DefaultExportOptions()
	format, _ := cmd.Flags().GetString("format")
	opts.Format = types.ExportFormat(format)
	if noAbstract, _ := cmd.Flags().GetBool("no-abstract"); noAbstract {
		opts.IncludeAbstract = false
	}
	if noCategories, _ := cmd.Flags().GetBool("no-categories"); noCategories {
		opts.IncludeCategories = false
	}
	if noURLs, _ := cmd.Flags().GetBool("no-urls"); noURLs {
		opts.IncludeURLs = false
	}

	var papers []types.Paper
	if path, _ := cmd.Flags().GetString("from-file"); path != "" {
		rf, err := export.ReadResultFile(path)
		if err != nil {
			return err
		}
		papers = rf.Papers
	} else {
		if len(args) == 0 {
			return fmt.Errorf("provide one or more arXiv IDs, or --from-file")
		}
		papers = newClient().FetchAll(cmd.Context(), args)
		recordQuery("export", strings.Join(args, ","), len(papers), len(papers) == 0)
	}

	if len(papers) == 0 {
		return fmt.Errorf("no valid papers found for export")
	}

	out, err := export.Papers(papers, opts)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
