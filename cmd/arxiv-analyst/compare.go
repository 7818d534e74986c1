package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-analyst/internal/export"
)

var compareCmd = &cobra.Command{
	Use:   "compare <arxiv-id> <arxiv-id> [arxiv-id...]",
	Short: "Compare papers field by field",
	Long: `Compare fetches two to five papers and renders a side-by-side markdown
comparison of the selected fields. Papers that fail to resolve are skipped.`,
	Args: cobra.RangeArgs(2, 5),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().String("fields", "", "comma-separated fields: authors,categories,abstract,published (default all)")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	var fields []string
	if raw, _ := cmd.Flags().GetString("fields"); raw != "" {
		for _, f := range strings.Split(raw, ",") {
			f = strings.TrimSpace(f)
			switch f {
			case export.FieldAuthors, export.FieldCategories, export.FieldAbstract, export.FieldPublished:
				fields = append(fields, f)
			default:
				return fmt.Errorf("unknown comparison field %q", f)
			}
		}
	}

	papers := newClient().FetchAll(cmd.Context(), args)
	recordQuery("compare", strings.Join(args, ","), len(papers), len(papers) == 0)
	if len(papers) == 0 {
		return fmt.Errorf("no valid papers found for comparison")
	}

	fmt.Print(export.Compare(papers, fields))
	return nil
}
