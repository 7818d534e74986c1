package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-analyst/internal/arxiv"
	"github.com/pdiddy/arxiv-analyst/internal/export"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search arXiv for papers",
	Long: `Search queries the arXiv API with a free-text query or with structured
filters (--author, --category, --from/--to). Structured filters are combined
with AND; a free-text argument is passed through as-is alongside them.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("author", "", "filter by author name (phrase match)")
	searchCmd.Flags().String("category", "", "filter by arXiv category (e.g. cs.AI)")
	searchCmd.Flags().String("from", "", "submission date range start (YYYY-MM-DD)")
	searchCmd.Flags().String("to", "", "submission date range end (YYYY-MM-DD, default today)")
	searchCmd.Flags().IntP("max-results", "n", 0, "maximum number of results (1-100)")
	searchCmd.Flags().String("sort", arxiv.SortRelevance, "sort by relevance, submittedDate, or lastUpdatedDate")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("save", "", "save results to a YAML file")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query, err := buildSearchQuery(cmd, args)
	if err != nil {
		return err
	}
	if query == "" {
		return fmt.Errorf("provide a query argument or at least one of --author, --category, --from/--to")
	}

	maxResults, _ := cmd.Flags().GetInt("max-results")
	if maxResults < 0 || maxResults > 100 {
		return fmt.Errorf("--max-results must be between 1 and 100")
	}
	sortBy, _ := cmd.Flags().GetString("sort")

	result := newClient().Search(cmd.Context(), query, maxResults, sortBy)
	recordQuery("search", query, result.TotalResults, result.Error != "")
	if result.Error != "" {
		return fmt.Errorf("search failed: %s", result.Error)
	}

	if path, _ := cmd.Flags().GetString("save"); path != "" {
		if err := export.WriteResultFile(path, result, sortBy); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved %d results to %s\n", result.TotalResults, path)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	fmt.Print(export.ResultList(result.Papers, result.TotalResults))
	return nil
}

// buildSearchQuery combines the free-text argument and structured flags
// into one arXiv query string.
func buildSearchQuery(cmd *cobra.Command, args []string) (string, error) {
	var parts []string
	if len(args) == 1 && args[0] != "" {
		parts = append(parts, args[0])
	}

	if author, _ := cmd.Flags().GetString("author"); author != "" {
		parts = append(parts, arxiv.AuthorQuery(author))
	}
	if category, _ := cmd.Flags().GetString("category"); category != "" {
		parts = append(parts, arxiv.CategoryQuery(category))
	}

	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	if from != "" || to != "" {
		start, end, err := parseDateRange(from, to)
		if err != nil {
			return "", err
		}
		parts = append(parts, arxiv.DateRangeQuery(start, end, ""))
	}

	if len(parts) == 1 {
		return parts[0], nil
	}
	return arxiv.Combine(parts, "AND"), nil
}

func parseDateRange(from, to string) (time.Time, time.Time, error) {
	const layout = "2006-01-02"

	start := time.Time{}
	end := time.Now()
	var err error
	if from != "" {
		if start, err = time.Parse(layout, from); err != nil {
			return start, end, fmt.Errorf("invalid --from date %q: %w", from, err)
		}
	}
	if to != "" {
		if end, err = time.Parse(layout, to); err != nil {
			return start, end, fmt.Errorf("invalid --to date %q: %w", to, err)
		}
	}
	return start, end, nil
}
