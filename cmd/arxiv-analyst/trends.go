package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-analyst/internal/analyze"
	"github.com/pdiddy/arxiv-analyst/pkg/types"
)

var trendsCmd = &cobra.Command{
	Use:   "trends <category>",
	Short: "Analyze publication trends in a category",
	Long: `Trends fetches recent papers in one arXiv category and aggregates them:
publication counts per month, the most prolific authors, or the most
frequent title keywords.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrends,
}

func init() {
	trendsCmd.Flags().String("period", string(types.PeriodThreeMonths), "lookback window: 1_month, 3_months, 6_months, or 1_year")
	trendsCmd.Flags().String("type", string(types.TrendPublicationCount), "analysis: publication_count, top_authors, or keyword_frequency")

	rootCmd.AddCommand(trendsCmd)
}

func runTrends(cmd *cobra.Command, args []string) error {
	period, _ := cmd.Flags().GetString("period")
	analysisType, _ := cmd.Flags().GetString("type")

	analyzer := analyze.NewTrendAnalyzer(newClient(), log)
	report := analyzer.Analyze(cmd.Context(), args[0], types.TrendPeriod(period), types.TrendAnalysisType(analysisType))
	recordQuery("trends", args[0], report.TotalPapers, report.Error != "")

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
