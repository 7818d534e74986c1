// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CitationEstimate holds a simulated citation metric for one paper. arXiv
// does not track citations, so the numbers are drawn from a heuristic with
// a random component: two estimates for the same paper need not agree.
// Note is always populated, either with the simulation caveat or with the
// reason no estimate could be made.
type CitationEstimate struct {
	// PaperID is the arXiv identifier of the estimated paper.
	PaperID string `json:"arxiv_id" yaml:"arxiv_id"`

	// Title is the paper title, carried for display.
	Title string `json:"title" yaml:"title"`

	// EstimatedCitations is a non-negative simulated citation count.
	EstimatedCitations int `json:"estimated_citations" yaml:"estimated_citations"`

	// CitationsPerYear is EstimatedCitations divided by the paper age in
	// years (at least 1), rounded to one decimal.
	CitationsPerYear float64 `json:"citations_per_year" yaml:"citations_per_year"`

	// HIndexContribution is min(EstimatedCitations, 10).
	HIndexContribution int `json:"h_index_contribution" yaml:"h_index_contribution"`

	// Note explains the estimate's provenance or why it is zero.
	Note string `json:"note" yaml:"note"`
}

// TrendAnalysisType selects what a trend report aggregates.
type TrendAnalysisType string

const (
	TrendPublicationCount TrendAnalysisType = "publication_count"
	TrendTopAuthors       TrendAnalysisType = "top_authors"
	TrendKeywordFrequency TrendAnalysisType = "keyword_frequency"
)

// TrendPeriod is the lookback window for a trend analysis.
type TrendPeriod string

const (
	PeriodOneMonth    TrendPeriod = "1_month"
	PeriodThreeMonths TrendPeriod = "3_months"
	PeriodSixMonths   TrendPeriod = "6_months"
	PeriodOneYear     TrendPeriod = "1_year"
)

// AuthorCount pairs an author name with the number of papers it appeared on.
type AuthorCount struct {
	Author     string `json:"author" yaml:"author"`
	PaperCount int    `json:"paper_count" yaml:"paper_count"`
}

// KeywordCount pairs a title keyword with its frequency.
type KeywordCount struct {
	Keyword   string `json:"keyword" yaml:"keyword"`
	Frequency int    `json:"frequency" yaml:"frequency"`
}

// TrendData is the analysis payload. Exactly one field is populated,
// matching the report's AnalysisType; the others are omitted from output.
type TrendData struct {
	// MonthlyCounts maps "YYYY-MM" to the number of papers published that
	// month. Populated for publication_count.
	MonthlyCounts map[string]int `json:"monthly_counts,omitempty" yaml:"monthly_counts,omitempty"`

	// TopAuthors lists the most prolific authors, descending by count with
	// ties in encounter order. Populated for top_authors.
	TopAuthors []AuthorCount `json:"top_authors,omitempty" yaml:"top_authors,omitempty"`

	// TopKeywords lists the most frequent title keywords, descending by
	// frequency with ties in encounter order. Populated for keyword_frequency.
	TopKeywords []KeywordCount `json:"top_keywords,omitempty" yaml:"top_keywords,omitempty"`
}

// TrendReport is the outcome of one trend analysis. On failure TotalPapers
// is zero, Data is empty, and Error describes the cause.
type TrendReport struct {
	// Category is the arXiv category that was analyzed.
	Category string `json:"category" yaml:"category"`

	// TimePeriod is the lookback window that was requested.
	TimePeriod TrendPeriod `json:"time_period" yaml:"time_period"`

	// AnalysisType selects which Data field is populated.
	AnalysisType TrendAnalysisType `json:"analysis_type" yaml:"analysis_type"`

	// TotalPapers is the number of papers the analysis covered.
	TotalPapers int `json:"total_papers" yaml:"total_papers"`

	// Data holds the aggregation keyed by AnalysisType.
	Data TrendData `json:"data" yaml:"data"`

	// Error is set when the underlying search or the analysis failed.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}
