// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze derives statistics from fetched papers: publication
// trends, simulated citation metrics, and related-paper discovery.
package analyze

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/arxiv-analyst/internal/arxiv"
	"github.com/pdiddy/arxiv-analyst/pkg/types"
)

// Searcher is the slice of the arXiv gateway the analyzers need. The
// gateway's Search never returns an error; failures arrive in the result.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int, sortBy string) types.SearchResult
}

// stopWords are dropped from keyword extraction and related-paper queries.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "of": true, "with": true, "by": true, "via": true,
	"using": true,
}

// periodDays maps a trend period to its lookback in days. Unrecognized
// periods fall back to 90.
var periodDays = map[types.TrendPeriod]int{
	types.PeriodOneMonth:    30,
	types.PeriodThreeMonths: 90,
	types.PeriodSixMonths:   180,
	types.PeriodOneYear:     365,
}

// trendSampleSize is how many papers one analysis draws from the API.
const trendSampleSize = 100

// keywordPattern matches alphabetic tokens of length four or more.
var keywordPattern = regexp.MustCompile(`\b[a-zA-Z]{4,}\b`)

// TrendAnalyzer aggregates recent papers in a category into a report.
type TrendAnalyzer struct {
	search Searcher
	now    func() time.Time
	log    zerolog.Logger
}

// NewTrendAnalyzer wires an analyzer to a gateway. The clock is settable
// for tests via WithClock.
func NewTrendAnalyzer(search Searcher, log zerolog.Logger) *TrendAnalyzer {
	return &TrendAnalyzer{search: search, now: time.Now, log: log}
}

// WithClock substitutes the time source and returns the analyzer.
func (a *TrendAnalyzer) WithClock(now func() time.Time) *TrendAnalyzer {
	a.now = now
	return a
}

// Analyze fetches up to 100 recent papers in category and aggregates them
// per analysisType. An upstream search failure yields a report with the
// error populated, zero papers, and empty data; an unrecognized analysis
// type yields an empty payload without an error.
func (a *TrendAnalyzer) Analyze(ctx context.Context, category string, period types.TrendPeriod, analysisType types.TrendAnalysisType) types.TrendReport {
	report := types.TrendReport{
		Category:     category,
		TimePeriod:   period,
		AnalysisType: analysisType,
	}

	days, ok := periodDays[period]
	if !ok {
		days = 90
	}
	end := a.now()
	start := end.AddDate(0, 0, -days)

	query := arxiv.CategoryQuery(category) + " AND " + arxiv.DateRangeQuery(start, end, "")
	result := a.search.Search(ctx, query, trendSampleSize, arxiv.SortSubmittedDate)
	if result.Error != "" {
		a.log.Warn().Str("category", category).Str("error", result.Error).Msg("trend search failed")
		report.Error = result.Error
		return report
	}

	report.TotalPapers = len(result.Papers)
	switch analysisType {
	case types.TrendPublicationCount:
		report.Data.MonthlyCounts = monthlyCounts(result.Papers)
	case types.TrendTopAuthors:
		report.Data.TopAuthors = topAuthors(result.Papers, 10)
	case types.TrendKeywordFrequency:
		report.Data.TopKeywords = topKeywords(result.Papers, 20)
	}
	return report
}

// monthlyCounts groups papers by the "YYYY-MM" prefix of their publication
// date. Map iteration order is irrelevant to callers: encoders emit keys
// sorted, which is chronological for ISO dates.
func monthlyCounts(papers []types.Paper) map[string]int {
	counts := make(map[string]int)
	for _, p := range papers {
		if len(p.Published) >= 7 {
			counts[p.Published[:7]]++
		}
	}
	return counts
}

// topAuthors counts paper occurrences per exact author name and returns
// the n most frequent, ties in first-encounter order.
func topAuthors(papers []types.Paper, n int) []types.AuthorCount {
	counts := make(map[string]int)
	var order []string
	for _, p := range papers {
		for _, name := range p.Authors {
			if counts[name] == 0 {
				order = append(order, name)
			}
			counts[name]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}

	out := make([]types.AuthorCount, len(order))
	for i, name := range order {
		out[i] = types.AuthorCount{Author: name, PaperCount: counts[name]}
	}
	return out
}

// topKeywords tallies alphabetic title tokens of length >= 4, drops stop
// words, and returns the n most frequent, ties in first-encounter order.
func topKeywords(papers []types.Paper, n int) []types.KeywordCount {
	counts := make(map[string]int)
	var order []string
	for _, p := range papers {
		for _, word := range keywordPattern.FindAllString(strings.ToLower(p.Title), -1) {
			if stopWords[word] {
				continue
			}
			if counts[word] == 0 {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}

	out := make([]types.KeywordCount, len(order))
	for i, word := range order {
		out[i] = types.KeywordCount{Keyword: word, Frequency: counts[word]}
	}
	return out
}
