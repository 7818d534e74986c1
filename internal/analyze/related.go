// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/arxiv-analyst/internal/arxiv"
	"github.com/pdiddy/arxiv-analyst/pkg/types"
)

// fallbackCategory is searched when a seed paper yields no usable clauses.
const fallbackCategory = "cs.AI"

// RelatedFinder discovers papers similar to a seed paper by reusing the
// search gateway with a query derived from the seed's categories and title.
type RelatedFinder struct {
	search Searcher
	log    zerolog.Logger
}

// NewRelatedFinder wires a finder to a gateway.
func NewRelatedFinder(search Searcher, log zerolog.Logger) *RelatedFinder {
	return &RelatedFinder{search: search, log: log}
}

// FindRelated searches for papers similar to seed and returns up to limit
// of them, the seed itself excluded. Any failure yields an empty slice.
func (f *RelatedFinder) FindRelated(ctx context.Context, seed types.Paper, limit int) []types.Paper {
	if limit <= 0 {
		limit = 10
	}

	query := relatedQuery(seed)
	result := f.search.Search(ctx, query, limit+5, arxiv.SortRelevance)
	if result.Error != "" {
		f.log.Warn().Str("id", seed.ID).Str("error", result.Error).Msg("related search failed")
		return nil
	}

	var related []types.Paper
	for _, p := range result.Papers {
		if p.ID == seed.ID {
			continue
		}
		related = append(related, p)
		if len(related) == limit {
			break
		}
	}
	return related
}

// relatedQuery builds a disjunction of the seed's first two categories and
// up to three significant title words as quoted phrases. With no clauses
// it falls back to the first category, or a default when the seed has none.
func relatedQuery(seed types.Paper) string {
	var terms []string
	for i, cat := range seed.Categories {
		if i == 2 {
			break
		}
		terms = append(terms, arxiv.CategoryQuery(cat))
	}

	keyCount := 0
	for _, word := range strings.Fields(strings.ToLower(seed.Title)) {
		if len(word) <= 3 || stopWords[word] {
			continue
		}
		terms = append(terms, `"`+word+`"`)
		if keyCount++; keyCount == 3 {
			break
		}
	}

	if len(terms) == 0 {
		if len(seed.Categories) > 0 {
			return seed.Categories[0]
		}
		return fallbackCategory
	}
	return strings.Join(terms, " OR ")
}
