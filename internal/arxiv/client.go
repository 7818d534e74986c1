// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv builds arXiv API queries, issues them, and parses the
// Atom responses into papers.
package arxiv

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/arxiv-analyst/internal/httputil"
	"github.com/pdiddy/arxiv-analyst/pkg/types"
)

// apiBase is the arXiv query endpoint. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://export.arxiv.org/api/query"

// Sort keys accepted by the API.
const (
	SortRelevance     = "relevance"
	SortSubmittedDate = "submittedDate"
	SortUpdatedDate   = "lastUpdatedDate"
)

const defaultMaxResults = 10

// maxFeedBytes caps how much of a response body the parser reads.
const maxFeedBytes = 10 << 20

// Client is the single gateway to the arXiv API. Every public method
// absorbs transport and parse failures into its result value; none panics
// across the component boundary.
type Client struct {
	http *httputil.Client
	cfg  types.ClientConfig
	log  zerolog.Logger
}

// NewClient builds a gateway from cfg. The logger may be zerolog.Nop().
func NewClient(cfg types.ClientConfig, log zerolog.Logger) *Client {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = defaultMaxResults
	}
	return &Client{
		http: httputil.New(httputil.Config{
			Timeout:    cfg.Timeout,
			UserAgent:  cfg.UserAgent,
			RateLimit:  cfg.RateLimit,
			Burst:      cfg.Burst,
			MaxRetries: cfg.MaxRetries,
		}),
		cfg: cfg,
		log: log,
	}
}

// Search runs one query and returns whatever the API sent back, in the
// API's own order. Transport, status, and decode failures all land in
// SearchResult.Error; the papers slice is then empty.
//
// Relevance-ranked results come back in the service's natural ascending
// rank order; every other sort key returns newest first.
func (c *Client) Search(ctx context.Context, query string, maxResults int, sortBy string) types.SearchResult {
	if maxResults <= 0 {
		maxResults = c.cfg.MaxResults
	}
	sortOrder := "descending"
	if sortBy == SortRelevance {
		sortOrder = "ascending"
	}

	reqURL := fmt.Sprintf("%s?search_query=%s&start=0&max_results=%d&sortBy=%s&sortOrder=%s",
		apiBase, url.QueryEscape(query), maxResults, sortBy, sortOrder)

	papers, err := c.fetch(ctx, reqURL)
	if err != nil {
		c.log.Error().Err(err).Str("query", query).Msg("arXiv search failed")
		return types.SearchResult{Query: query, Error: err.Error()}
	}

	return types.SearchResult{
		Query:        query,
		TotalResults: len(papers),
		Papers:       papers,
	}
}

// FetchByID looks one paper up via the id_list form. It strips a leading
// "arXiv:" prefix and the literal substrings "v1", "v2", "v3" before the
// lookup; later version suffixes pass through unchanged, matching the
// API's tolerance for versioned ids.
func (c *Client) FetchByID(ctx context.Context, id string) (*types.Paper, error) {
	clean := strings.NewReplacer("arXiv:", "", "v1", "", "v2", "", "v3", "").Replace(id)

	reqURL := fmt.Sprintf("%s?id_list=%s", apiBase, url.QueryEscape(clean))
	papers, err := c.fetch(ctx, reqURL)
	if err != nil {
		c.log.Error().Err(err).Str("id", id).Msg("arXiv lookup failed")
		return nil, fmt.Errorf("fetching paper %s: %w", id, err)
	}
	if len(papers) == 0 {
		return nil, fmt.Errorf("paper %s not found", id)
	}
	return &papers[0], nil
}

// FetchAll resolves ids sequentially, skipping failures, and returns the
// papers that resolved in input order.
func (c *Client) FetchAll(ctx context.Context, ids []string) []types.Paper {
	var papers []types.Paper
	for _, id := range ids {
		p, err := c.FetchByID(ctx, id)
		if err != nil {
			c.log.Warn().Err(err).Str("id", id).Msg("skipping paper")
			continue
		}
		papers = append(papers, *p)
	}
	return papers
}

// Recent searches the last daysBack days, optionally restricted to one
// category, newest first.
func (c *Client) Recent(ctx context.Context, category string, daysBack, maxResults int, now time.Time) types.SearchResult {
	if daysBack <= 0 {
		daysBack = 7
	}
	dateQ := DateRangeQuery(now.AddDate(0, 0, -daysBack), now, "")
	query := dateQ
	if category != "" {
		query = Combine([]string{CategoryQuery(category), dateQ}, "AND")
	}
	return c.Search(ctx, query, maxResults, SortSubmittedDate)
}

// fetch issues one GET and parses the Atom body.
func (c *Client) fetch(ctx context.Context, reqURL string) ([]types.Paper, error) {
	resp, err := c.http.Get(ctx, reqURL)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, fmt.Errorf("reading arXiv response: %w", err)
	}
	return ParseFeed(body, c.log), nil
}
