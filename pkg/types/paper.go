// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the arxiv-analyst pipeline.
package types

// Paper holds the metadata extracted from one arXiv feed entry.
// All fields are lenient: a value the feed does not carry is an empty
// string or nil slice, never an error. Papers are constructed only by
// the feed parser and are not mutated afterwards.
type Paper struct {
	// ID is the bare arXiv identifier (e.g. "2301.07041"), taken from the
	// last path segment of the entry's id URL.
	ID string `json:"id" yaml:"id"`

	// Title is the paper title with internal whitespace collapsed.
	Title string `json:"title" yaml:"title"`

	// Authors lists author display names in feed order.
	Authors []string `json:"authors" yaml:"authors"`

	// Abstract is the entry summary with internal whitespace collapsed.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Published is the publication date as "YYYY-MM-DD", or "" if the
	// feed entry carried no usable timestamp.
	Published string `json:"published" yaml:"published"`

	// Categories lists arXiv taxonomy codes (e.g. "cs.AI") in feed order.
	Categories []string `json:"categories" yaml:"categories"`

	// SourceURL is the abstract page URL from the entry id element.
	SourceURL string `json:"arxiv_url" yaml:"arxiv_url"`

	// PDFURL is the href of the first link with type "application/pdf".
	PDFURL string `json:"pdf_url" yaml:"pdf_url"`
}

// Year returns the four-digit publication year, or "" when unknown.
func (p Paper) Year() string {
	if len(p.Published) < 4 {
		return ""
	}
	return p.Published[:4]
}

// SearchResult is the outcome of one arXiv query. A non-empty Error means
// the call degraded gracefully: Papers is empty and the message describes
// what went wrong.
type SearchResult struct {
	// Query is the query string actually sent to the API.
	Query string `json:"query" yaml:"query"`

	// TotalResults is the number of papers returned in this batch, not the
	// total the service claims to have.
	TotalResults int `json:"total_results" yaml:"total_results"`

	// Papers preserves the service's sort order.
	Papers []Paper `json:"papers" yaml:"papers"`

	// Error is set when the search failed; Papers is then empty.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}
