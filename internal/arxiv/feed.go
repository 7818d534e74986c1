// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"encoding/xml"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/arxiv-analyst/pkg/types"
)

// arXiv Atom feed structures. The feed uses the default Atom namespace
// plus an arXiv extension namespace for paper-specific fields; the decoder
// matches on local names so both resolve without namespace plumbing.
type feed struct {
	XMLName xml.Name `xml:"feed"`
	Entries []entry  `xml:"entry"`
}

type entry struct {
	ID         string     `xml:"id"`
	Title      string     `xml:"title"`
	Summary    string     `xml:"summary"`
	Published  string     `xml:"published"`
	Authors    []author   `xml:"author"`
	Categories []category `xml:"category"`
	Links      []link     `xml:"link"`
}

type author struct {
	Name string `xml:"name"`
}

type category struct {
	Term string `xml:"term,attr"`
}

type link struct {
	Href string `xml:"href,attr"`
	Type string `xml:"type,attr"`
}

// ParseFeed turns raw Atom XML into papers, preserving document order.
// Parsing is lenient throughout: a missing sub-element degrades the
// corresponding field to its zero value, an entry without a usable id is
// skipped, and a document that is not XML at all yields an empty slice.
func ParseFeed(data []byte, log zerolog.Logger) []types.Paper {
	var f feed
	if err := xml.Unmarshal(data, &f); err != nil {
		log.Debug().Err(err).Msg("feed is not parseable XML")
		return nil
	}

	papers := make([]types.Paper, 0, len(f.Entries))
	for _, e := range f.Entries {
		p := entryToPaper(e)
		if p.ID == "" && p.Title == "Unknown Title" && len(p.Authors) == 0 {
			log.Debug().Msg("skipping entry with no extractable fields")
			continue
		}
		papers = append(papers, p)
	}
	return papers
}

// entryToPaper extracts one paper from one feed entry.
func entryToPaper(e entry) types.Paper {
	title := collapseWhitespace(e.Title)
	if title == "" {
		title = "Unknown Title"
	}

	var authors []string
	for _, a := range e.Authors {
		if name := strings.TrimSpace(a.Name); name != "" {
			authors = append(authors, name)
		}
	}

	// The entry id is the abstract page URL; the bare arXiv ID is its
	// last path segment (version suffix intact).
	sourceURL := strings.TrimSpace(e.ID)
	id := ""
	if idx := strings.LastIndex(sourceURL, "/"); idx >= 0 {
		id = sourceURL[idx+1:]
	}

	published := ""
	if len(e.Published) >= 10 {
		published = e.Published[:10]
	}

	var categories []string
	for _, c := range e.Categories {
		if c.Term != "" {
			categories = append(categories, c.Term)
		}
	}

	pdfURL := ""
	for _, l := range e.Links {
		if l.Type == "application/pdf" {
			pdfURL = l.Href
			break
		}
	}

	return types.Paper{
		ID:         id,
		Title:      title,
		Authors:    authors,
		Abstract:   collapseWhitespace(e.Summary),
		Published:  published,
		Categories: categories,
		SourceURL:  sourceURL,
		PDFURL:     pdfURL,
	}
}

// collapseWhitespace trims s and folds runs of whitespace, including the
// hard linebreaks arXiv inserts into titles and abstracts, to single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
