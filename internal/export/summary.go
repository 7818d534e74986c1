// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"strings"

	"github.com/pdiddy/arxiv-analyst/pkg/types"
)

// Summary renders a single paper as a markdown document.
func Summary(p types.Paper) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.Title)
	fmt.Fprintf(&b, "**Authors:** %s\n", strings.Join(p.Authors, ", "))
	fmt.Fprintf(&b, "**Published:** %s\n", p.Published)
	fmt.Fprintf(&b, "**arXiv ID:** %s\n", p.ID)
	fmt.Fprintf(&b, "**Categories:** %s\n\n", strings.Join(p.Categories, ", "))
	fmt.Fprintf(&b, "## Abstract\n%s\n\n", p.Abstract)
	fmt.Fprintf(&b, "**PDF:** %s\n", p.PDFURL)
	fmt.Fprintf(&b, "**arXiv Page:** %s\n", p.SourceURL)
	return b.String()
}

// ResultList renders a numbered listing of papers for terminal display,
// showing at most maxDisplay entries with an overflow note.
func ResultList(papers []types.Paper, maxDisplay int) string {
	if len(papers) == 0 {
		return "No papers found."
	}
	if maxDisplay <= 0 {
		maxDisplay = 10
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d papers:\n\n", len(papers))

	shown := papers
	if len(shown) > maxDisplay {
		shown = shown[:maxDisplay]
	}
	for i, p := range shown {
		fmt.Fprintf(&b, "%d. **%s**\n", i+1, p.Title)
		authors := strings.Join(firstN(p.Authors, 3), ", ")
		if len(p.Authors) > 3 {
			authors += "..."
		}
		fmt.Fprintf(&b, "   Authors: %s\n", authors)
		fmt.Fprintf(&b, "   arXiv ID: %s\n", p.ID)
		fmt.Fprintf(&b, "   Published: %s\n", p.Published)
		fmt.Fprintf(&b, "   Categories: %s\n\n", strings.Join(p.Categories, ", "))
	}

	if len(papers) > maxDisplay {
		fmt.Fprintf(&b, "... and %d more papers.\n", len(papers)-maxDisplay)
	}
	return b.String()
}
