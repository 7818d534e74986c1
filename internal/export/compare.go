// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"strings"

	"github.com/pdiddy/arxiv-analyst/pkg/types"
)

// Comparison fields accepted by Compare.
const (
	FieldAuthors    = "authors"
	FieldCategories = "categories"
	FieldAbstract   = "abstract"
	FieldPublished  = "published"
)

// DefaultCompareFields is the field set used when the caller names none.
var DefaultCompareFields = []string{FieldAuthors, FieldCategories, FieldAbstract, FieldPublished}

// Compare renders a field-by-field markdown comparison of papers. An empty
// paper slice produces a plain "No papers to compare" message.
func Compare(papers []types.Paper, fields []string) string {
	if len(papers) == 0 {
		return "No papers to compare"
	}
	if len(fields) == 0 {
		fields = DefaultCompareFields
	}

	var b strings.Builder
	b.WriteString("# Paper Comparison\n\n")

	for _, field := range fields {
		fmt.Fprintf(&b, "## %s\n\n", titleCase(field))

		for i, p := range papers {
			fmt.Fprintf(&b, "**Paper %d** (%s): %s\n", i+1, p.ID, truncate(p.Title, 60))

			switch field {
			case FieldAuthors:
				authors := strings.Join(firstN(p.Authors, 3), ", ")
				if len(p.Authors) > 3 {
					authors += "..."
				}
				fmt.Fprintf(&b, "- Authors: %s\n\n", authors)
			case FieldCategories:
				fmt.Fprintf(&b, "- Categories: %s\n\n", strings.Join(p.Categories, ", "))
			case FieldAbstract:
				fmt.Fprintf(&b, "- Abstract: %s\n\n", truncate(p.Abstract, 200))
			case FieldPublished:
				fmt.Fprintf(&b, "- Published: %s\n\n", p.Published)
			}
		}
		b.WriteString("\n---\n\n")
	}
	return b.String()
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// titleCase capitalizes the first letter of a field name for a heading.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
