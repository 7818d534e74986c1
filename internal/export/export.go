// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export serializes papers into interchange formats and renders
// comparison and summary reports. Output is deterministic for identical
// input and options.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/arxiv-analyst/pkg/types"
)

// Papers renders papers in the format selected by opts. An unsupported
// format is the one condition reported as an error: it is a caller bug,
// not a data condition.
func Papers(papers []types.Paper, opts types.ExportOptions) (string, error) {
	switch opts.Format {
	case types.FormatBibTeX:
		return bibtex(papers, opts), nil
	case types.FormatJSON:
		return asJSON(papers, opts)
	case types.FormatCSV:
		return asCSV(papers, opts), nil
	case types.FormatMarkdown:
		return markdown(papers, opts), nil
	default:
		return "", fmt.Errorf("unsupported export format: %q", opts.Format)
	}
}

// escapeBraces protects BibTeX's grouping characters in field values.
var escapeBraces = strings.NewReplacer("{", `\{`, "}", `\}`)

// bibtex renders one @article entry per paper. The entry key is the arXiv
// ID with "." and "/" replaced by "_" so it stays a legal citation key.
func bibtex(papers []types.Paper, opts types.ExportOptions) string {
	entries := make([]string, 0, len(papers))
	for _, p := range papers {
		key := strings.NewReplacer(".", "_", "/", "_").Replace(p.ID)

		var b strings.Builder
		fmt.Fprintf(&b, "@article{%s,\n", key)
		fmt.Fprintf(&b, "  title={%s},\n", escapeBraces.Replace(p.Title))
		fmt.Fprintf(&b, "  author={%s},\n", strings.Join(p.Authors, " and "))
		fmt.Fprintf(&b, "  journal={arXiv preprint arXiv:%s},\n", p.ID)
		fmt.Fprintf(&b, "  year={%s}", p.Year())

		if opts.IncludeURLs {
			fmt.Fprintf(&b, ",\n  url={https://arxiv.org/abs/%s}", p.ID)
		}
		if opts.IncludeAbstract {
			fmt.Fprintf(&b, ",\n  abstract={%s}", escapeBraces.Replace(p.Abstract))
		}
		if opts.IncludeCategories && len(p.Categories) > 0 {
			fmt.Fprintf(&b, ",\n  note={Categories: %s}", strings.Join(p.Categories, ", "))
		}
		b.WriteString("\n}")
		entries = append(entries, b.String())
	}
	return strings.Join(entries, "\n\n")
}

// asJSON renders a two-space-indented array of paper objects, with fields
// removed per the toggles.
func asJSON(papers []types.Paper, opts types.ExportOptions) (string, error) {
	dicts := make([]map[string]any, 0, len(papers))
	for _, p := range papers {
		d := map[string]any{
			"id":        p.ID,
			"title":     p.Title,
			"authors":   p.Authors,
			"published": p.Published,
		}
		if opts.IncludeAbstract {
			d["abstract"] = p.Abstract
		}
		if opts.IncludeCategories {
			d["categories"] = p.Categories
		}
		if opts.IncludeURLs {
			d["arxiv_url"] = p.SourceURL
			d["pdf_url"] = p.PDFURL
		}
		dicts = append(dicts, d)
	}

	out, err := json.MarshalIndent(dicts, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling papers: %w", err)
	}
	return string(out), nil
}

// asCSV renders a header row driven by the toggles plus one row per paper.
// Multi-valued fields are joined with "; ".
func asCSV(papers []types.Paper, opts types.ExportOptions) string {
	header := []string{"id", "title", "authors", "published"}
	if opts.IncludeCategories {
		header = append(header, "categories")
	}
	if opts.IncludeURLs {
		header = append(header, "arxiv_url", "pdf_url")
	}
	if opts.IncludeAbstract {
		header = append(header, "abstract")
	}

	var b strings.Builder
	w := csv.NewWriter(&b)
	w.Write(header)
	for _, p := range papers {
		row := []string{p.ID, p.Title, strings.Join(p.Authors, "; "), p.Published}
		if opts.IncludeCategories {
			row = append(row, strings.Join(p.Categories, "; "))
		}
		if opts.IncludeURLs {
			row = append(row, p.SourceURL, p.PDFURL)
		}
		if opts.IncludeAbstract {
			row = append(row, p.Abstract)
		}
		w.Write(row)
	}
	w.Flush()
	return b.String()
}

// markdown renders a numbered section per paper with bold field labels.
func markdown(papers []types.Paper, opts types.ExportOptions) string {
	var b strings.Builder
	b.WriteString("# arXiv Papers Export\n\n")

	for i, p := range papers {
		fmt.Fprintf(&b, "## %d. %s\n\n", i+1, p.Title)
		fmt.Fprintf(&b, "**Authors:** %s  \n", strings.Join(p.Authors, ", "))
		fmt.Fprintf(&b, "**arXiv ID:** [%s](https://arxiv.org/abs/%s)  \n", p.ID, p.ID)
		fmt.Fprintf(&b, "**Published:** %s  \n", p.Published)

		if opts.IncludeCategories && len(p.Categories) > 0 {
			fmt.Fprintf(&b, "**Categories:** %s  \n", strings.Join(p.Categories, ", "))
		}
		if opts.IncludeURLs {
			fmt.Fprintf(&b, "**PDF:** [Download](https://arxiv.org/pdf/%s.pdf)  \n", p.ID)
		}
		b.WriteString("\n")
		if opts.IncludeAbstract {
			fmt.Fprintf(&b, "**Abstract:**  \n%s\n\n", p.Abstract)
		}
		b.WriteString("---\n\n")
	}
	return b.String()
}
