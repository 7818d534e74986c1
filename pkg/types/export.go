// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExportFormat selects the output grammar for a paper export.
type ExportFormat string

const (
	FormatBibTeX   ExportFormat = "bibtex"
	FormatJSON     ExportFormat = "json"
	FormatCSV      ExportFormat = "csv"
	FormatMarkdown ExportFormat = "markdown"
)

// ExportOptions controls what an export includes. The toggles are
// independent and all default to true.
type ExportOptions struct {
	// Format is the output grammar: bibtex, json, csv, or markdown.
	Format ExportFormat `json:"format" yaml:"format"`

	// IncludeAbstract includes each paper's abstract.
	IncludeAbstract bool `json:"include_abstract" yaml:"include_abstract"`

	// IncludeCategories includes each paper's category codes.
	IncludeCategories bool `json:"include_categories" yaml:"include_categories"`

	// IncludeURLs includes the abstract-page and PDF URLs.
	IncludeURLs bool `json:"include_urls" yaml:"include_urls"`
}

// DefaultExportOptions returns BibTeX output with every toggle enabled.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		Format:            FormatBibTeX,
		IncludeAbstract:   true,
		IncludeCategories: true,
		IncludeURLs:       true,
	}
}
