// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pdiddy/arxiv-analyst/pkg/types"
)

func samplePapers() []types.Paper {
	return []types.Paper{
		{
			ID:         "2103.00001",
			Title:      "Scaling Laws for Neural {Language} Models",
			Authors:    []string{"Ada Lovelace", "Alan Turing"},
			Abstract:   "We study empirical scaling laws.",
			Published:  "2021-03-01",
			Categories: []string{"cs.LG", "cs.CL"},
			SourceURL:  "https://arxiv.org/abs/2103.00001",
			PDFURL:     "https://arxiv.org/pdf/2103.00001",
		},
		{
			ID:         "cs/0001001",
			Title:      "An Old Style Paper",
			Authors:    []string{"Grace Hopper"},
			Abstract:   "Abstract with, commas and \"quotes\".",
			Published:  "2000-01-15",
			Categories: []string{"cs.DS"},
			SourceURL:  "https://arxiv.org/abs/cs/0001001",
			PDFURL:     "https://arxiv.org/pdf/cs/0001001",
		},
	}
}

func TestPapersBibTeX(t *testing.T) {
	opts := types.DefaultExportOptions()
	out, err := Papers(samplePapers(), opts)
	if err != nil {
		t.Fatalf("Papers() error = %v", err)
	}

	if !strings.Contains(out, "@article{2103_00001,") {
		t.Errorf("missing key with dots replaced:\n%s", out)
	}
	if !strings.Contains(out, "@article{cs_0001001,") {
		t.Errorf("missing key with slash replaced:\n%s", out)
	}
	if !strings.Contains(out, `title={Scaling Laws for Neural \{Language\} Models},`) {
		t.Errorf("braces in title not escaped:\n%s", out)
	}
	if !strings.Contains(out, "author={Ada Lovelace and Alan Turing},") {
		t.Errorf("authors not joined with and:\n%s", out)
	}
	if !strings.Contains(out, "journal={arXiv preprint arXiv:2103.00001},") {
		t.Errorf("journal field missing:\n%s", out)
	}
	if !strings.Contains(out, "year={2021}") {
		t.Errorf("year field missing:\n%s", out)
	}
	if !strings.Contains(out, "url={https://arxiv.org/abs/2103.00001}") {
		t.Errorf("url field missing with IncludeURLs:\n%s", out)
	}
	if !strings.Contains(out, "note={Categories: cs.LG, cs.CL}") {
		t.Errorf("note field missing with IncludeCategories:\n%s", out)
	}
	if strings.Count(out, "@article{") != 2 {
		t.Errorf("entry count = %d, want 2", strings.Count(out, "@article{"))
	}
}

func TestPapersBibTeXToggles(t *testing.T) {
	opts := types.DefaultExportOptions()
	opts.IncludeAbstract = false
	opts.IncludeCategories = false
	opts.IncludeURLs = false

	out, err := Papers(samplePapers(), opts)
	if err != nil {
		t.Fatalf("Papers() error = %v", err)
	}
	for _, field := range []string{"abstract={", "note={", "url={"} {
		if strings.Contains(out, field) {
			t.Errorf("toggled-off field %q present:\n%s", field, out)
		}
	}
}

func TestPapersJSON(t *testing.T) {
	opts := types.DefaultExportOptions()
	opts.Format = types.FormatJSON

	out, err := Papers(samplePapers(), opts)
	if err != nil {
		t.Fatalf("Papers() error = %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("len = %d, want 2", len(decoded))
	}
	first := decoded[0]
	if first["id"] != "2103.00001" {
		t.Errorf("id = %v", first["id"])
	}
	if first["abstract"] != "We study empirical scaling laws." {
		t.Errorf("abstract = %v", first["abstract"])
	}
	if first["arxiv_url"] != "https://arxiv.org/abs/2103.00001" {
		t.Errorf("arxiv_url = %v", first["arxiv_url"])
	}
	if !strings.Contains(out, "  \"") {
		t.Errorf("output not two-space indented:\n%s", out)
	}
}

func TestPapersJSONToggles(t *testing.T) {
	opts := types.DefaultExportOptions()
	opts.Format = types.FormatJSON
	opts.IncludeAbstract = false
	opts.IncludeURLs = false

	out, err := Papers(samplePapers(), opts)
	if err != nil {
		t.Fatalf("Papers() error = %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for _, d := range decoded {
		for _, key := range []string{"abstract", "arxiv_url", "pdf_url"} {
			if _, ok := d[key]; ok {
				t.Errorf("toggled-off key %q present", key)
			}
		}
		if _, ok := d["categories"]; !ok {
			t.Errorf("categories missing, toggle still on")
		}
	}
}

func TestPapersCSV(t *testing.T) {
	opts := types.DefaultExportOptions()
	opts.Format = types.FormatCSV

	out, err := Papers(samplePapers(), opts)
	if err != nil {
		t.Fatalf("Papers() error = %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(records))
	}

	wantHeader := []string{"id", "title", "authors", "published", "categories", "arxiv_url", "pdf_url", "abstract"}
	for i, col := range wantHeader {
		if records[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], col)
		}
	}
	if records[1][2] != "Ada Lovelace; Alan Turing" {
		t.Errorf("authors cell = %q", records[1][2])
	}
	if records[2][7] != "Abstract with, commas and \"quotes\"." {
		t.Errorf("abstract cell = %q, quoting mangled", records[2][7])
	}
}

func TestPapersCSVToggles(t *testing.T) {
	opts := types.DefaultExportOptions()
	opts.Format = types.FormatCSV
	opts.IncludeAbstract = false
	opts.IncludeCategories = false
	opts.IncludeURLs = false

	out, err := Papers(samplePapers(), opts)
	if err != nil {
		t.Fatalf("Papers() error = %v", err)
	}
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	if len(records[0]) != 4 {
		t.Errorf("header columns = %d, want 4: %v", len(records[0]), records[0])
	}
}

func TestPapersMarkdown(t *testing.T) {
	opts := types.DefaultExportOptions()
	opts.Format = types.FormatMarkdown

	out, err := Papers(samplePapers(), opts)
	if err != nil {
		t.Fatalf("Papers() error = %v", err)
	}

	if !strings.HasPrefix(out, "# arXiv Papers Export\n\n") {
		t.Errorf("missing document header:\n%s", out)
	}
	if !strings.Contains(out, "## 1. Scaling Laws for Neural {Language} Models") {
		t.Errorf("missing first section:\n%s", out)
	}
	if !strings.Contains(out, "## 2. An Old Style Paper") {
		t.Errorf("missing second section:\n%s", out)
	}
	if !strings.Contains(out, "**Abstract:**") {
		t.Errorf("abstract missing with toggle on:\n%s", out)
	}
	if !strings.Contains(out, "[2103.00001](https://arxiv.org/abs/2103.00001)") {
		t.Errorf("arXiv link missing:\n%s", out)
	}
}

func TestPapersMarkdownToggles(t *testing.T) {
	opts := types.DefaultExportOptions()
	opts.Format = types.FormatMarkdown
	opts.IncludeAbstract = false
	opts.IncludeCategories = false
	opts.IncludeURLs = false

	out, err := Papers(samplePapers(), opts)
	if err != nil {
		t.Fatalf("Papers() error = %v", err)
	}
	for _, label := range []string{"**Abstract:**", "**Categories:**", "**PDF:**"} {
		if strings.Contains(out, label) {
			t.Errorf("toggled-off label %q present:\n%s", label, out)
		}
	}
}

func TestPapersUnsupportedFormat(t *testing.T) {
	opts := types.DefaultExportOptions()
	opts.Format = types.ExportFormat("xml")

	out, err := Papers(samplePapers(), opts)
	if err == nil {
		t.Fatal("Papers() error = nil, want unsupported format error")
	}
	if out != "" {
		t.Errorf("out = %q, want empty", out)
	}
	if !strings.Contains(err.Error(), "unsupported export format") {
		t.Errorf("error = %v", err)
	}
}

func TestPapersEmptySlice(t *testing.T) {
	for _, format := range []types.ExportFormat{
		types.FormatBibTeX, types.FormatJSON, types.FormatCSV, types.FormatMarkdown,
	} {
		opts := types.DefaultExportOptions()
		opts.Format = format
		if _, err := Papers(nil, opts); err != nil {
			t.Errorf("format %s: error = %v, want nil for empty input", format, err)
		}
	}
}
