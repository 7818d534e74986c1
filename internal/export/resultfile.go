// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-analyst/pkg/types"
)

// ResultFile is the on-disk YAML representation of one search: the query
// that ran, when it ran, and the papers it returned. It is an export
// artifact the user asked for by name, written once and reloadable for
// offline export or comparison.
type ResultFile struct {
	Query     string        `yaml:"query"`
	SortBy    string        `yaml:"sort_by,omitempty"`
	Total     int           `yaml:"total"`
	Timestamp time.Time     `yaml:"timestamp"`
	Papers    []types.Paper `yaml:"papers"`
}

// WriteResultFile saves a search result to path as YAML.
func WriteResultFile(path string, result types.SearchResult, sortBy string) error {
	rf := ResultFile{
		Query:     result.Query,
		SortBy:    sortBy,
		Total:     result.TotalResults,
		Timestamp: time.Now(),
		Papers:    result.Papers,
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling result file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResultFile loads a previously saved result file.
func ReadResultFile(path string) (*ResultFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result file: %w", err)
	}
	var rf ResultFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing result file: %w", err)
	}
	return &rf, nil
}
