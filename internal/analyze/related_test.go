// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pdiddy/arxiv-analyst/pkg/types"
)

func TestRelatedQuery(t *testing.T) {
	tests := []struct {
		name string
		seed types.Paper
		want string
	}{
		{
			name: "categories and title words",
			seed: types.Paper{
				Title:      "Deep Learning for Robotics",
				Categories: []string{"cs.RO", "cs.LG", "cs.AI"},
			},
			want: `cat:cs.RO OR cat:cs.LG OR "deep" OR "learning" OR "robotics"`,
		},
		{
			name: "title words capped at three",
			seed: types.Paper{
				Title: "Efficient Transformers Scale Better Than Convolutions",
			},
			want: `"efficient" OR "transformers" OR "scale"`,
		},
		{
			name: "short and stop words skipped",
			seed: types.Paper{
				Title: "On the Use of GANs",
			},
			want: `"gans"`,
		},
		{
			name: "no usable clauses falls back to default",
			seed: types.Paper{Title: "A New Way"},
			want: "cs.AI",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relatedQuery(tt.seed); got != tt.want {
				t.Errorf("relatedQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFindRelatedFiltersSeed(t *testing.T) {
	papers := []types.Paper{
		{ID: "seed"},
		{ID: "r1"},
		{ID: "r2"},
	}
	m := &mockSearcher{result: types.SearchResult{Papers: papers}}

	f := NewRelatedFinder(m, zerolog.Nop())
	seed := types.Paper{ID: "seed", Categories: []string{"cs.LG"}}
	related := f.FindRelated(context.Background(), seed, 10)

	if len(related) != 2 {
		t.Fatalf("len(related) = %d, want 2", len(related))
	}
	for _, p := range related {
		if p.ID == "seed" {
			t.Errorf("seed paper %q not excluded", p.ID)
		}
	}
	// The gateway is asked for extra results to cover the filtered seed.
	if m.limits[0] != 15 {
		t.Errorf("maxResults = %d, want 15", m.limits[0])
	}
	if m.sorts[0] != "relevance" {
		t.Errorf("sortBy = %q, want relevance", m.sorts[0])
	}
}

func TestFindRelatedTruncates(t *testing.T) {
	var papers []types.Paper
	for i := 0; i < 8; i++ {
		papers = append(papers, types.Paper{ID: fmt.Sprintf("p%d", i)})
	}
	m := &mockSearcher{result: types.SearchResult{Papers: papers}}

	f := NewRelatedFinder(m, zerolog.Nop())
	related := f.FindRelated(context.Background(), types.Paper{ID: "seed", Categories: []string{"cs.AI"}}, 3)

	if len(related) != 3 {
		t.Errorf("len(related) = %d, want 3", len(related))
	}
}

func TestFindRelatedSearchFailure(t *testing.T) {
	m := &mockSearcher{result: types.SearchResult{Error: "timeout"}}

	f := NewRelatedFinder(m, zerolog.Nop())
	related := f.FindRelated(context.Background(), types.Paper{ID: "seed"}, 5)

	if related != nil {
		t.Errorf("related = %v, want nil on failure", related)
	}
}
