// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/curioswitch/peakplates/internal/peakplatesdb"
)

func testRecipes() []*peakplatesdb.Recipe {
	return []*peakplatesdb.Recipe{
		{ID: "1", Title: "Pasta Bake", Tags: []string{"Vegetarian", "High Fiber"}},
		{ID: "2", Title: "Salad", Tags: []string{"Vegan", "Low Calories"}},
		{ID: "3", Title: "Protein Pasta", Tags: []string{"High Protein"}},
		{ID: "4", Title: "Plain Rice"},
	}
}

func ids(recipes []*peakplatesdb.Recipe) []string {
	res := make([]string, len(recipes))
	for i, r := range recipes {
		res[i] = r.ID
	}
	return res
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		query string
		tags  []string
		want  []string
	}{
		{
			name: "no filter",
			want: []string{"1", "2", "3", "4"},
		},
		{
			name:  "query matches case insensitively",
			query: "pasta",
			want:  []string{"1", "3"},
		},
		{
			name:  "query is trimmed",
			query: "  SALAD ",
			want:  []string{"2"},
		},
		{
			name: "tags intersect",
			tags: []string{"Vegan", "High Protein"},
			want: []string{"2", "3"},
		},
		{
			name:  "query and tags",
			query: "pasta",
			tags:  []string{"High Protein"},
			want:  []string{"3"},
		},
		{
			name:  "no match",
			query: "soup",
			want:  []string{},
		},
		{
			name: "unknown tag",
			tags: []string{"Nut Free"},
			want: []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Filter(testRecipes(), tc.query, tc.tags)
			assert.Equal(t, tc.want, ids(got))

			again := Filter(got, tc.query, tc.tags)
			assert.Equal(t, ids(got), ids(again), "filter is idempotent")
		})
	}
}

func TestFilterPastaBake(t *testing.T) {
	recipes := []*peakplatesdb.Recipe{
		{ID: "a", Title: "Pasta Bake"},
		{ID: "b", Title: "Salad"},
	}
	got := Filter(recipes, "pasta", nil)
	assert.Len(t, got, 1)
	assert.Equal(t, "Pasta Bake", got[0].Title)
}

func TestFromRecipes(t *testing.T) {
	f := FromRecipes(testRecipes())

	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(f.Recipes()))
	assert.Equal(t, []string{"High Fiber", "High Protein", "Low Calories", "Vegan", "Vegetarian"}, f.Tags())
	assert.Equal(t, []string{"1"}, ids(f.Filter("bake", nil)))
}

func TestFromRecipesEmpty(t *testing.T) {
	f := FromRecipes(nil)
	assert.Empty(t, f.Recipes())
	assert.Empty(t, f.Tags())
	assert.Empty(t, f.Filter("", nil))
}

func TestNewestFirst(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	f := FromRecipes([]*peakplatesdb.Recipe{
		{ID: "legacy", Title: "Old Stew"},
		{ID: "old", Title: "Salad", CreatedAt: base, Tags: []string{"Vegan"}},
		{ID: "new", Title: "Pasta", CreatedAt: base.Add(time.Hour)},
		{ID: "legacy2", Title: "Old Soup"},
	})

	sorted := f.NewestFirst()
	assert.Equal(t, []string{"new", "old", "legacy", "legacy2"}, ids(sorted.Recipes()))
	assert.Equal(t, []string{"Vegan"}, sorted.Tags())
	assert.Equal(t, []string{"legacy", "old", "new", "legacy2"}, ids(f.Recipes()))
}
