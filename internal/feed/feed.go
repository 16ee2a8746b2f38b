// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package feed loads recipe lists and filters them in memory.
package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/curioswitch/peakplates/internal/peakplatesdb"
)

// ErrLoad is the message shown when a feed could not be loaded.
const ErrLoad = "Error loading recipes."

// Feed is a loaded list of recipes and the tags used by them.
type Feed struct {
	recipes []*peakplatesdb.Recipe
	tags    []string
}

// Load fetches every recipe matched by q. Documents that fail to parse are
// skipped and logged.
func Load(ctx context.Context, q firestore.Query) (*Feed, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var recipes []*peakplatesdb.Recipe
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("feed: reading recipes: %w", err)
		}
		recipe, err := peakplatesdb.ParseRecipe(doc)
		if err != nil {
			slog.WarnContext(ctx, "feed: skipping malformed recipe", "id", doc.Ref.ID, "error", err)
			continue
		}
		recipes = append(recipes, recipe)
	}
	return FromRecipes(recipes), nil
}

// FromRecipes returns a Feed over recipes already in memory, keeping their order.
func FromRecipes(recipes []*peakplatesdb.Recipe) *Feed {
	return &Feed{
		recipes: recipes,
		tags:    collectTags(recipes),
	}
}

// Recipes returns all loaded recipes in load order.
func (f *Feed) Recipes() []*peakplatesdb.Recipe {
	return f.recipes
}

// Tags returns the sorted, deduplicated tags of all loaded recipes.
func (f *Feed) Tags() []string {
	return f.tags
}

// NewestFirst returns a Feed over the same recipes ordered by creation time,
// newest first. Recipes without a creation time keep their relative order at
// the end.
func (f *Feed) NewestFirst() *Feed {
	recipes := slices.Clone(f.recipes)
	slices.SortStableFunc(recipes, func(a, b *peakplatesdb.Recipe) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return &Feed{
		recipes: recipes,
		tags:    f.tags,
	}
}

// Filter applies Filter to the loaded recipes.
func (f *Feed) Filter(query string, tags []string) []*peakplatesdb.Recipe {
	return Filter(f.recipes, query, tags)
}

func collectTags(recipes []*peakplatesdb.Recipe) []string {
	seen := map[string]struct{}{}
	var tags []string
	for _, r := range recipes {
		for _, t := range r.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	slices.Sort(tags)
	return tags
}
