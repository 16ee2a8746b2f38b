// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package social

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/curioswitch/peakplates/internal/peakplatesdb"
)

// Share shares a recipe with another user. The recipient is added to the
// recipe's sharedWith list and an audit record is written in the same
// transaction.
func (g *Graph) Share(ctx context.Context, uid string, recipeID string, to string) (*peakplatesdb.SharedRecipe, error) {
	if uid == to {
		return nil, ErrShareWithOneself
	}

	recipeRef := g.store.Collection(peakplatesdb.CollectionRecipes).Doc(recipeID)
	shareRef := g.store.Collection(peakplatesdb.CollectionSharedRecipes).NewDoc()

	var share *peakplatesdb.SharedRecipe
	err := g.store.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(recipeRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrRecipeNotFound
			}
			return fmt.Errorf("social: getting recipe: %w", err)
		}
		recipe, err := peakplatesdb.ParseRecipe(doc)
		if err != nil {
			return err
		}
		sharer, err := getUser(tx, g.users().Doc(uid))
		if err != nil {
			return err
		}
		if _, err := getUser(tx, g.users().Doc(to)); err != nil {
			return err
		}
		if slices.Contains(recipe.SharedWith, to) {
			return ErrAlreadyShared
		}

		if err := tx.Update(recipeRef, []firestore.Update{{Path: "sharedWith", Value: firestore.ArrayUnion(to)}}); err != nil {
			return fmt.Errorf("social: updating recipe: %w", err)
		}
		share = &peakplatesdb.SharedRecipe{
			RecipeID:         recipe.ID,
			RecipeName:       recipe.Title,
			SharedBy:         uid,
			SharedByUsername: sharer.Username,
			SharedWith:       to,
			SharedAt:         g.now(),
		}
		if err := tx.Create(shareRef, share); err != nil {
			return fmt.Errorf("social: saving share: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return share, nil
}

// SharedRecipe is a recipe shared with a user along with who shared it.
type SharedRecipe struct {
	Recipe           *peakplatesdb.Recipe
	SharedByUsername string
}

// SharedWith returns the recipes shared with uid, most recently shared first.
// A recipe shared more than once is returned once. Shares of recipes that
// have since been deleted are skipped.
func (g *Graph) SharedWith(ctx context.Context, uid string) ([]SharedRecipe, error) {
	iter := g.store.Collection(peakplatesdb.CollectionSharedRecipes).Where("sharedWith", "==", uid).Documents(ctx)
	defer iter.Stop()

	var shares []peakplatesdb.SharedRecipe
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("social: reading shares: %w", err)
		}
		var s peakplatesdb.SharedRecipe
		if err := doc.DataTo(&s); err != nil {
			return nil, fmt.Errorf("social: decoding share %s: %w", doc.Ref.ID, err)
		}
		if s.RecipeID == "" {
			continue
		}
		shares = append(shares, s)
	}
	slices.SortStableFunc(shares, func(a, b peakplatesdb.SharedRecipe) int {
		return b.SharedAt.Compare(a.SharedAt)
	})

	var refs []*firestore.DocumentRef
	var sharers []string
	seen := map[string]struct{}{}
	for _, s := range shares {
		if _, ok := seen[s.RecipeID]; ok {
			continue
		}
		seen[s.RecipeID] = struct{}{}
		refs = append(refs, g.store.Collection(peakplatesdb.CollectionRecipes).Doc(s.RecipeID))
		sharers = append(sharers, s.SharedByUsername)
	}
	if len(refs) == 0 {
		return nil, nil
	}

	docs, err := g.store.GetAll(ctx, refs)
	if err != nil {
		return nil, fmt.Errorf("social: getting shared recipes: %w", err)
	}
	res := make([]SharedRecipe, 0, len(docs))
	for i, doc := range docs {
		if !doc.Exists() {
			continue
		}
		recipe, err := peakplatesdb.ParseRecipe(doc)
		if err != nil {
			continue
		}
		sharer := sharers[i]
		if sharer == "" {
			sharer = "Unknown"
		}
		res = append(res, SharedRecipe{Recipe: recipe, SharedByUsername: sharer})
	}
	return res, nil
}
