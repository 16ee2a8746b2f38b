// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package reaction toggles a user's like or favorite on a recipe.
package reaction

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/curioswitch/peakplates/internal/peakplatesdb"
)

// ErrRecipeNotFound is returned when toggling a reaction on a missing recipe.
var ErrRecipeNotFound = errors.New("recipe not found")

// Kind is a type of reaction.
type Kind int

const (
	Like Kind = iota
	Favorite
)

func (k Kind) field() string {
	if k == Favorite {
		return "favoriteByUsers"
	}
	return "likedByUsers"
}

func (k Kind) members(r *peakplatesdb.Recipe) []string {
	if k == Favorite {
		return r.FavoriteByUsers
	}
	return r.LikedByUsers
}

// Toggle removes uid from set if present and adds it otherwise. It returns the
// new set and whether uid is a member of it. set is not modified.
func Toggle(set []string, uid string) ([]string, bool) {
	if i := slices.Index(set, uid); i >= 0 {
		return slices.Delete(slices.Clone(set), i, i+1), false
	}
	return append(slices.Clone(set), uid), true
}

// Result is the state of a reaction after a toggle.
type Result struct {
	// Active is whether the user now has the reaction.
	Active bool

	// Count is the number of users with the reaction.
	Count int
}

// Apply toggles uid's reaction of kind on a recipe. The read and write happen in
// one transaction so concurrent toggles by different users are not lost.
func Apply(ctx context.Context, store *firestore.Client, recipeID string, uid string, kind Kind) (Result, error) {
	ref := store.Collection(peakplatesdb.CollectionRecipes).Doc(recipeID)

	var res Result
	err := store.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrRecipeNotFound
			}
			return fmt.Errorf("reaction: getting recipe: %w", err)
		}
		recipe, err := peakplatesdb.ParseRecipe(doc)
		if err != nil {
			return err
		}

		set, active := Toggle(kind.members(recipe), uid)
		if err := tx.Update(ref, []firestore.Update{{Path: kind.field(), Value: set}}); err != nil {
			return fmt.Errorf("reaction: updating recipe: %w", err)
		}
		res = Result{Active: active, Count: len(set)}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}
