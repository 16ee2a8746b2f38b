// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package getrecipe

import (
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curioswitch/peakplates/internal/api"
	"github.com/curioswitch/peakplates/internal/auth"
	"github.com/curioswitch/peakplates/internal/firestoretest"
	"github.com/curioswitch/peakplates/internal/peakplatesdb"
)

func TestGetRecipe(t *testing.T) {
	client := firestoretest.NewClient(t)
	ctx := auth.WithUserID(t.Context(), "u2")

	_, err := client.Collection(peakplatesdb.CollectionRecipes).Doc("r1").Set(ctx, &peakplatesdb.Recipe{
		ID:              "r1",
		UserID:          "u1",
		Title:           "Pasta Bake",
		FavoriteByUsers: []string{"u2"},
	})
	require.NoError(t, err)

	h := NewHandler(client)

	res, err := h.GetRecipe(ctx, &api.GetRecipeRequest{RecipeID: "r1"})
	require.NoError(t, err)
	assert.Equal(t, "Pasta Bake", res.Recipe.Title)
	assert.True(t, res.Recipe.FavoritedByMe)
	assert.Equal(t, 1, res.Recipe.Favorites)

	_, err = h.GetRecipe(ctx, &api.GetRecipeRequest{RecipeID: "missing"})
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	_, err = h.GetRecipe(ctx, &api.GetRecipeRequest{})
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}
