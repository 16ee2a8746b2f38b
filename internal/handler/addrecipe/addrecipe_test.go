// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package addrecipe

import (
	"context"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curioswitch/peakplates/internal/api"
	"github.com/curioswitch/peakplates/internal/auth"
	"github.com/curioswitch/peakplates/internal/firestoretest"
	"github.com/curioswitch/peakplates/internal/image"
	"github.com/curioswitch/peakplates/internal/peakplatesdb"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		tags        []string
		want        []string
		err         error
	}{
		{
			name:        "valid",
			title:       "Pasta Bake",
			description: "Cheesy",
			tags:        []string{"Vegetarian", "High Protein", "Vegetarian"},
			want:        []string{"Vegetarian", "High Protein"},
		},
		{
			name:        "no tags",
			title:       "Pasta Bake",
			description: "Cheesy",
			want:        []string{},
		},
		{
			name:        "missing title",
			description: "Cheesy",
			err:         errMissingTitle,
		},
		{
			name:  "missing description",
			title: "Pasta Bake",
			err:   errMissingDescription,
		},
		{
			name:        "unknown tag",
			title:       "Pasta Bake",
			description: "Cheesy",
			tags:        []string{"Deep Fried"},
			err:         errUnknownTag,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tags, err := validate(tc.title, tc.description, tc.tags)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, tags)
		})
	}
}

type fakeImages struct {
	dirs []string
}

func (f *fakeImages) Store(_ context.Context, dir string, data []byte) (image.Stored, error) {
	f.dirs = append(f.dirs, dir)
	return image.Stored{Data: data}, nil
}

func TestAddRecipe(t *testing.T) {
	client := firestoretest.NewClient(t)
	ctx := auth.WithUserID(t.Context(), "u1")

	_, err := client.Collection(peakplatesdb.CollectionUsers).Doc("u1").Set(ctx, &peakplatesdb.User{ID: "u1", Username: "alice"})
	require.NoError(t, err)

	images := &fakeImages{}
	h := NewHandler(client, images)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return now }

	res, err := h.AddRecipe(ctx, &api.AddRecipeRequest{
		Title:        " Pasta Bake ",
		Description:  "Cheesy",
		Ingredients:  "pasta\ncheese",
		Steps:        "bake",
		Tags:         []string{"Vegetarian"},
		ImageDataURL: "data:image/png;base64,AQID",
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.RecipeID)
	assert.Equal(t, []string{"recipes/" + res.RecipeID}, images.dirs)

	doc, err := client.Collection(peakplatesdb.CollectionRecipes).Doc(res.RecipeID).Get(ctx)
	require.NoError(t, err)
	recipe, err := peakplatesdb.ParseRecipe(doc)
	require.NoError(t, err)
	assert.Equal(t, "Pasta Bake", recipe.Title)
	assert.Equal(t, "alice", recipe.Username)
	assert.Equal(t, "u1", recipe.UserID)
	assert.Equal(t, []byte{1, 2, 3}, recipe.ImageData)
	assert.Equal(t, []string{"Vegetarian"}, recipe.Tags)
	assert.True(t, now.Equal(recipe.CreatedAt))
	assert.Zero(t, recipe.Likes())

	_, err = h.AddRecipe(ctx, &api.AddRecipeRequest{Title: "No description"})
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = h.AddRecipe(ctx, &api.AddRecipeRequest{Title: "Bad image", Description: "x", ImageDataURL: "not a data url"})
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}
