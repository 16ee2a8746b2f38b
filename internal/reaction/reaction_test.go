// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package reaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curioswitch/peakplates/internal/firestoretest"
	"github.com/curioswitch/peakplates/internal/peakplatesdb"
)

func TestToggle(t *testing.T) {
	tests := []struct {
		name       string
		set        []string
		uid        string
		want       []string
		wantActive bool
	}{
		{
			name:       "add to empty",
			set:        nil,
			uid:        "u1",
			want:       []string{"u1"},
			wantActive: true,
		},
		{
			name:       "add to existing",
			set:        []string{"u2"},
			uid:        "u1",
			want:       []string{"u2", "u1"},
			wantActive: true,
		},
		{
			name:       "remove",
			set:        []string{"u2", "u1", "u3"},
			uid:        "u1",
			want:       []string{"u2", "u3"},
			wantActive: false,
		},
		{
			name:       "remove last",
			set:        []string{"u1"},
			uid:        "u1",
			want:       []string{},
			wantActive: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			orig := append([]string(nil), tc.set...)
			got, active := Toggle(tc.set, tc.uid)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantActive, active)
			assert.Equal(t, orig, tc.set, "input set is not modified")
		})
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	for _, set := range [][]string{{}, {"u2"}, {"u1", "u2"}, {"u2", "u1"}} {
		once, _ := Toggle(set, "u1")
		twice, _ := Toggle(once, "u1")
		assert.ElementsMatch(t, set, twice)
		assert.Len(t, twice, len(set))
	}
}

func TestApply(t *testing.T) {
	store := firestoretest.NewClient(t)
	ctx := t.Context()

	_, err := store.Collection(peakplatesdb.CollectionRecipes).Doc("r1").Set(ctx, peakplatesdb.Recipe{
		ID:     "r1",
		UserID: "author",
		Title:  "Pasta Bake",
	})
	require.NoError(t, err)

	res, err := Apply(ctx, store, "r1", "u1", Like)
	require.NoError(t, err)
	assert.Equal(t, Result{Active: true, Count: 1}, res)

	res, err = Apply(ctx, store, "r1", "u2", Favorite)
	require.NoError(t, err)
	assert.Equal(t, Result{Active: true, Count: 1}, res)

	res, err = Apply(ctx, store, "r1", "u1", Like)
	require.NoError(t, err)
	assert.Equal(t, Result{Active: false, Count: 0}, res)

	doc, err := store.Collection(peakplatesdb.CollectionRecipes).Doc("r1").Get(ctx)
	require.NoError(t, err)
	recipe, err := peakplatesdb.ParseRecipe(doc)
	require.NoError(t, err)
	assert.Empty(t, recipe.LikedByUsers)
	assert.Equal(t, []string{"u2"}, recipe.FavoriteByUsers)

	_, err = Apply(ctx, store, "missing", "u1", Like)
	require.ErrorIs(t, err, ErrRecipeNotFound)
}
