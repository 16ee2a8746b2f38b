// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curioswitch/peakplates/internal/nutrition"
	"github.com/curioswitch/peakplates/internal/peakplatesdb"
)

func TestCodecUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		data string
		want LogMealRequest
		err  bool
	}{
		{
			name: "empty",
			data: "",
		},
		{
			name: "meal",
			data: `{"date":"2025-03-01","meal":{"calories":500,"protein":30}}`,
			want: LogMealRequest{Date: "2025-03-01", Meal: Macros{Calories: 500, Protein: 30}},
		},
		{
			name: "non-numeric calories",
			data: `{"meal":{"calories":"lots"}}`,
			err:  true,
		},
		{
			name: "fractional calories",
			data: `{"meal":{"calories":1.5}}`,
			err:  true,
		},
		{
			name: "unknown field",
			data: `{"mael":{}}`,
			err:  true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var req LogMealRequest
			err := Codec{}.Unmarshal([]byte(tc.data), &req)
			if tc.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, req)
		})
	}
}

func TestHandleUnary(t *testing.T) {
	errMissing := errors.New("missing")

	mux := http.NewServeMux()
	HandleUnary(mux, GetRecipeProcedure, func(_ context.Context, req *GetRecipeRequest) (*GetRecipeResponse, error) {
		if req.RecipeID == "missing" {
			return nil, connect.NewError(connect.CodeNotFound, errMissing)
		}
		return &GetRecipeResponse{Recipe: &Recipe{ID: req.RecipeID, Title: "Pasta Bake"}}, nil
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := connect.NewClient[GetRecipeRequest, GetRecipeResponse](srv.Client(), srv.URL+GetRecipeProcedure,
		connect.WithCodec(Codec{}))

	res, err := client.CallUnary(t.Context(), connect.NewRequest(&GetRecipeRequest{RecipeID: "r1"}))
	require.NoError(t, err)
	assert.Equal(t, "r1", res.Msg.Recipe.ID)
	assert.Equal(t, "Pasta Bake", res.Msg.Recipe.Title)

	_, err = client.CallUnary(t.Context(), connect.NewRequest(&GetRecipeRequest{RecipeID: "missing"}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestNewRecipe(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	recipe := &peakplatesdb.Recipe{
		ID:              "r1",
		UserID:          "u1",
		Username:        "alice",
		Title:           "Pasta Bake",
		ImageData:       []byte{1, 2, 3},
		CreatedAt:       created,
		LikedByUsers:    []string{"u2", "u3"},
		FavoriteByUsers: []string{"u3"},
		SharedWith:      []string{"u4"},
	}

	view := NewRecipe(recipe, "u2")
	assert.Equal(t, "r1", view.ID)
	assert.Equal(t, "data:image/jpeg;base64,AQID", view.ImageURL)
	assert.Equal(t, 2, view.Likes)
	assert.Equal(t, 1, view.Favorites)
	assert.Equal(t, 1, view.Shares)
	assert.True(t, view.LikedByMe)
	assert.False(t, view.FavoritedByMe)
	assert.Equal(t, []string{}, view.Tags)
	assert.Equal(t, created, view.CreatedAt)

	recipe.ImageURL = "https://storage.googleapis.com/bucket/recipes/r1/image.jpg"
	assert.Equal(t, recipe.ImageURL, NewRecipe(recipe, "u3").ImageURL)
	assert.True(t, NewRecipe(recipe, "u3").FavoritedByMe)
}

func TestNewNutrition(t *testing.T) {
	n := NewNutrition(nutrition.Summary{
		Date:     "2025-03-01",
		Goals:    Macros{Calories: 2000, Protein: 100, Carbs: 0, Fats: 50},
		Consumed: Macros{Calories: 500, Protein: 150, Carbs: 20, Fats: 25},
	})
	assert.Equal(t, "2025-03-01", n.Date)
	assert.InDelta(t, 0.25, n.Progress.Calories, 1e-9)
	assert.InDelta(t, 1.0, n.Progress.Protein, 1e-9)
	assert.InDelta(t, 0.0, n.Progress.Carbs, 1e-9)
	assert.InDelta(t, 0.5, n.Progress.Fats, 1e-9)
	assert.Equal(t, Percent{Calories: 25, Protein: 100, Carbs: 0, Fats: 50}, n.Percent)

	n = NewNutrition(nutrition.Summary{
		Goals:    Macros{Calories: 3, Protein: 3},
		Consumed: Macros{Calories: 1, Protein: 2},
	})
	assert.Equal(t, Percent{Calories: 33, Protein: 67}, n.Percent)
}
