// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package api

import (
	"slices"

	"github.com/curioswitch/peakplates/internal/nutrition"
	"github.com/curioswitch/peakplates/internal/peakplatesdb"
	"github.com/curioswitch/peakplates/internal/util"
)

// NewRecipe returns the view of recipe for the user uid.
func NewRecipe(recipe *peakplatesdb.Recipe, uid string) *Recipe {
	imageURL := recipe.ImageURL
	if imageURL == "" {
		imageURL = util.ImageBytesToURL(recipe.ImageData)
	}
	tags := recipe.Tags
	if tags == nil {
		tags = []string{}
	}
	return &Recipe{
		ID:            recipe.ID,
		UserID:        recipe.UserID,
		Username:      recipe.Username,
		Title:         recipe.Title,
		Description:   recipe.Description,
		Ingredients:   recipe.Ingredients,
		Steps:         recipe.Steps,
		Tags:          tags,
		ImageURL:      imageURL,
		CreatedAt:     recipe.CreatedAt,
		Likes:         recipe.Likes(),
		Favorites:     recipe.Favorites(),
		Shares:        recipe.Shares(),
		LikedByMe:     slices.Contains(recipe.LikedByUsers, uid),
		FavoritedByMe: slices.Contains(recipe.FavoriteByUsers, uid),
	}
}

// NewRecipes returns the views of recipes for the user uid.
func NewRecipes(recipes []*peakplatesdb.Recipe, uid string) []*Recipe {
	res := make([]*Recipe, len(recipes))
	for i, r := range recipes {
		res[i] = NewRecipe(r, uid)
	}
	return res
}

// NewNutrition returns the view of a nutrition summary.
func NewNutrition(s nutrition.Summary) *Nutrition {
	p := Progress{
		Calories: nutrition.Progress(s.Consumed.Calories, s.Goals.Calories),
		Protein:  nutrition.Progress(s.Consumed.Protein, s.Goals.Protein),
		Carbs:    nutrition.Progress(s.Consumed.Carbs, s.Goals.Carbs),
		Fats:     nutrition.Progress(s.Consumed.Fats, s.Goals.Fats),
	}
	return &Nutrition{
		Date:     s.Date,
		Goals:    s.Goals,
		Consumed: s.Consumed,
		Progress: p,
		Percent: Percent{
			Calories: nutrition.Percent(p.Calories),
			Protein:  nutrition.Percent(p.Protein),
			Carbs:    nutrition.Percent(p.Carbs),
			Fats:     nutrition.Percent(p.Fats),
		},
	}
}
