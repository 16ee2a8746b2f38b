// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package llm

import (
	"fmt"

	"github.com/curioswitch/peakplates/internal/peakplatesdb"
)

// EstimateMacrosPrompt is the system instruction for estimating recipe macros.
func EstimateMacrosPrompt() string {
	return estimateMacrosPrompt
}

// RecipeContent formats the parts of a recipe relevant to nutrition.
func RecipeContent(recipe *peakplatesdb.Recipe) string {
	return fmt.Sprintf("Title: %s\n\nDescription: %s\n\nIngredients:\n%s\n\nSteps:\n%s",
		recipe.Title, recipe.Description, recipe.Ingredients, recipe.Steps)
}

const estimateMacrosPrompt = `You are a nutritionist. You will be given a recipe with its title, description,
ingredients and steps. Estimate the nutrition of a single serving of the finished dish.

* If the recipe states a number of servings, divide the totals by it. Otherwise assume the
  recipe makes one serving.
* Ingredients without a quantity should be assumed to be a typical amount for the dish.
* Respond with whole numbers only: calories in kilocalories, and protein, carbs and fats in grams.
* Never respond with negative numbers. If the recipe is not food, respond with zeros.`
