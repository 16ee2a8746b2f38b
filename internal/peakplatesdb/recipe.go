// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package peakplatesdb

import (
	"slices"
	"time"

	"google.golang.org/genai"
)

// CollectionRecipes is the Firestore collection holding recipes, keyed by recipe ID.
const CollectionRecipes = "recipes"

// Recipe represents a recipe stored in Firestore.
type Recipe struct {
	// ID is the unique identifier of the recipe. It matches the document ID.
	ID string `firestore:"id"`

	// UserID is the ID of the user who uploaded the recipe.
	UserID string `firestore:"userId"`

	// Username is the display name of the author at upload time.
	Username string `firestore:"username"`

	// Title is the title of the recipe.
	Title string `firestore:"title"`

	// Description is the description of the recipe.
	Description string `firestore:"description"`

	// Ingredients are the ingredients of the recipe as free-form text.
	Ingredients string `firestore:"ingredients"`

	// Steps are the steps to prepare the recipe as free-form text.
	Steps string `firestore:"steps"`

	// Tags are health tags from AvailableTags.
	Tags []string `firestore:"tags"`

	// ImageData is the JPEG image of the recipe when small enough to embed.
	ImageData []byte `firestore:"imageData,omitempty"`

	// ImageURL is the URL of the image when stored in the public bucket.
	ImageURL string `firestore:"imageUrl,omitempty"`

	// CreatedAt is the time the recipe was uploaded.
	CreatedAt time.Time `firestore:"createdAt"`

	// Timestamp is the upload time in Unix milliseconds, written by older
	// clients instead of CreatedAt.
	Timestamp int64 `firestore:"timestamp,omitempty"`

	// LikedByUsers are the IDs of users who liked the recipe.
	LikedByUsers []string `firestore:"likedByUsers"`

	// FavoriteByUsers are the IDs of users who favorited the recipe.
	FavoriteByUsers []string `firestore:"favoriteByUsers"`

	// SharedWith are the IDs of users the recipe has been shared with.
	SharedWith []string `firestore:"sharedWith"`
}

// Likes returns the number of users who liked the recipe.
func (r *Recipe) Likes() int {
	return len(r.LikedByUsers)
}

// Favorites returns the number of users who favorited the recipe.
func (r *Recipe) Favorites() int {
	return len(r.FavoriteByUsers)
}

// Shares returns the number of users the recipe has been shared with.
func (r *Recipe) Shares() int {
	return len(r.SharedWith)
}

// HasTag returns whether the recipe is tagged with any of tags.
func (r *Recipe) HasTag(tags ...string) bool {
	for _, t := range tags {
		if slices.Contains(r.Tags, t) {
			return true
		}
	}
	return false
}

// Validate checks that required fields are present.
func (r *Recipe) Validate() error {
	switch {
	case r.ID == "":
		return &MissingFieldError{Collection: CollectionRecipes, Field: "id"}
	case r.UserID == "":
		return &MissingFieldError{Collection: CollectionRecipes, ID: r.ID, Field: "userId"}
	case r.Title == "":
		return &MissingFieldError{Collection: CollectionRecipes, ID: r.ID, Field: "title"}
	}
	return nil
}

func (r *Recipe) backfillCreatedAt() {
	if r.CreatedAt.IsZero() && r.Timestamp > 0 {
		r.CreatedAt = time.UnixMilli(r.Timestamp).UTC()
	}
}

// MacrosSchema is the response schema for estimating the macros of one serving.
var MacrosSchema = &genai.Schema{
	Type:        "object",
	Description: "The estimated nutrition of one serving of a recipe.",
	Required:    []string{"calories", "protein", "carbs", "fats"},
	Properties: map[string]*genai.Schema{
		"calories": {
			Type:        "integer",
			Description: "Energy in kilocalories.",
		},
		"protein": {
			Type:        "integer",
			Description: "Protein in grams.",
		},
		"carbs": {
			Type:        "integer",
			Description: "Carbohydrates in grams.",
		},
		"fats": {
			Type:        "integer",
			Description: "Fat in grams.",
		},
	},
}
