// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package api

import (
	"time"

	"github.com/curioswitch/peakplates/internal/peakplatesdb"
)

// Macros are calories in kilocalories and protein, carbs and fats in grams.
type Macros = peakplatesdb.Macros

// Profile is body information of a user. Age is in years, height in
// centimeters and weight in kilograms.
type Profile = peakplatesdb.Profile

type SignupRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type SignupResponse struct {
	UserID string `json:"userId"`

	// Token is a Firebase custom token to sign in the client with.
	Token string `json:"token"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	UserID string `json:"userId"`
	Token  string `json:"token"`
}

// Recipe is a recipe as seen by the caller.
type Recipe struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Username    string    `json:"username"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Ingredients string    `json:"ingredients"`
	Steps       string    `json:"steps"`
	Tags        []string  `json:"tags"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`

	Likes     int `json:"likes"`
	Favorites int `json:"favorites"`
	Shares    int `json:"shares"`

	LikedByMe     bool `json:"likedByMe"`
	FavoritedByMe bool `json:"favoritedByMe"`
}

// FeedRequest filters a list of recipes.
type FeedRequest struct {
	// Query matches recipes whose title contains it, ignoring case.
	Query string `json:"query"`

	// Tags matches recipes with any of them. Empty matches all recipes.
	Tags []string `json:"tags"`
}

type ListRecipesRequest = FeedRequest

type ListRecipesResponse struct {
	Recipes []*Recipe `json:"recipes"`

	// Tags are the tags present in the loaded recipes.
	Tags []string `json:"tags"`

	// LoadError is set when the recipes could not be loaded.
	LoadError string `json:"loadError,omitempty"`
}

type ListFavoritesRequest = FeedRequest

type ListFavoritesResponse = ListRecipesResponse

type GetRecipeRequest struct {
	RecipeID string `json:"recipeId"`
}

type GetRecipeResponse struct {
	Recipe *Recipe `json:"recipe"`
}

type AddRecipeRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Ingredients string   `json:"ingredients"`
	Steps       string   `json:"steps"`
	Tags        []string `json:"tags"`

	// ImageDataURL is an optional base64 data URL of the recipe image.
	ImageDataURL string `json:"imageDataUrl"`
}

type AddRecipeResponse struct {
	RecipeID string `json:"recipeId"`
}

type DeleteRecipeRequest struct {
	RecipeID string `json:"recipeId"`
}

type DeleteRecipeResponse struct{}

type ListTagsRequest struct{}

type ListTagsResponse struct {
	Tags []string `json:"tags"`
}

type ToggleReactionRequest struct {
	RecipeID string `json:"recipeId"`
}

type ToggleReactionResponse struct {
	// Active is whether the caller has the reaction after the toggle.
	Active bool `json:"active"`

	// Count is the number of users with the reaction.
	Count int `json:"count"`
}

type ShareRecipeRequest struct {
	RecipeID string `json:"recipeId"`
	ToUserID string `json:"toUserId"`
}

type ShareRecipeResponse struct{}

type ListSharedRequest = FeedRequest

type SharedRecipe struct {
	Recipe *Recipe `json:"recipe"`

	// SharedBy is the username of the user who shared the recipe.
	SharedBy string `json:"sharedBy"`
}

type ListSharedResponse struct {
	Recipes   []*SharedRecipe `json:"recipes"`
	Tags      []string        `json:"tags"`
	LoadError string          `json:"loadError,omitempty"`
}

type SearchUsersRequest struct {
	Query string `json:"query"`
}

type User struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	IsFriend bool   `json:"isFriend"`
}

type SearchUsersResponse struct {
	Users []*User `json:"users"`
}

type SendFriendRequestRequest struct {
	ToUserID string `json:"toUserId"`
}

type SendFriendRequestResponse struct {
	RequestID string `json:"requestId"`
}

type ListFriendRequestsRequest struct{}

type FriendRequest struct {
	ID           string    `json:"id"`
	FromUserID   string    `json:"fromUserId"`
	FromUsername string    `json:"fromUsername"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ListFriendRequestsResponse struct {
	Requests []*FriendRequest `json:"requests"`
}

type RespondFriendRequestRequest struct {
	RequestID string `json:"requestId"`
}

type RespondFriendRequestResponse struct{}

type ListFriendsRequest struct{}

type Friend struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

type ListFriendsResponse struct {
	Friends []*Friend `json:"friends"`
}

type RemoveFriendRequest struct {
	FriendID string `json:"friendId"`
}

type RemoveFriendResponse struct{}

type GetNutritionRequest struct {
	// Date is formatted as YYYY-MM-DD. Defaults to today in the caller's time zone.
	Date string `json:"date"`
}

// Progress is consumption as a fraction of the goal for each macro, within [0, 1].
type Progress struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// Percent is Progress as whole percentages, for display next to progress bars.
type Percent struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fats     int `json:"fats"`
}

// Nutrition is the caller's goals and consumption for one day.
type Nutrition struct {
	Date     string   `json:"date"`
	Goals    Macros   `json:"goals"`
	Consumed Macros   `json:"consumed"`
	Progress Progress `json:"progress"`
	Percent  Percent  `json:"percent"`
}

type GetNutritionResponse struct {
	Nutrition *Nutrition `json:"nutrition"`
}

type LogMealRequest struct {
	Date string `json:"date"`
	Meal Macros `json:"meal"`
}

type LogMealResponse struct {
	Nutrition *Nutrition `json:"nutrition"`
}

type SetGoalsRequest struct {
	Goals Macros `json:"goals"`
}

type SetGoalsResponse struct{}

type EstimateMacrosRequest struct {
	RecipeID string `json:"recipeId"`
}

type EstimateMacrosResponse struct {
	// Macros are the estimated macros of one serving.
	Macros Macros `json:"macros"`
}

type GetProfileRequest struct{}

type GetProfileResponse struct {
	Profile Profile `json:"profile"`
}

type SetProfileRequest struct {
	Profile Profile `json:"profile"`
}

type SetProfileResponse struct{}
