// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package api

// ServiceName is the fully-qualified name of the PeakPlates service.
const ServiceName = "peakplates.PeakPlatesService"

const (
	SignupProcedure               = "/" + ServiceName + "/Signup"
	LoginProcedure                = "/" + ServiceName + "/Login"
	ListTagsProcedure             = "/" + ServiceName + "/ListTags"
	ListRecipesProcedure          = "/" + ServiceName + "/ListRecipes"
	ListFavoritesProcedure        = "/" + ServiceName + "/ListFavorites"
	GetRecipeProcedure            = "/" + ServiceName + "/GetRecipe"
	AddRecipeProcedure            = "/" + ServiceName + "/AddRecipe"
	DeleteRecipeProcedure         = "/" + ServiceName + "/DeleteRecipe"
	ToggleLikeProcedure           = "/" + ServiceName + "/ToggleLike"
	ToggleFavoriteProcedure       = "/" + ServiceName + "/ToggleFavorite"
	ShareRecipeProcedure          = "/" + ServiceName + "/ShareRecipe"
	ListSharedProcedure           = "/" + ServiceName + "/ListShared"
	SearchUsersProcedure          = "/" + ServiceName + "/SearchUsers"
	SendFriendRequestProcedure    = "/" + ServiceName + "/SendFriendRequest"
	ListFriendRequestsProcedure   = "/" + ServiceName + "/ListFriendRequests"
	AcceptFriendRequestProcedure  = "/" + ServiceName + "/AcceptFriendRequest"
	DeclineFriendRequestProcedure = "/" + ServiceName + "/DeclineFriendRequest"
	ListFriendsProcedure          = "/" + ServiceName + "/ListFriends"
	RemoveFriendProcedure         = "/" + ServiceName + "/RemoveFriend"
	GetNutritionProcedure         = "/" + ServiceName + "/GetNutrition"
	LogMealProcedure              = "/" + ServiceName + "/LogMeal"
	SetGoalsProcedure             = "/" + ServiceName + "/SetGoals"
	EstimateMacrosProcedure       = "/" + ServiceName + "/EstimateMacros"
	GetProfileProcedure           = "/" + ServiceName + "/GetProfile"
	SetProfileProcedure           = "/" + ServiceName + "/SetProfile"
)

// PublicProcedures can be called without a Firebase ID token.
var PublicProcedures = []string{
	SignupProcedure,
	LoginProcedure,
	ListTagsProcedure,
}
