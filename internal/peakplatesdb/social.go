// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package peakplatesdb

import "time"

const (
	// CollectionFriendRequests holds FriendRequest documents keyed by FriendRequestID.
	CollectionFriendRequests = "friendRequests"

	// CollectionFriendships holds Friendship documents keyed by FriendshipID.
	CollectionFriendships = "friendships"

	// CollectionSharedRecipes holds SharedRecipe audit records.
	CollectionSharedRecipes = "sharedRecipes"
)

type FriendRequestStatus string

const (
	FriendRequestStatusPending  FriendRequestStatus = "pending"
	FriendRequestStatusAccepted FriendRequestStatus = "accepted"
	FriendRequestStatusDeclined FriendRequestStatus = "declined"
)

// FriendRequest is a request from one user to befriend another.
type FriendRequest struct {
	// FromUserID is the ID of the user who sent the request.
	FromUserID string `firestore:"fromUserId"`

	// FromUsername is the display name of the sender.
	FromUsername string `firestore:"fromUsername"`

	// ToUserID is the ID of the user receiving the request.
	ToUserID string `firestore:"toUserId"`

	// ToUsername is the display name of the recipient.
	ToUsername string `firestore:"toUsername"`

	// Status is the state of the request.
	Status FriendRequestStatus `firestore:"status"`

	// CreatedAt is the time the request was sent.
	CreatedAt time.Time `firestore:"createdAt"`
}

// Validate checks that required fields are present.
func (r *FriendRequest) Validate() error {
	switch {
	case r.FromUserID == "":
		return &MissingFieldError{Collection: CollectionFriendRequests, Field: "fromUserId"}
	case r.ToUserID == "":
		return &MissingFieldError{Collection: CollectionFriendRequests, Field: "toUserId"}
	case r.Status == "":
		return &MissingFieldError{Collection: CollectionFriendRequests, Field: "status"}
	}
	return nil
}

// FriendRequestID returns the document ID of the request from one user to another.
// There is at most one request per ordered pair.
func FriendRequestID(from, to string) string {
	return from + "_" + to
}

// Friendship is an undirected edge between two users.
type Friendship struct {
	// User1 is the user who sent the accepted request.
	User1 string `firestore:"user1"`

	// User2 is the user who accepted the request.
	User2 string `firestore:"user2"`

	// CreatedAt is the time the request was accepted.
	CreatedAt time.Time `firestore:"createdAt"`
}

// Other returns the user in the friendship that is not uid.
func (f *Friendship) Other(uid string) string {
	if f.User1 == uid {
		return f.User2
	}
	return f.User1
}

// FriendshipID returns the document ID of the friendship between two users,
// independent of argument order.
func FriendshipID(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "_" + b
}

// SharedRecipe records that a recipe was shared with a user.
type SharedRecipe struct {
	// RecipeID is the ID of the shared recipe.
	RecipeID string `firestore:"recipeId"`

	// RecipeName is the title of the recipe when it was shared.
	RecipeName string `firestore:"recipeName"`

	// SharedBy is the ID of the user who shared the recipe.
	SharedBy string `firestore:"sharedBy"`

	// SharedByUsername is the display name of the user who shared the recipe.
	SharedByUsername string `firestore:"sharedByUsername"`

	// SharedWith is the ID of the recipient.
	SharedWith string `firestore:"sharedWith"`

	// SharedAt is the time the recipe was shared.
	SharedAt time.Time `firestore:"sharedAt"`
}
