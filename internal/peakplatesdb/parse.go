// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package peakplatesdb

import (
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
)

// MissingFieldError is returned when a stored document lacks a required field.
type MissingFieldError struct {
	Collection string
	ID         string
	Field      string
}

func (e *MissingFieldError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("peakplatesdb: %s document missing required field %q", e.Collection, e.Field)
	}
	return fmt.Sprintf("peakplatesdb: %s/%s missing required field %q", e.Collection, e.ID, e.Field)
}

// ParseRecipe decodes and validates a recipe document. Documents written before
// the id field existed get it from the document ID, and those with only a
// millisecond timestamp get CreatedAt from it.
func ParseRecipe(doc *firestore.DocumentSnapshot) (*Recipe, error) {
	var r Recipe
	if err := doc.DataTo(&r); err != nil {
		return nil, fmt.Errorf("peakplatesdb: decoding recipe %s: %w", doc.Ref.ID, err)
	}
	if r.ID == "" {
		r.ID = doc.Ref.ID
	}
	r.backfillCreatedAt()
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// ParseUser decodes and validates a user document.
func ParseUser(doc *firestore.DocumentSnapshot) (*User, error) {
	var u User
	if err := doc.DataTo(&u); err != nil {
		return nil, fmt.Errorf("peakplatesdb: decoding user %s: %w", doc.Ref.ID, err)
	}
	if u.ID == "" {
		u.ID = doc.Ref.ID
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return &u, nil
}

// ParseFriendRequest decodes and validates a friend request document.
func ParseFriendRequest(doc *firestore.DocumentSnapshot) (*FriendRequest, error) {
	var r FriendRequest
	if err := doc.DataTo(&r); err != nil {
		return nil, fmt.Errorf("peakplatesdb: decoding friend request %s: %w", doc.Ref.ID, err)
	}
	if err := r.Validate(); err != nil {
		var mf *MissingFieldError
		if errors.As(err, &mf) {
			mf.ID = doc.Ref.ID
		}
		return nil, err
	}
	return &r, nil
}
