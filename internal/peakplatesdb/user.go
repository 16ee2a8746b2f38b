// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package peakplatesdb

import (
	"time"

	"cloud.google.com/go/firestore"
)

// CollectionUsers is the Firestore collection holding users, keyed by Firebase UID.
const CollectionUsers = "users"

// DateLayout is the format of keys in User.Daily.
const DateLayout = "2006-01-02"

// Macros are amounts of energy and macronutrients.
type Macros struct {
	// Calories is energy in kilocalories.
	Calories int `firestore:"calories" json:"calories"`

	// Protein is protein in grams.
	Protein int `firestore:"protein" json:"protein"`

	// Carbs is carbohydrates in grams.
	Carbs int `firestore:"carbs" json:"carbs"`

	// Fats is fat in grams.
	Fats int `firestore:"fats" json:"fats"`
}

// Add returns the sum of m and o.
func (m Macros) Add(o Macros) Macros {
	return Macros{
		Calories: m.Calories + o.Calories,
		Protein:  m.Protein + o.Protein,
		Carbs:    m.Carbs + o.Carbs,
		Fats:     m.Fats + o.Fats,
	}
}

// Negative returns whether any amount is below zero.
func (m Macros) Negative() bool {
	return m.Calories < 0 || m.Protein < 0 || m.Carbs < 0 || m.Fats < 0
}

// Goals are daily targets for a user.
type Goals = Macros

// Profile is body information entered by a user. Its fields are stored at the
// top level of the user document.
type Profile struct {
	Name string `firestore:"name" json:"name"`

	// Age is in years.
	Age int `firestore:"age" json:"age"`

	// Height is in centimeters.
	Height int `firestore:"height" json:"height"`

	// Weight is in kilograms.
	Weight int `firestore:"weight" json:"weight"`

	Gender string `firestore:"gender" json:"gender"`
}

// Updates returns the Firestore updates that overwrite the profile fields of a
// user document and nothing else.
func (p Profile) Updates() []firestore.Update {
	return []firestore.Update{
		{Path: "name", Value: p.Name},
		{Path: "age", Value: p.Age},
		{Path: "height", Value: p.Height},
		{Path: "weight", Value: p.Weight},
		{Path: "gender", Value: p.Gender},
	}
}

// User represents a user stored in Firestore.
type User struct {
	// ID is the Firebase UID of the user. It matches the document ID.
	ID string `firestore:"id"`

	// Username is the display name chosen at signup.
	Username string `firestore:"username"`

	// Email is the login email registered with Firebase Auth.
	Email string `firestore:"email"`

	// PasswordHash is the bcrypt hash of the password.
	PasswordHash string `firestore:"passwordHash"`

	// Goals are the daily nutrition goals of the user.
	Goals Goals `firestore:"goals"`

	// Daily maps a date in DateLayout to the macros consumed that day.
	Daily map[string]Macros `firestore:"daily"`

	// CreatedAt is the time the user signed up.
	CreatedAt time.Time `firestore:"createdAt"`

	Profile
}

// Validate checks that required fields are present.
func (u *User) Validate() error {
	switch {
	case u.ID == "":
		return &MissingFieldError{Collection: CollectionUsers, Field: "id"}
	case u.Username == "":
		return &MissingFieldError{Collection: CollectionUsers, ID: u.ID, Field: "username"}
	}
	return nil
}
