// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package nutrition

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/curioswitch/peakplates/internal/peakplatesdb"
)

// ErrUserNotFound is returned when the user document does not exist.
var ErrUserNotFound = errors.New("user not found")

// FirestoreStore stores nutrition data in user documents.
type FirestoreStore struct {
	store *firestore.Client
}

func NewFirestoreStore(store *firestore.Client) *FirestoreStore {
	return &FirestoreStore{
		store: store,
	}
}

func (s *FirestoreStore) user(uid string) *firestore.DocumentRef {
	return s.store.Collection(peakplatesdb.CollectionUsers).Doc(uid)
}

func (s *FirestoreStore) Load(ctx context.Context, uid string) (peakplatesdb.Goals, map[string]peakplatesdb.Macros, error) {
	doc, err := s.user(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return peakplatesdb.Goals{}, nil, ErrUserNotFound
		}
		return peakplatesdb.Goals{}, nil, fmt.Errorf("nutrition: getting user: %w", err)
	}
	user, err := peakplatesdb.ParseUser(doc)
	if err != nil {
		return peakplatesdb.Goals{}, nil, err
	}
	return user.Goals, user.Daily, nil
}

// SaveDay updates only the fields of one day so concurrent writes to other
// days are kept.
func (s *FirestoreStore) SaveDay(ctx context.Context, uid string, date string, totals peakplatesdb.Macros) error {
	_, err := s.user(uid).Update(ctx, []firestore.Update{
		{FieldPath: firestore.FieldPath{"daily", date, "calories"}, Value: totals.Calories},
		{FieldPath: firestore.FieldPath{"daily", date, "protein"}, Value: totals.Protein},
		{FieldPath: firestore.FieldPath{"daily", date, "carbs"}, Value: totals.Carbs},
		{FieldPath: firestore.FieldPath{"daily", date, "fats"}, Value: totals.Fats},
	})
	if err != nil {
		return fmt.Errorf("nutrition: updating daily totals: %w", err)
	}
	return nil
}

func (s *FirestoreStore) SaveGoals(ctx context.Context, uid string, goals peakplatesdb.Goals) error {
	if _, err := s.user(uid).Update(ctx, []firestore.Update{{Path: "goals", Value: goals}}); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrUserNotFound
		}
		return fmt.Errorf("nutrition: updating goals: %w", err)
	}
	return nil
}
