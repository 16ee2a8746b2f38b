// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package getnutrition

import (
	"context"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curioswitch/peakplates/internal/api"
	"github.com/curioswitch/peakplates/internal/auth"
	"github.com/curioswitch/peakplates/internal/nutrition"
	"github.com/curioswitch/peakplates/internal/peakplatesdb"
)

type staticStore struct {
	goals peakplatesdb.Goals
	daily map[string]peakplatesdb.Macros
}

func (s *staticStore) Load(context.Context, string) (peakplatesdb.Goals, map[string]peakplatesdb.Macros, error) {
	daily := make(map[string]peakplatesdb.Macros, len(s.daily))
	for k, v := range s.daily {
		daily[k] = v
	}
	return s.goals, daily, nil
}

func (s *staticStore) SaveDay(context.Context, string, string, peakplatesdb.Macros) error {
	return nil
}

func (s *staticStore) SaveGoals(context.Context, string, peakplatesdb.Goals) error {
	return nil
}

func TestGetNutrition(t *testing.T) {
	store := &staticStore{
		goals: peakplatesdb.Goals{Calories: 2000, Protein: 100, Carbs: 250, Fats: 70},
		daily: map[string]peakplatesdb.Macros{
			"2025-03-01": {Calories: 2500, Protein: 50},
		},
	}
	tracker := nutrition.NewTracker(t.Context(), store, nutrition.Options{})
	defer tracker.Close()

	h := NewHandler(tracker)
	h.now = func() time.Time { return time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC) }
	ctx := auth.WithUserID(t.Context(), "u1")

	res, err := h.GetNutrition(ctx, &api.GetNutritionRequest{})
	require.NoError(t, err)
	n := res.Nutrition
	assert.Equal(t, "2025-03-01", n.Date)
	assert.Equal(t, store.goals, n.Goals)
	assert.InDelta(t, 1.0, n.Progress.Calories, 1e-9)
	assert.InDelta(t, 0.5, n.Progress.Protein, 1e-9)
	assert.InDelta(t, 0.0, n.Progress.Carbs, 1e-9)

	res, err = h.GetNutrition(ctx, &api.GetNutritionRequest{Date: "2025-02-28"})
	require.NoError(t, err)
	assert.Equal(t, api.Macros{}, res.Nutrition.Consumed)

	_, err = h.GetNutrition(ctx, &api.GetNutritionRequest{Date: "yesterday"})
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}
