// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package logmeal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"connectrpc.com/connect"

	"github.com/curioswitch/peakplates/internal/api"
	"github.com/curioswitch/peakplates/internal/auth"
	"github.com/curioswitch/peakplates/internal/nutrition"
	"github.com/curioswitch/peakplates/internal/usertime"
)

func NewHandler(tracker *nutrition.Tracker) *Handler {
	return &Handler{
		tracker: tracker,
		now:     time.Now,
	}
}

type Handler struct {
	tracker *nutrition.Tracker
	now     func() time.Time
}

func (h *Handler) LogMeal(ctx context.Context, req *api.LogMealRequest) (*api.LogMealResponse, error) {
	date := req.Date
	if date == "" {
		date = nutrition.Today(h.now(), usertime.Location(ctx))
	}

	summary, err := h.tracker.LogMeal(ctx, auth.UserID(ctx), date, req.Meal)
	if err != nil {
		switch {
		case errors.Is(err, nutrition.ErrInvalidDate), errors.Is(err, nutrition.ErrNegativeValue):
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		case errors.Is(err, nutrition.ErrUserNotFound):
			return nil, connect.NewError(connect.CodeNotFound, err)
		}
		return nil, fmt.Errorf("logmeal: logging meal: %w", err)
	}

	return &api.LogMealResponse{
		Nutrition: api.NewNutrition(summary),
	}, nil
}
