// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package getnutrition

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

func (h *Handler) GetNutrition(ctx context.Context, req *api.GetNutritionRequest) (*api.GetNutritionResponse, error) {
	date := req.Date
	if date == "" {
		date = nutrition.Today(h.now(), usertime.Location(ctx))
	}

	summary, err := h.tracker.Load(ctx, auth.UserID(ctx), date)
	if err != nil {
		switch {
		case errors.Is(err, nutrition.ErrInvalidDate):
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		case errors.Is(err, nutrition.ErrUserNotFound):
			return nil, connect.NewError(connect.CodeNotFound, err)
		}
		return nil, fmt.Errorf("getnutrition: loading nutrition: %w", err)
	}

	return &api.GetNutritionResponse{
		Nutrition: api.NewNutrition(summary),
	}, nil
}
