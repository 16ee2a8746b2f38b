// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package setgoals

import (
	"context"
	"errors"
	"fmt"

	"connectrpc.com/connect"

	"github.com/curioswitch/peakplates/internal/api"
	"github.com/curioswitch/peakplates/internal/auth"
	"github.com/curioswitch/peakplates/internal/nutrition"
)

func NewHandler(tracker *nutrition.Tracker) *Handler {
	return &Handler{
		tracker: tracker,
	}
}

type Handler struct {
	tracker *nutrition.Tracker
}

func (h *Handler) SetGoals(ctx context.Context, req *api.SetGoalsRequest) (*api.SetGoalsResponse, error) {
	if err := h.tracker.SetGoals(ctx, auth.UserID(ctx), req.Goals); err != nil {
		switch {
		case errors.Is(err, nutrition.ErrNegativeValue):
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		case errors.Is(err, nutrition.ErrUserNotFound):
			return nil, connect.NewError(connect.CodeNotFound, err)
		}
		return nil, fmt.Errorf("setgoals: saving goals: %w", err)
	}

	return &api.SetGoalsResponse{}, nil
}
