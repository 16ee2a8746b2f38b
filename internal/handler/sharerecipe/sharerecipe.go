// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package sharerecipe

import (
	"context"
	"errors"
	"fmt"

	"connectrpc.com/connect"

	"github.com/curioswitch/peakplates/internal/api"
	"github.com/curioswitch/peakplates/internal/auth"
	"github.com/curioswitch/peakplates/internal/social"
)

var errMissingFields = errors.New("recipe id and recipient are required")

func NewHandler(graph *social.Graph) *Handler {
	return &Handler{
		graph: graph,
	}
}

type Handler struct {
	graph *social.Graph
}

func (h *Handler) ShareRecipe(ctx context.Context, req *api.ShareRecipeRequest) (*api.ShareRecipeResponse, error) {
	if req.RecipeID == "" || req.ToUserID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errMissingFields)
	}

	if _, err := h.graph.Share(ctx, auth.UserID(ctx), req.RecipeID, req.ToUserID); err != nil {
		switch {
		case errors.Is(err, social.ErrShareWithOneself):
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		case errors.Is(err, social.ErrRecipeNotFound), errors.Is(err, social.ErrUserNotFound):
			return nil, connect.NewError(connect.CodeNotFound, err)
		case errors.Is(err, social.ErrAlreadyShared):
			return nil, connect.NewError(connect.CodeAlreadyExists, err)
		}
		return nil, fmt.Errorf("sharerecipe: sharing recipe: %w", err)
	}

	return &api.ShareRecipeResponse{}, nil
}
