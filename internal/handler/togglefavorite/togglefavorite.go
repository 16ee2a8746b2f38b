// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package togglefavorite

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"connectrpc.com/connect"

	"github.com/curioswitch/peakplates/internal/api"
	"github.com/curioswitch/peakplates/internal/auth"
	"github.com/curioswitch/peakplates/internal/reaction"
)

var errMissingID = errors.New("recipe id is required")

func NewHandler(store *firestore.Client) *Handler {
	return &Handler{
		store: store,
	}
}

type Handler struct {
	store *firestore.Client
}

func (h *Handler) ToggleFavorite(ctx context.Context, req *api.ToggleReactionRequest) (*api.ToggleReactionResponse, error) {
	if req.RecipeID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errMissingID)
	}

	res, err := reaction.Apply(ctx, h.store, req.RecipeID, auth.UserID(ctx), reaction.Favorite)
	if err != nil {
		if errors.Is(err, reaction.ErrRecipeNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, err)
		}
		return nil, fmt.Errorf("togglefavorite: toggling favorite: %w", err)
	}

	return &api.ToggleReactionResponse{
		Active: res.Active,
		Count:  res.Count,
	}, nil
}
