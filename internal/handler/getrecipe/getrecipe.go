// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package getrecipe

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"connectrpc.com/connect"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/curioswitch/peakplates/internal/api"
	"github.com/curioswitch/peakplates/internal/auth"
	"github.com/curioswitch/peakplates/internal/peakplatesdb"
)

var (
	errMissingID      = errors.New("recipe id is required")
	errRecipeNotFound = errors.New("recipe not found")
)

func NewHandler(store *firestore.Client) *Handler {
	return &Handler{
		store: store,
	}
}

type Handler struct {
	store *firestore.Client
}

func (h *Handler) GetRecipe(ctx context.Context, req *api.GetRecipeRequest) (*api.GetRecipeResponse, error) {
	if req.RecipeID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errMissingID)
	}

	doc, err := h.store.Collection(peakplatesdb.CollectionRecipes).Doc(req.RecipeID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, connect.NewError(connect.CodeNotFound, errRecipeNotFound)
		}
		return nil, fmt.Errorf("getrecipe: getting recipe from firestore: %w", err)
	}

	recipe, err := peakplatesdb.ParseRecipe(doc)
	if err != nil {
		return nil, fmt.Errorf("getrecipe: %w", err)
	}

	return &api.GetRecipeResponse{
		Recipe: api.NewRecipe(recipe, auth.UserID(ctx)),
	}, nil
}
