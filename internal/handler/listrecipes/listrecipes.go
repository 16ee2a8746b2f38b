// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package listrecipes

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"

	"github.com/curioswitch/peakplates/internal/api"
	"github.com/curioswitch/peakplates/internal/auth"
	"github.com/curioswitch/peakplates/internal/feed"
	"github.com/curioswitch/peakplates/internal/peakplatesdb"
)

func NewHandler(store *firestore.Client) *Handler {
	return &Handler{
		store: store,
	}
}

type Handler struct {
	store *firestore.Client
}

func (h *Handler) ListRecipes(ctx context.Context, req *api.ListRecipesRequest) (*api.ListRecipesResponse, error) {
	// Unordered so recipes without createdAt are still listed.
	loaded, err := feed.Load(ctx, h.store.Collection(peakplatesdb.CollectionRecipes).Query)
	if err != nil {
		slog.ErrorContext(ctx, "listrecipes: loading recipes", "error", err)
		return &api.ListRecipesResponse{
			Recipes:   []*api.Recipe{},
			Tags:      []string{},
			LoadError: feed.ErrLoad,
		}, nil
	}

	f := loaded.NewestFirst()
	return &api.ListRecipesResponse{
		Recipes: api.NewRecipes(f.Filter(req.Query, req.Tags), auth.UserID(ctx)),
		Tags:    f.Tags(),
	}, nil
}
