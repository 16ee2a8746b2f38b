// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package listfavorites

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

func (h *Handler) ListFavorites(ctx context.Context, req *api.ListFavoritesRequest) (*api.ListFavoritesResponse, error) {
	uid := auth.UserID(ctx)

	q := h.store.Collection(peakplatesdb.CollectionRecipes).Where("favoriteByUsers", "array-contains", uid)
	loaded, err := feed.Load(ctx, q)
	if err != nil {
		slog.ErrorContext(ctx, "listfavorites: loading favorites", "error", err)
		return &api.ListFavoritesResponse{
			Recipes:   []*api.Recipe{},
			Tags:      []string{},
			LoadError: feed.ErrLoad,
		}, nil
	}

	f := loaded.NewestFirst()

	return &api.ListFavoritesResponse{
		Recipes: api.NewRecipes(f.Filter(req.Query, req.Tags), uid),
		Tags:    f.Tags(),
	}, nil
}
