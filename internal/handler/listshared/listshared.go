// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package listshared

import (
	"context"
	"log/slog"

	"github.com/curioswitch/peakplates/internal/api"
	"github.com/curioswitch/peakplates/internal/auth"
	"github.com/curioswitch/peakplates/internal/feed"
	"github.com/curioswitch/peakplates/internal/peakplatesdb"
	"github.com/curioswitch/peakplates/internal/social"
)

func NewHandler(graph *social.Graph) *Handler {
	return &Handler{
		graph: graph,
	}
}

type Handler struct {
	graph *social.Graph
}

func (h *Handler) ListShared(ctx context.Context, req *api.ListSharedRequest) (*api.ListSharedResponse, error) {
	uid := auth.UserID(ctx)

	shared, err := h.graph.SharedWith(ctx, uid)
	if err != nil {
		slog.ErrorContext(ctx, "listshared: loading shared recipes", "error", err)
		return &api.ListSharedResponse{
			Recipes:   []*api.SharedRecipe{},
			Tags:      []string{},
			LoadError: feed.ErrLoad,
		}, nil
	}

	recipes := make([]*peakplatesdb.Recipe, len(shared))
	sharedBy := make(map[string]string, len(shared))
	for i, s := range shared {
		recipes[i] = s.Recipe
		sharedBy[s.Recipe.ID] = s.SharedByUsername
	}
	f := feed.FromRecipes(recipes)

	filtered := f.Filter(req.Query, req.Tags)
	res := make([]*api.SharedRecipe, len(filtered))
	for i, r := range filtered {
		res[i] = &api.SharedRecipe{
			Recipe:   api.NewRecipe(r, uid),
			SharedBy: sharedBy[r.ID],
		}
	}

	return &api.ListSharedResponse{
		Recipes: res,
		Tags:    f.Tags(),
	}, nil
}
