// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package searchusers

import (
	"context"
	"fmt"

	"github.com/curioswitch/peakplates/internal/api"
	"github.com/curioswitch/peakplates/internal/auth"
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

func (h *Handler) SearchUsers(ctx context.Context, req *api.SearchUsersRequest) (*api.SearchUsersResponse, error) {
	matches, err := h.graph.SearchUsers(ctx, auth.UserID(ctx), req.Query)
	if err != nil {
		return nil, fmt.Errorf("searchusers: searching users: %w", err)
	}

	users := make([]*api.User, len(matches))
	for i, m := range matches {
		users[i] = &api.User{
			UserID:   m.UserID,
			Username: m.Username,
			IsFriend: m.IsFriend,
		}
	}
	return &api.SearchUsersResponse{
		Users: users,
	}, nil
}
