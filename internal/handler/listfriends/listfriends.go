// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package listfriends

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

func (h *Handler) ListFriends(ctx context.Context, _ *api.ListFriendsRequest) (*api.ListFriendsResponse, error) {
	friends, err := h.graph.Friends(ctx, auth.UserID(ctx))
	if err != nil {
		return nil, fmt.Errorf("listfriends: listing friends: %w", err)
	}

	res := make([]*api.Friend, len(friends))
	for i, f := range friends {
		res[i] = &api.Friend{
			UserID:   f.UserID,
			Username: f.Username,
		}
	}
	return &api.ListFriendsResponse{
		Friends: res,
	}, nil
}
