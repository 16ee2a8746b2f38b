// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package listfriendrequests

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

func (h *Handler) ListFriendRequests(ctx context.Context, _ *api.ListFriendRequestsRequest) (*api.ListFriendRequestsResponse, error) {
	pending, err := h.graph.PendingRequests(ctx, auth.UserID(ctx))
	if err != nil {
		return nil, fmt.Errorf("listfriendrequests: listing requests: %w", err)
	}

	requests := make([]*api.FriendRequest, len(pending))
	for i, p := range pending {
		requests[i] = &api.FriendRequest{
			ID:           p.ID,
			FromUserID:   p.FromUserID,
			FromUsername: p.FromUsername,
			CreatedAt:    p.CreatedAt,
		}
	}
	return &api.ListFriendRequestsResponse{
		Requests: requests,
	}, nil
}
