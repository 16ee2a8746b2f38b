// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package removefriend

import (
	"context"
	"errors"
	"fmt"

	"connectrpc.com/connect"

	"github.com/curioswitch/peakplates/internal/api"
	"github.com/curioswitch/peakplates/internal/auth"
	"github.com/curioswitch/peakplates/internal/social"
)

var errMissingFriend = errors.New("friend id is required")

func NewHandler(graph *social.Graph) *Handler {
	return &Handler{
		graph: graph,
	}
}

type Handler struct {
	graph *social.Graph
}

func (h *Handler) RemoveFriend(ctx context.Context, req *api.RemoveFriendRequest) (*api.RemoveFriendResponse, error) {
	if req.FriendID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errMissingFriend)
	}

	if err := h.graph.Remove(ctx, auth.UserID(ctx), req.FriendID); err != nil {
		if errors.Is(err, social.ErrNotFriends) {
			return nil, connect.NewError(connect.CodeNotFound, err)
		}
		return nil, fmt.Errorf("removefriend: removing friend: %w", err)
	}

	return &api.RemoveFriendResponse{}, nil
}
