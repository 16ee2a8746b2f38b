// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package acceptfriendrequest

import (
	"context"
	"errors"
	"fmt"

	"connectrpc.com/connect"

	"github.com/curioswitch/peakplates/internal/api"
	"github.com/curioswitch/peakplates/internal/auth"
	"github.com/curioswitch/peakplates/internal/social"
)

var errMissingID = errors.New("request id is required")

func NewHandler(graph *social.Graph) *Handler {
	return &Handler{
		graph: graph,
	}
}

type Handler struct {
	graph *social.Graph
}

func (h *Handler) AcceptFriendRequest(ctx context.Context, req *api.RespondFriendRequestRequest) (*api.RespondFriendRequestResponse, error) {
	if req.RequestID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errMissingID)
	}

	if err := h.graph.Accept(ctx, req.RequestID, auth.UserID(ctx)); err != nil {
		switch {
		case errors.Is(err, social.ErrRequestNotFound):
			return nil, connect.NewError(connect.CodeNotFound, err)
		case errors.Is(err, social.ErrNotRecipient):
			return nil, connect.NewError(connect.CodePermissionDenied, err)
		case errors.Is(err, social.ErrNotPending):
			return nil, connect.NewError(connect.CodeFailedPrecondition, err)
		}
		return nil, fmt.Errorf("acceptfriendrequest: accepting request: %w", err)
	}

	return &api.RespondFriendRequestResponse{}, nil
}
