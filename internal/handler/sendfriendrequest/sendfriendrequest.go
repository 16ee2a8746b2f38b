// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package sendfriendrequest

import (
	"context"
	"errors"
	"fmt"

	"connectrpc.com/connect"

	"github.com/curioswitch/peakplates/internal/api"
	"github.com/curioswitch/peakplates/internal/auth"
	"github.com/curioswitch/peakplates/internal/peakplatesdb"
	"github.com/curioswitch/peakplates/internal/social"
)

var errMissingRecipient = errors.New("recipient is required")

func NewHandler(graph *social.Graph) *Handler {
	return &Handler{
		graph: graph,
	}
}

type Handler struct {
	graph *social.Graph
}

func (h *Handler) SendFriendRequest(ctx context.Context, req *api.SendFriendRequestRequest) (*api.SendFriendRequestResponse, error) {
	if req.ToUserID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errMissingRecipient)
	}
	uid := auth.UserID(ctx)

	if _, err := h.graph.SendRequest(ctx, uid, req.ToUserID); err != nil {
		switch {
		case errors.Is(err, social.ErrSelfRequest):
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		case errors.Is(err, social.ErrUserNotFound):
			return nil, connect.NewError(connect.CodeNotFound, err)
		case errors.Is(err, social.ErrAlreadyFriends), errors.Is(err, social.ErrAlreadySent),
			errors.Is(err, social.ErrRequestIncoming):
			return nil, connect.NewError(connect.CodeAlreadyExists, err)
		}
		return nil, fmt.Errorf("sendfriendrequest: sending request: %w", err)
	}

	return &api.SendFriendRequestResponse{
		RequestID: peakplatesdb.FriendRequestID(uid, req.ToUserID),
	}, nil
}
