// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package getprofile

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

var errUserNotFound = errors.New("user not found")

func NewHandler(store *firestore.Client) *Handler {
	return &Handler{
		store: store,
	}
}

type Handler struct {
	store *firestore.Client
}

func (h *Handler) GetProfile(ctx context.Context, _ *api.GetProfileRequest) (*api.GetProfileResponse, error) {
	doc, err := h.store.Collection(peakplatesdb.CollectionUsers).Doc(auth.UserID(ctx)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, connect.NewError(connect.CodeNotFound, errUserNotFound)
		}
		return nil, fmt.Errorf("getprofile: getting user from firestore: %w", err)
	}

	user, err := peakplatesdb.ParseUser(doc)
	if err != nil {
		return nil, fmt.Errorf("getprofile: %w", err)
	}

	return &api.GetProfileResponse{
		Profile: user.Profile,
	}, nil
}
