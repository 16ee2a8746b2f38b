// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package setprofile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"connectrpc.com/connect"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/curioswitch/peakplates/internal/api"
	"github.com/curioswitch/peakplates/internal/auth"
	"github.com/curioswitch/peakplates/internal/peakplatesdb"
)

const (
	maxAge    = 150
	maxHeight = 300
	maxWeight = 700
)

var (
	errInvalidNumbers = errors.New("age, height and weight must be valid positive numbers")
	errUserNotFound   = errors.New("user not found")
)

func NewHandler(store *firestore.Client) *Handler {
	return &Handler{
		store: store,
	}
}

type Handler struct {
	store *firestore.Client
}

func (h *Handler) SetProfile(ctx context.Context, req *api.SetProfileRequest) (*api.SetProfileResponse, error) {
	profile := req.Profile
	profile.Name = strings.TrimSpace(profile.Name)
	profile.Gender = strings.TrimSpace(profile.Gender)
	if err := validate(profile); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	ref := h.store.Collection(peakplatesdb.CollectionUsers).Doc(auth.UserID(ctx))
	if _, err := ref.Update(ctx, profile.Updates()); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, connect.NewError(connect.CodeNotFound, errUserNotFound)
		}
		return nil, fmt.Errorf("setprofile: updating user in firestore: %w", err)
	}

	return &api.SetProfileResponse{}, nil
}

func validate(p api.Profile) error {
	switch {
	case p.Age <= 0 || p.Age > maxAge:
		return errInvalidNumbers
	case p.Height <= 0 || p.Height > maxHeight:
		return errInvalidNumbers
	case p.Weight <= 0 || p.Weight > maxWeight:
		return errInvalidNumbers
	}
	return nil
}
