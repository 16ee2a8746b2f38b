// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package login

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"connectrpc.com/connect"
	fbauth "firebase.google.com/go/v4/auth"

	"github.com/curioswitch/peakplates/internal/api"
	"github.com/curioswitch/peakplates/internal/auth"
	"github.com/curioswitch/peakplates/internal/peakplatesdb"
)

// AuthClient looks up users in the identity provider.
type AuthClient interface {
	GetUser(ctx context.Context, uid string) (*fbauth.UserRecord, error)
	CustomToken(ctx context.Context, uid string) (string, error)
}

func NewHandler(authClient AuthClient, store *firestore.Client, emailDomain string) *Handler {
	return &Handler{
		auth:        authClient,
		store:       store,
		emailDomain: emailDomain,
	}
}

type Handler struct {
	auth        AuthClient
	store       *firestore.Client
	emailDomain string
}

func (h *Handler) Login(ctx context.Context, req *api.LoginRequest) (*api.LoginResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
	}
	email := auth.LoginEmail(username, h.emailDomain)

	docs, err := h.store.Collection(peakplatesdb.CollectionUsers).
		Where("email", "==", email).
		Limit(1).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("login: querying users: %w", err)
	}
	if len(docs) == 0 {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
	}
	user, err := peakplatesdb.ParseUser(docs[0])
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		return nil, connect.NewError(connect.CodeUnauthenticated, err)
	}

	if _, err := h.auth.GetUser(ctx, user.ID); err != nil {
		if fbauth.IsUserNotFound(err) {
			return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("login: getting firebase user: %w", err)
	}

	token, err := h.auth.CustomToken(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("login: creating custom token: %w", err)
	}

	return &api.LoginResponse{
		UserID: user.ID,
		Token:  token,
	}, nil
}
