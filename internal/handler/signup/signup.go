// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package signup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"connectrpc.com/connect"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/curioswitch/peakplates/internal/api"
	"github.com/curioswitch/peakplates/internal/auth"
	"github.com/curioswitch/peakplates/internal/peakplatesdb"
)

const minPasswordLength = 6

var (
	errMissingFields    = errors.New("username, password and confirmation are required")
	errPasswordMismatch = errors.New("passwords do not match")
	errPasswordTooShort = fmt.Errorf("password must be at least %d characters", minPasswordLength)
	errUserExists       = errors.New("username is already taken")
)

// AuthClient registers users with the identity provider.
type AuthClient interface {
	CreateUser(ctx context.Context, user *fbauth.UserToCreate) (*fbauth.UserRecord, error)
	CustomToken(ctx context.Context, uid string) (string, error)
	DeleteUser(ctx context.Context, uid string) error
}

func NewHandler(authClient AuthClient, store *firestore.Client, emailDomain string) *Handler {
	return &Handler{
		auth:        authClient,
		store:       store,
		emailDomain: emailDomain,
		now:         time.Now,
	}
}

type Handler struct {
	auth        AuthClient
	store       *firestore.Client
	emailDomain string
	now         func() time.Time
}

func (h *Handler) Signup(ctx context.Context, req *api.SignupRequest) (*api.SignupResponse, error) {
	username := strings.TrimSpace(req.Username)
	if err := validate(username, req.Password, req.ConfirmPassword); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	email := auth.LoginEmail(username, h.emailDomain)
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	rec, err := h.auth.CreateUser(ctx, (&fbauth.UserToCreate{}).
		Email(email).
		Password(req.Password).
		DisplayName(username))
	if err != nil {
		if fbauth.IsEmailAlreadyExists(err) {
			return nil, connect.NewError(connect.CodeAlreadyExists, errUserExists)
		}
		return nil, fmt.Errorf("signup: creating firebase user: %w", err)
	}

	user := peakplatesdb.User{
		ID:           rec.UID,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Daily:        map[string]peakplatesdb.Macros{},
		CreatedAt:    h.now(),
	}
	if _, err := h.store.Collection(peakplatesdb.CollectionUsers).Doc(rec.UID).Create(ctx, &user); err != nil {
		h.deleteAuthUser(ctx, rec.UID)
		if status.Code(err) == codes.AlreadyExists {
			return nil, connect.NewError(connect.CodeAlreadyExists, errUserExists)
		}
		return nil, fmt.Errorf("signup: creating user in firestore: %w", err)
	}

	token, err := h.auth.CustomToken(ctx, rec.UID)
	if err != nil {
		return nil, fmt.Errorf("signup: creating custom token: %w", err)
	}

	return &api.SignupResponse{
		UserID: rec.UID,
		Token:  token,
	}, nil
}

// deleteAuthUser removes a Firebase user whose profile could not be stored so
// the username can be registered again.
func (h *Handler) deleteAuthUser(ctx context.Context, uid string) {
	if err := h.auth.DeleteUser(context.WithoutCancel(ctx), uid); err != nil {
		slog.ErrorContext(ctx, "signup: deleting orphaned firebase user", "uid", uid, "error", err)
	}
}

func validate(username string, password string, confirm string) error {
	switch {
	case username == "" || password == "" || confirm == "":
		return errMissingFields
	case password != confirm:
		return errPasswordMismatch
	case len(password) < minPasswordLength:
		return errPasswordTooShort
	}
	return nil
}
