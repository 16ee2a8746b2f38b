// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package auth

import (
	"context"
	"net/http"

	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"
)

type userIDContextKey struct{}

var userIDContextKeyInstance = userIDContextKey{}

// Middleware stores the UID of the verified Firebase token in the request
// context. It must run after the firebaseauth middleware.
func Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := firebaseauth.TokenFromContext(r.Context())
			if tok == nil || tok.UID == "" {
				http.Error(w, "unauthenticated", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), tok.UID)))
		})
	}
}

// WithUserID returns a context for the user with the given ID.
func WithUserID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, userIDContextKeyInstance, uid)
}

// UserID returns the ID of the authenticated user, or an empty string for
// unauthenticated requests.
func UserID(ctx context.Context) string {
	if uid, ok := ctx.Value(userIDContextKeyInstance).(string); ok {
		return uid
	}
	return ""
}
