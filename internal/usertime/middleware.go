// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package usertime resolves the time zone of the calling user.
package usertime

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Header is the request header carrying an IANA time zone name, e.g. Asia/Tokyo.
const Header = "X-Time-Zone"

type userLocationContextKey struct{}

var userLocationContextKeyInstance = userLocationContextKey{}

func Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if name := strings.TrimSpace(r.Header.Get(Header)); name != "" {
				if loc, err := time.LoadLocation(name); err == nil {
					ctx = WithLocation(ctx, loc)
					r = r.WithContext(ctx)
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// WithLocation returns a context for a user in loc.
func WithLocation(ctx context.Context, loc *time.Location) context.Context {
	return context.WithValue(ctx, userLocationContextKeyInstance, loc)
}

// Location returns the user's time zone, or UTC when unknown.
func Location(ctx context.Context) *time.Location {
	if loc, ok := ctx.Value(userLocationContextKeyInstance).(*time.Location); ok {
		return loc
	}
	return time.UTC
}
