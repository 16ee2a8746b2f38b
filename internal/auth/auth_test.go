// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	require.NoError(t, CheckPassword(hash, "hunter22"))
	require.ErrorIs(t, CheckPassword(hash, "hunter23"), ErrInvalidCredentials)
	require.ErrorIs(t, CheckPassword("not-a-hash", "hunter22"), ErrInvalidCredentials)
}

func TestLoginEmail(t *testing.T) {
	tests := []struct {
		username string
		want     string
	}{
		{username: "alice", want: "alice@example.com"},
		{username: " Alice ", want: "alice@example.com"},
		{username: "alice@peakplates.app", want: "alice@peakplates.app"},
	}

	for _, tc := range tests {
		t.Run(tc.username, func(t *testing.T) {
			assert.Equal(t, tc.want, LoginEmail(tc.username, "example.com"))
		})
	}
}

func TestUserID(t *testing.T) {
	assert.Empty(t, UserID(t.Context()))
	assert.Equal(t, "u1", UserID(WithUserID(t.Context(), "u1")))
}

func TestMiddlewareRejectsMissingToken(t *testing.T) {
	called := false
	h := Middleware()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/peakplates.PeakPlatesService/ListRecipes", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}
