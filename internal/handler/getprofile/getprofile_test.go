// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package getprofile

import (
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curioswitch/peakplates/internal/api"
	"github.com/curioswitch/peakplates/internal/auth"
	"github.com/curioswitch/peakplates/internal/firestoretest"
	"github.com/curioswitch/peakplates/internal/peakplatesdb"
)

func TestGetProfile(t *testing.T) {
	client := firestoretest.NewClient(t)
	ctx := t.Context()

	profile := peakplatesdb.Profile{Name: "Alice Smith", Age: 31, Height: 168, Weight: 60, Gender: "female"}
	_, err := client.Collection(peakplatesdb.CollectionUsers).Doc("u1").Set(ctx, &peakplatesdb.User{
		ID:       "u1",
		Username: "alice",
		Profile:  profile,
	})
	require.NoError(t, err)
	_, err = client.Collection(peakplatesdb.CollectionUsers).Doc("u2").Set(ctx, &peakplatesdb.User{ID: "u2", Username: "bob"})
	require.NoError(t, err)

	h := NewHandler(client)

	res, err := h.GetProfile(auth.WithUserID(ctx, "u1"), &api.GetProfileRequest{})
	require.NoError(t, err)
	assert.Equal(t, profile, res.Profile)

	res, err = h.GetProfile(auth.WithUserID(ctx, "u2"), &api.GetProfileRequest{})
	require.NoError(t, err)
	assert.Equal(t, api.Profile{}, res.Profile)

	_, err = h.GetProfile(auth.WithUserID(ctx, "u9"), &api.GetProfileRequest{})
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}
