// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package sendfriendrequest

import (
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curioswitch/peakplates/internal/api"
	"github.com/curioswitch/peakplates/internal/auth"
	"github.com/curioswitch/peakplates/internal/firestoretest"
	"github.com/curioswitch/peakplates/internal/peakplatesdb"
	"github.com/curioswitch/peakplates/internal/social"
)

func TestSendFriendRequest(t *testing.T) {
	client := firestoretest.NewClient(t)
	ctx := t.Context()

	for uid, name := range map[string]string{"u1": "alice", "u2": "bob", "u3": "carol"} {
		_, err := client.Collection(peakplatesdb.CollectionUsers).Doc(uid).Set(ctx, &peakplatesdb.User{ID: uid, Username: name})
		require.NoError(t, err)
	}

	h := NewHandler(social.NewGraph(client))

	res, err := h.SendFriendRequest(auth.WithUserID(ctx, "u1"), &api.SendFriendRequestRequest{ToUserID: "u2"})
	require.NoError(t, err)
	assert.Equal(t, peakplatesdb.FriendRequestID("u1", "u2"), res.RequestID)

	_, err = h.SendFriendRequest(auth.WithUserID(ctx, "u1"), &api.SendFriendRequestRequest{ToUserID: "u2"})
	assert.Equal(t, connect.CodeAlreadyExists, connect.CodeOf(err))

	// bob answers with his own request while alice's is pending.
	_, err = h.SendFriendRequest(auth.WithUserID(ctx, "u2"), &api.SendFriendRequestRequest{ToUserID: "u1"})
	require.ErrorIs(t, err, social.ErrRequestIncoming)
	assert.Equal(t, connect.CodeAlreadyExists, connect.CodeOf(err))

	_, err = h.SendFriendRequest(auth.WithUserID(ctx, "u1"), &api.SendFriendRequestRequest{ToUserID: "u1"})
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = h.SendFriendRequest(auth.WithUserID(ctx, "u1"), &api.SendFriendRequestRequest{ToUserID: "u9"})
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	_, err = h.SendFriendRequest(auth.WithUserID(ctx, "u1"), &api.SendFriendRequestRequest{})
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}
