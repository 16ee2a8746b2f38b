// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package acceptfriendrequest

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

func TestAcceptFriendRequest(t *testing.T) {
	client := firestoretest.NewClient(t)
	ctx := t.Context()

	for uid, name := range map[string]string{"u1": "alice", "u2": "bob"} {
		_, err := client.Collection(peakplatesdb.CollectionUsers).Doc(uid).Set(ctx, &peakplatesdb.User{ID: uid, Username: name})
		require.NoError(t, err)
	}

	graph := social.NewGraph(client)
	_, err := graph.SendRequest(ctx, "u1", "u2")
	require.NoError(t, err)
	reqID := peakplatesdb.FriendRequestID("u1", "u2")

	h := NewHandler(graph)

	_, err = h.AcceptFriendRequest(auth.WithUserID(ctx, "u1"), &api.RespondFriendRequestRequest{RequestID: reqID})
	assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))

	_, err = h.AcceptFriendRequest(auth.WithUserID(ctx, "u2"), &api.RespondFriendRequestRequest{RequestID: reqID})
	require.NoError(t, err)

	_, err = h.AcceptFriendRequest(auth.WithUserID(ctx, "u2"), &api.RespondFriendRequestRequest{RequestID: reqID})
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))

	_, err = h.AcceptFriendRequest(auth.WithUserID(ctx, "u2"), &api.RespondFriendRequestRequest{RequestID: "missing"})
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	friends, err := graph.Friends(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []social.Friend{{UserID: "u2", Username: "bob"}}, friends)
}
