// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package firestoretest connects tests to the Firestore emulator.
package firestoretest

import (
	"os"
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// NewClient returns a client for a fresh emulator project, so tests do not
// see each other's documents. The test is skipped when no emulator is
// configured.
func NewClient(t *testing.T) *firestore.Client {
	t.Helper()

	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := firestore.NewClient(t.Context(), "peakplates-"+uuid.NewString()[:8])
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}

// NewUnreachableClient returns a client whose every call fails because
// nothing listens on its endpoint. It does not need the emulator.
func NewUnreachableClient(t *testing.T) *firestore.Client {
	t.Helper()

	t.Setenv("FIRESTORE_EMULATOR_HOST", "")
	client, err := firestore.NewClient(t.Context(), "peakplates-unreachable",
		option.WithEndpoint("127.0.0.1:1"),
		option.WithoutAuthentication(),
		option.WithGRPCDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}
