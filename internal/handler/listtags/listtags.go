// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package listtags

import (
	"context"
	"slices"

	"github.com/curioswitch/peakplates/internal/api"
	"github.com/curioswitch/peakplates/internal/peakplatesdb"
)

func NewHandler() *Handler {
	return &Handler{}
}

type Handler struct{}

func (h *Handler) ListTags(_ context.Context, _ *api.ListTagsRequest) (*api.ListTagsResponse, error) {
	return &api.ListTagsResponse{
		Tags: slices.Clone(peakplatesdb.AvailableTags),
	}, nil
}
