// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package deleterecipe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cloud.google.com/go/firestore"
	"connectrpc.com/connect"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/curioswitch/peakplates/internal/api"
	"github.com/curioswitch/peakplates/internal/auth"
	"github.com/curioswitch/peakplates/internal/peakplatesdb"
)

var (
	errMissingID      = errors.New("recipe id is required")
	errRecipeNotFound = errors.New("recipe not found")
	errNotOwner       = errors.New("only the author can delete a recipe")
)

// FileDeleter deletes files referenced by URL.
type FileDeleter interface {
	DeleteURL(ctx context.Context, url string) error
}

func NewHandler(store *firestore.Client, files FileDeleter) *Handler {
	return &Handler{
		store: store,
		files: files,
	}
}

type Handler struct {
	store *firestore.Client
	files FileDeleter
}

func (h *Handler) DeleteRecipe(ctx context.Context, req *api.DeleteRecipeRequest) (*api.DeleteRecipeResponse, error) {
	if req.RecipeID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errMissingID)
	}

	ref := h.store.Collection(peakplatesdb.CollectionRecipes).Doc(req.RecipeID)
	doc, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, connect.NewError(connect.CodeNotFound, errRecipeNotFound)
		}
		return nil, fmt.Errorf("deleterecipe: getting recipe from firestore: %w", err)
	}
	recipe, err := peakplatesdb.ParseRecipe(doc)
	if err != nil {
		return nil, fmt.Errorf("deleterecipe: %w", err)
	}
	if recipe.UserID != auth.UserID(ctx) {
		return nil, connect.NewError(connect.CodePermissionDenied, errNotOwner)
	}

	shared, err := h.store.Collection(peakplatesdb.CollectionSharedRecipes).
		Where("recipeId", "==", req.RecipeID).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("deleterecipe: querying shared records: %w", err)
	}

	bw := h.store.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(shared)+1)
	for _, r := range append([]*firestore.DocumentRef{ref}, refs(shared)...) {
		job, err := bw.Delete(r)
		if err != nil {
			bw.End()
			return nil, fmt.Errorf("deleterecipe: enqueueing delete: %w", err)
		}
		jobs = append(jobs, job)
	}
	bw.End()
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return nil, fmt.Errorf("deleterecipe: deleting documents: %w", err)
		}
	}

	if recipe.ImageURL != "" {
		if err := h.files.DeleteURL(ctx, recipe.ImageURL); err != nil {
			slog.WarnContext(ctx, "deleterecipe: deleting image", "url", recipe.ImageURL, "error", err)
		}
	}

	return &api.DeleteRecipeResponse{}, nil
}

func refs(docs []*firestore.DocumentSnapshot) []*firestore.DocumentRef {
	res := make([]*firestore.DocumentRef, len(docs))
	for i, doc := range docs {
		res[i] = doc.Ref
	}
	return res
}
