// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package addrecipe

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"connectrpc.com/connect"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/curioswitch/peakplates/internal/api"
	"github.com/curioswitch/peakplates/internal/auth"
	"github.com/curioswitch/peakplates/internal/image"
	"github.com/curioswitch/peakplates/internal/peakplatesdb"
	"github.com/curioswitch/peakplates/internal/util"
)

var (
	errMissingTitle       = errors.New("title is required")
	errMissingDescription = errors.New("description is required")
	errUnknownTag         = errors.New("unknown tag")
	errUserNotFound       = errors.New("user not found")
)

// ImageStore stores uploaded recipe images.
type ImageStore interface {
	Store(ctx context.Context, dir string, data []byte) (image.Stored, error)
}

func NewHandler(store *firestore.Client, images ImageStore) *Handler {
	return &Handler{
		store:  store,
		images: images,
		now:    time.Now,
	}
}

type Handler struct {
	store  *firestore.Client
	images ImageStore
	now    func() time.Time
}

func (h *Handler) AddRecipe(ctx context.Context, req *api.AddRecipeRequest) (*api.AddRecipeResponse, error) {
	uid := auth.UserID(ctx)

	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	tags, err := validate(title, description, req.Tags)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	var imageData []byte
	if req.ImageDataURL != "" {
		_, b, err := util.ParseImageDataURL(req.ImageDataURL)
		if err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		imageData = b
	}

	userDoc, err := h.store.Collection(peakplatesdb.CollectionUsers).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, connect.NewError(connect.CodeFailedPrecondition, errUserNotFound)
		}
		return nil, fmt.Errorf("addrecipe: getting user from firestore: %w", err)
	}
	user, err := peakplatesdb.ParseUser(userDoc)
	if err != nil {
		return nil, fmt.Errorf("addrecipe: %w", err)
	}

	doc := h.store.Collection(peakplatesdb.CollectionRecipes).NewDoc()
	recipe := peakplatesdb.Recipe{
		ID:              doc.ID,
		UserID:          uid,
		Username:        user.Username,
		Title:           title,
		Description:     description,
		Ingredients:     strings.TrimSpace(req.Ingredients),
		Steps:           strings.TrimSpace(req.Steps),
		Tags:            tags,
		CreatedAt:       h.now(),
		LikedByUsers:    []string{},
		FavoriteByUsers: []string{},
		SharedWith:      []string{},
	}

	if len(imageData) > 0 {
		stored, err := h.images.Store(ctx, "recipes/"+doc.ID, imageData)
		if err != nil {
			return nil, fmt.Errorf("addrecipe: storing image: %w", err)
		}
		recipe.ImageData = stored.Data
		recipe.ImageURL = stored.URL
	}

	if _, err := doc.Create(ctx, &recipe); err != nil {
		return nil, fmt.Errorf("addrecipe: creating recipe in firestore: %w", err)
	}

	return &api.AddRecipeResponse{
		RecipeID: doc.ID,
	}, nil
}

// validate checks the required fields and returns the deduplicated tags.
func validate(title string, description string, tags []string) ([]string, error) {
	if title == "" {
		return nil, errMissingTitle
	}
	if description == "" {
		return nil, errMissingDescription
	}
	res := make([]string, 0, len(tags))
	for _, tag := range tags {
		if !peakplatesdb.IsAvailableTag(tag) {
			return nil, fmt.Errorf("%w: %q", errUnknownTag, tag)
		}
		if !slices.Contains(res, tag) {
			res = append(res, tag)
		}
	}
	return res, nil
}
