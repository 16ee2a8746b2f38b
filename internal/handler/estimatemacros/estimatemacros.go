// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package estimatemacros

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"connectrpc.com/connect"
	"google.golang.org/genai"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/curioswitch/peakplates/internal/api"
	"github.com/curioswitch/peakplates/internal/llm"
	"github.com/curioswitch/peakplates/internal/peakplatesdb"
)

var (
	errMissingID      = errors.New("recipe id is required")
	errRecipeNotFound = errors.New("recipe not found")
)

// Generator generates content with an LLM. It is satisfied by genai.Client.Models.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

func NewHandler(genAI Generator, store *firestore.Client, model string) *Handler {
	return &Handler{
		genAI: genAI,
		store: store,
		model: model,
	}
}

type Handler struct {
	genAI Generator
	store *firestore.Client
	model string
}

func (h *Handler) EstimateMacros(ctx context.Context, req *api.EstimateMacrosRequest) (*api.EstimateMacrosResponse, error) {
	if req.RecipeID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errMissingID)
	}

	doc, err := h.store.Collection(peakplatesdb.CollectionRecipes).Doc(req.RecipeID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, connect.NewError(connect.CodeNotFound, errRecipeNotFound)
		}
		return nil, fmt.Errorf("estimatemacros: getting recipe from firestore: %w", err)
	}
	recipe, err := peakplatesdb.ParseRecipe(doc)
	if err != nil {
		return nil, fmt.Errorf("estimatemacros: %w", err)
	}

	res, err := h.genAI.GenerateContent(ctx, h.model, []*genai.Content{
		genai.NewContentFromText(llm.RecipeContent(recipe), genai.RoleUser),
	}, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(llm.EstimateMacrosPrompt(), genai.RoleModel),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    peakplatesdb.MacrosSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("estimatemacros: generating content: %w", err)
	}

	macros, err := parseMacros(res)
	if err != nil {
		return nil, err
	}
	return &api.EstimateMacrosResponse{
		Macros: macros,
	}, nil
}

func parseMacros(res *genai.GenerateContentResponse) (peakplatesdb.Macros, error) {
	if res == nil || len(res.Candidates) != 1 || res.Candidates[0].Content == nil ||
		len(res.Candidates[0].Content.Parts) != 1 || res.Candidates[0].Content.Parts[0].Text == "" {
		return peakplatesdb.Macros{}, fmt.Errorf("estimatemacros: unexpected response from generate ai: %v", res)
	}
	var macros peakplatesdb.Macros
	if err := json.Unmarshal([]byte(res.Candidates[0].Content.Parts[0].Text), &macros); err != nil {
		return peakplatesdb.Macros{}, fmt.Errorf("estimatemacros: unmarshalling macros: %w", err)
	}
	if macros.Negative() {
		return peakplatesdb.Macros{}, fmt.Errorf("estimatemacros: negative estimate %+v", macros)
	}
	return macros, nil
}
