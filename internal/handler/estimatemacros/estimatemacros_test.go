// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package estimatemacros

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/curioswitch/peakplates/internal/api"
	"github.com/curioswitch/peakplates/internal/firestoretest"
	"github.com/curioswitch/peakplates/internal/peakplatesdb"
)

func textResponse(texts ...string) *genai.GenerateContentResponse {
	parts := make([]*genai.Part, len(texts))
	for i, text := range texts {
		parts[i] = genai.NewPartFromText(text)
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: genai.NewContentFromParts(parts, genai.RoleModel)},
		},
	}
}

func TestParseMacros(t *testing.T) {
	tests := []struct {
		name string
		res  *genai.GenerateContentResponse
		want peakplatesdb.Macros
		err  bool
	}{
		{
			name: "valid",
			res:  textResponse(`{"calories":650,"protein":32,"carbs":70,"fats":24}`),
			want: peakplatesdb.Macros{Calories: 650, Protein: 32, Carbs: 70, Fats: 24},
		},
		{
			name: "no candidates",
			res:  &genai.GenerateContentResponse{},
			err:  true,
		},
		{
			name: "multiple parts",
			res:  textResponse(`{}`, `{}`),
			err:  true,
		},
		{
			name: "not json",
			res:  textResponse("about 650 calories"),
			err:  true,
		},
		{
			name: "negative",
			res:  textResponse(`{"calories":-1}`),
			err:  true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseMacros(tc.res)
			if tc.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

type fakeGenerator struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
}

func (g *fakeGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	g.model = model
	g.contents = contents
	g.config = config
	return textResponse(`{"calories":650,"protein":32,"carbs":70,"fats":24}`), nil
}

func TestEstimateMacros(t *testing.T) {
	client := firestoretest.NewClient(t)
	ctx := t.Context()

	_, err := client.Collection(peakplatesdb.CollectionRecipes).Doc("r1").Set(ctx, &peakplatesdb.Recipe{
		ID:          "r1",
		UserID:      "u1",
		Title:       "Pasta Bake",
		Ingredients: "200g pasta",
	})
	require.NoError(t, err)

	gen := &fakeGenerator{}
	h := NewHandler(gen, client, "gemini-test")

	res, err := h.EstimateMacros(ctx, &api.EstimateMacrosRequest{RecipeID: "r1"})
	require.NoError(t, err)
	assert.Equal(t, peakplatesdb.Macros{Calories: 650, Protein: 32, Carbs: 70, Fats: 24}, res.Macros)
	assert.Equal(t, "gemini-test", gen.model)
	assert.Equal(t, peakplatesdb.MacrosSchema, gen.config.ResponseSchema)
	require.Len(t, gen.contents, 1)
	assert.Contains(t, gen.contents[0].Parts[0].Text, "200g pasta")

	_, err = h.EstimateMacros(ctx, &api.EstimateMacrosRequest{RecipeID: "missing"})
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}
