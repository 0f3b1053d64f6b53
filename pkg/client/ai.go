package client

import (
	"context"
	"net/http"
)

// GenerateContent asks the AI layer for post copy built around the prompt.
func (g *Gateway) GenerateContent(ctx context.Context, input GenerateContentInput) (*GeneratedContent, error) {
	var out GeneratedContent
	if err := g.do(ctx, http.MethodPost, "/api/ai/generate", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateImage asks the AI layer for an image URL for the prompt.
func (g *Gateway) GenerateImage(ctx context.Context, input GenerateImageInput) (*GeneratedImage, error) {
	var out GeneratedImage
	if err := g.do(ctx, http.MethodPost, "/api/ai/generate-image", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EnhanceContent rewrites an existing draft, optionally steered by
// instructions.
func (g *Gateway) EnhanceContent(ctx context.Context, input EnhanceContentInput) (*EnhancedContent, error) {
	var out EnhancedContent
	if err := g.do(ctx, http.MethodPost, "/api/ai/enhance", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
