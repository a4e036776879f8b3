package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	errorsx "github.com/instill-ai/x/errors"
)

// Client generates embeddings with the Gemini API.
type Client struct {
	client         *genai.Client
	embeddingModel string
	dimensionality int32
}

// NewClient creates a new Gemini embedding client.
func NewClient(ctx context.Context, apiKey string, model string, dimensionality int32) (*Client, error) {
	if apiKey == "" {
		err := errorsx.ErrInvalidArgument
		return nil, errorsx.AddMessage(err, "AI client configuration is missing. Please contact your administrator.")
	}
	if model == "" {
		model = DefaultEmbeddingModel
	}
	if dimensionality == 0 {
		dimensionality = DefaultEmbeddingDimension
	}
	if !supportedDimensions[dimensionality] {
		return nil, errorsx.AddMessage(
			fmt.Errorf("%w: unsupported dimensionality %d", errorsx.ErrInvalidArgument, dimensionality),
			"Gemini embeddings only support 768, 1536, or 3072 dimensions.",
		)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errorsx.AddMessage(
			fmt.Errorf("failed to create Gemini client: %w", err),
			"Unable to connect to AI service. Please try again later.",
		)
	}

	return &Client{
		client:         client,
		embeddingModel: model,
		dimensionality: dimensionality,
	}, nil
}

// EmbedTexts embeds a batch of texts in one request.
func (c *Client) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	contents := make([]*genai.Content, len(texts))
	for i, txt := range texts {
		contents[i] = genai.NewContentFromText(txt, genai.RoleUser)
	}

	result, err := c.client.Models.EmbedContent(ctx, c.embeddingModel, contents, &genai.EmbedContentConfig{
		TaskType:             TaskTypeRetrievalDocument,
		OutputDimensionality: genai.Ptr(c.dimensionality),
	})
	if err != nil {
		return nil, errorsx.AddMessage(
			fmt.Errorf("gemini API call failed: %w", err),
			"Unable to generate embeddings. Please try again.",
		)
	}

	vectors := make([][]float32, 0, len(result.Embeddings))
	for _, emb := range result.Embeddings {
		if emb == nil {
			vectors = append(vectors, nil)
			continue
		}
		vectors = append(vectors, emb.Values)
	}

	return vectors, nil
}

// EmbedText embeds a single text.
func (c *Client) EmbedText(ctx context.Context, text string) ([]float32, error) {
	vectors, err := c.EmbedTexts(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vectors) != 1 || len(vectors[0]) == 0 {
		return nil, errorsx.AddMessage(
			fmt.Errorf("gemini returned %d embeddings for a single text", len(vectors)),
			"Unable to generate embeddings. Please try again.",
		)
	}
	return vectors[0], nil
}
