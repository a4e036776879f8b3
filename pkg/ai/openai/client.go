package openai

import (
	"context"
	"fmt"
	"sort"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	errorsx "github.com/instill-ai/x/errors"
)

// Client generates embeddings with the OpenAI API.
type Client struct {
	client         *openai.Client
	embeddingModel string
}

// NewClient creates a new OpenAI embedding client. The SDK's automatic
// retries are disabled.
func NewClient(apiKey string, model string, opts ...option.RequestOption) (*Client, error) {
	if apiKey == "" {
		err := errorsx.ErrInvalidArgument
		return nil, errorsx.AddMessage(err, "AI client configuration is missing. Please contact your administrator.")
	}
	if model == "" {
		model = DefaultEmbeddingModel
	}

	opts = append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)
	client := openai.NewClient(opts...)

	return &Client{
		client:         &client,
		embeddingModel: model,
	}, nil
}

// EmbedTexts embeds a batch of texts in one request.
func (c *Client) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	resp, err := c.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: texts,
		},
		Model: c.embeddingModel,
	})
	if err != nil {
		return nil, errorsx.AddMessage(
			fmt.Errorf("openai API call failed: %w", err),
			"Unable to generate embeddings. Please try again.",
		)
	}

	data := resp.Data
	sort.SliceStable(data, func(i, j int) bool { return data[i].Index < data[j].Index })

	vectors := make([][]float32, len(data))
	for i, emb := range data {
		vectors[i] = toFloat32(emb.Embedding)
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
			fmt.Errorf("openai returned %d embeddings for a single text", len(vectors)),
			"Unable to generate embeddings. Please try again.",
		)
	}
	return vectors[0], nil
}

func toFloat32(v []float64) []float32 {
	out := make([]float32, len(v))
	for i, val := range v {
		out[i] = float32(val)
	}
	return out
}
