package ai

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	errorsx "github.com/instill-ai/x/errors"

	"github.com/instill-ai/knowledge-backend/config"
	"github.com/instill-ai/knowledge-backend/pkg/ai/gemini"
	"github.com/instill-ai/knowledge-backend/pkg/ai/openai"

	httpclient "github.com/instill-ai/knowledge-backend/pkg/client/http"
)

// Providers of the embedding service.
const (
	ProviderGateway = "gateway"
	ProviderOpenAI  = "openai"
	ProviderGemini  = "gemini"
)

// Embedder generates vector embeddings for text. Implementations make a
// single attempt per call.
type Embedder interface {
	// EmbedTexts embeds a batch of texts. The result is expected to hold one
	// vector per text, in input order; callers must verify the count.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
	// EmbedText embeds a single text.
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

// NewEmbedder returns the Embedder selected by the configuration.
func NewEmbedder(ctx context.Context, cfg config.EmbeddingConfig, logger *zap.Logger) (Embedder, error) {
	switch cfg.Provider {
	case ProviderGateway, "":
		if cfg.Gateway.Host == "" {
			return nil, errorsx.AddMessage(
				fmt.Errorf("%w: missing AI gateway host", errorsx.ErrInvalidArgument),
				"Embedding service is not configured.",
			)
		}
		return httpclient.NewGatewayClient(cfg, logger), nil
	case ProviderOpenAI:
		return openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	case ProviderGemini:
		return gemini.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Dimensions)
	}

	return nil, fmt.Errorf("%w: unknown embedding provider %q", errorsx.ErrInvalidArgument, cfg.Provider)
}
