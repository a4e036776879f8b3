package httpclient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	errorsx "github.com/instill-ai/x/errors"

	"github.com/instill-ai/knowledge-backend/config"
)

const (
	defaultTimeout = time.Second * 60
	embedPath      = "/embed"
)

// GatewayClient calls the embedding endpoint of the AI gateway. Requests are
// attempted once: retrying is the caller's decision.
type GatewayClient struct {
	*resty.Client
}

// NewGatewayClient returns an initialized AI gateway HTTP client.
func NewGatewayClient(cfg config.EmbeddingConfig, logger *zap.Logger) *GatewayClient {
	timeout := cfg.Gateway.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	r := resty.New().
		SetLogger(logger.Sugar()).
		SetBaseURL(strings.TrimSuffix(cfg.Gateway.Host, "/")).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetRetryCount(0)

	if cfg.Gateway.Token != "" {
		r.SetAuthToken(cfg.Gateway.Token)
	}

	return &GatewayClient{Client: r}
}

type embedBatchRequest struct {
	Texts []string `json:"texts"`
}

type embedSingleRequest struct {
	Text string `json:"text"`
}

type embedResponse struct {
	Embeddings [][]float32 `json:"embeddings"`
	Embedding  []float32   `json:"embedding"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// EmbedTexts calls POST /embed with a batch of texts. The vectors are
// returned in the order of the response, which must match the input order.
func (c *GatewayClient) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	var resp embedResponse
	if err := c.post(ctx, embedBatchRequest{Texts: texts}, &resp); err != nil {
		return nil, err
	}

	for i, v := range resp.Embeddings {
		if len(v) == 0 {
			return nil, errorsx.AddMessage(
				fmt.Errorf("gateway returned an empty embedding at position %d", i),
				"Embedding service returned an invalid response",
			)
		}
	}

	return resp.Embeddings, nil
}

// EmbedText calls POST /embed with a single text.
func (c *GatewayClient) EmbedText(ctx context.Context, text string) ([]float32, error) {
	var resp embedResponse
	if err := c.post(ctx, embedSingleRequest{Text: text}, &resp); err != nil {
		return nil, err
	}

	switch {
	case len(resp.Embedding) > 0:
		return resp.Embedding, nil
	case len(resp.Embeddings) == 1 && len(resp.Embeddings[0]) > 0:
		return resp.Embeddings[0], nil
	}

	return nil, errorsx.AddMessage(
		fmt.Errorf("gateway returned %d embeddings for a single text", len(resp.Embeddings)),
		"Embedding service returned an invalid response",
	)
}

func (c *GatewayClient) post(ctx context.Context, body any, result *embedResponse) error {
	var errResp errorResponse

	r := c.R().SetContext(ctx).SetBody(body).SetResult(result).SetError(&errResp)
	resp, err := r.Post(embedPath)
	if err != nil {
		return errorsx.AddMessage(
			fmt.Errorf("couldn't connect with AI gateway: %w", err),
			"Embedding service is unreachable",
		)
	}

	if resp.IsError() {
		msg := errResp.Error
		if msg == "" {
			msg = errResp.Message
		}
		if msg == "" {
			msg = resp.Status()
		}
		return errorsx.AddMessage(
			fmt.Errorf("AI gateway responded with status %d: %s", resp.StatusCode(), msg),
			"Embedding service error: "+msg,
		)
	}

	return nil
}
