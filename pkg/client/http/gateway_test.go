package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	qt "github.com/frankban/quicktest"
	errorsx "github.com/instill-ai/x/errors"

	"github.com/instill-ai/knowledge-backend/config"
)

func newTestGateway(c *qt.C, handler http.HandlerFunc) *GatewayClient {
	srv := httptest.NewServer(handler)
	c.Cleanup(srv.Close)

	cfg := config.EmbeddingConfig{}
	cfg.Gateway.Host = srv.URL + "/"
	cfg.Gateway.Token = "secret"

	return NewGatewayClient(cfg, zap.NewNop())
}

func TestGatewayClient_EmbedTexts(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()

	c.Run("ok", func(c *qt.C) {
		gw := newTestGateway(c, func(w http.ResponseWriter, r *http.Request) {
			c.Check(r.Method, qt.Equals, http.MethodPost)
			c.Check(r.URL.Path, qt.Equals, "/embed")
			c.Check(r.Header.Get("Authorization"), qt.Equals, "Bearer secret")

			var req embedBatchRequest
			c.Check(json.NewDecoder(r.Body).Decode(&req), qt.IsNil)
			c.Check(req.Texts, qt.DeepEquals, []string{"a", "b"})

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"embeddings": [[0.1, 0.2], [0.3, 0.4]]}`))
		})

		got, err := gw.EmbedTexts(ctx, []string{"a", "b"})
		c.Assert(err, qt.IsNil)
		c.Check(got, qt.DeepEquals, [][]float32{{0.1, 0.2}, {0.3, 0.4}})
	})

	c.Run("nok - error status is not retried", func(c *qt.C) {
		calls := 0
		gw := newTestGateway(c, func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error": "model overloaded"}`))
		})

		_, err := gw.EmbedTexts(ctx, []string{"a"})
		c.Assert(err, qt.IsNotNil)
		c.Check(errorsx.Message(err), qt.Equals, "Embedding service error: model overloaded")
		c.Check(calls, qt.Equals, 1)
	})

	c.Run("nok - empty vector", func(c *qt.C) {
		gw := newTestGateway(c, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"embeddings": [[], []]}`))
		})

		got, err := gw.EmbedTexts(ctx, []string{"a", "b"})
		c.Assert(err, qt.IsNotNil)
		c.Check(got, qt.IsNil)
		c.Check(errorsx.Message(err), qt.Equals, "Embedding service returned an invalid response")
	})
}

func TestGatewayClient_EmbedText(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()

	testCases := []struct {
		name    string
		body    string
		want    []float32
		wantErr bool
	}{
		{name: "single embedding", body: `{"embedding": [1, 2]}`, want: []float32{1, 2}},
		{name: "one-element batch", body: `{"embeddings": [[3, 4]]}`, want: []float32{3, 4}},
		{name: "empty response", body: `{}`, wantErr: true},
		{name: "empty vector", body: `{"embeddings": [[]]}`, wantErr: true},
	}

	for _, tc := range testCases {
		c.Run(tc.name, func(c *qt.C) {
			gw := newTestGateway(c, func(w http.ResponseWriter, r *http.Request) {
				var req embedSingleRequest
				c.Check(json.NewDecoder(r.Body).Decode(&req), qt.IsNil)
				c.Check(req.Text, qt.Equals, "hello")

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tc.body))
			})

			got, err := gw.EmbedText(ctx, "hello")
			if tc.wantErr {
				c.Check(err, qt.IsNotNil)
				return
			}
			c.Assert(err, qt.IsNil)
			c.Check(got, qt.DeepEquals, tc.want)
		})
	}
}
