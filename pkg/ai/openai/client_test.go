package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openai/openai-go/v3/option"

	qt "github.com/frankban/quicktest"
	errorsx "github.com/instill-ai/x/errors"
)

func TestNewClient(t *testing.T) {
	c := qt.New(t)

	client, err := NewClient("", "")
	c.Check(client, qt.IsNil)
	c.Check(errorsx.Message(err), qt.Contains, "AI client configuration is missing")
}

func TestClient_EmbedTexts(t *testing.T) {
	c := qt.New(t)

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		c.Check(r.URL.Path, qt.Equals, "/embeddings")

		var req struct {
			Input []string `json:"input"`
			Model string   `json:"model"`
		}
		c.Check(json.NewDecoder(r.Body).Decode(&req), qt.IsNil)
		c.Check(req.Model, qt.Equals, DefaultEmbeddingModel)

		if len(req.Input) > 1 {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"object": "list",
				"model": "text-embedding-3-small",
				"data": [
					{"object": "embedding", "index": 1, "embedding": [0.5, 0.25]},
					{"object": "embedding", "index": 0, "embedding": [1, 2]}
				],
				"usage": {"prompt_tokens": 2, "total_tokens": 2}
			}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": {"message": "boom", "type": "server_error"}}`))
	}))
	c.Cleanup(srv.Close)

	client, err := NewClient("test-key", "", option.WithBaseURL(srv.URL+"/"))
	c.Assert(err, qt.IsNil)

	c.Run("ok - vectors follow the input order", func(c *qt.C) {
		got, err := client.EmbedTexts(context.Background(), []string{"a", "b"})
		c.Assert(err, qt.IsNil)
		c.Check(got, qt.DeepEquals, [][]float32{{1, 2}, {0.5, 0.25}})
	})

	c.Run("nok - server error is not retried", func(c *qt.C) {
		calls = 0
		_, err := client.EmbedText(context.Background(), "a")
		c.Check(err, qt.IsNotNil)
		c.Check(calls, qt.Equals, 1)
	})
}
