package gemini

import (
	"context"
	"testing"

	qt "github.com/frankban/quicktest"
	errorsx "github.com/instill-ai/x/errors"
)

func TestNewClient(t *testing.T) {
	c := qt.New(t)

	c.Run("missing API key", func(c *qt.C) {
		client, err := NewClient(context.Background(), "", "", 0)
		c.Check(client, qt.IsNil)
		c.Check(errorsx.Message(err), qt.Contains, "AI client configuration is missing")
	})

	c.Run("unsupported dimensionality", func(c *qt.C) {
		client, err := NewClient(context.Background(), "key", "", 512)
		c.Check(client, qt.IsNil)
		c.Check(errorsx.Message(err), qt.Contains, "768, 1536, or 3072")
	})

	c.Run("defaults", func(c *qt.C) {
		client, err := NewClient(context.Background(), "key", "", 0)
		c.Assert(err, qt.IsNil)
		c.Check(client.embeddingModel, qt.Equals, DefaultEmbeddingModel)
		c.Check(client.dimensionality, qt.Equals, DefaultEmbeddingDimension)
	})
}
