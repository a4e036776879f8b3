package errors

import (
	"errors"
	"fmt"
	"testing"

	qt "github.com/frankban/quicktest"
	errorsx "github.com/instill-ai/x/errors"
)

func TestMessagef(t *testing.T) {
	c := qt.New(t)

	c.Run("without cause", func(c *qt.C) {
		err := Messagef(ErrFetchFailed, "Document has no source location", nil)
		c.Check(errors.Is(err, ErrFetchFailed), qt.IsTrue)
		c.Check(Message(err), qt.Equals, "Document has no source location")
	})

	c.Run("cause message isn't repeated", func(c *qt.C) {
		cause := fmt.Errorf("item 3: %w", errorsx.AddMessage(errors.New("503"), "Embedding service error: overloaded"))
		err := Messagef(ErrEmbeddingFailed, "Failed to generate embeddings: "+Message(cause), cause)

		c.Check(errors.Is(err, ErrEmbeddingFailed), qt.IsTrue)
		c.Check(errors.Is(err, ErrPersistFailed), qt.IsFalse)
		c.Check(Message(err), qt.Equals, "Failed to generate embeddings: Embedding service error: overloaded")
		c.Check(err.Error(), qt.Contains, "item 3: 503")
	})

	c.Run("not found keeps its kind", func(c *qt.C) {
		err := Messagef(ErrNotFound, "Document not found", fmt.Errorf("document x: %w", errorsx.ErrNotFound))
		c.Check(errors.Is(err, errorsx.ErrNotFound), qt.IsTrue)
	})
}

func TestMessage(t *testing.T) {
	c := qt.New(t)

	c.Check(Message(ErrNoExtractableText), qt.Equals, "No text content could be extracted from document")
	c.Check(Message(ErrAlreadyProcessing), qt.Equals, "Document is already being processed")
	c.Check(Message(errors.New("plain failure")), qt.Equals, "plain failure")
}
