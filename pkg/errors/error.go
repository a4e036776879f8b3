// Package errors contains the domain errors of the ingestion pipeline. Every
// layer wraps one of these so the HTTP entrypoint can turn a failure into a
// status code with errors.Is, and the pipeline can store a readable message on
// the failed document.
package errors

import (
	"fmt"

	errorsx "github.com/instill-ai/x/errors"
)

var (
	// ErrNotFound is used when the document record doesn't exist.
	ErrNotFound = errorsx.ErrNotFound
	// ErrInvalidArgument is used when a request is malformed.
	ErrInvalidArgument = errorsx.ErrInvalidArgument
	// ErrUnauthenticated is used when no credentials are presented.
	ErrUnauthenticated = errorsx.ErrUnauthenticated

	// ErrFetchFailed is used when the document binary can't be downloaded.
	ErrFetchFailed = fmt.Errorf("fetch failed")
	// ErrNoExtractableText is used when extraction yields an empty or
	// whitespace-only string.
	ErrNoExtractableText = errorsx.AddMessage(
		fmt.Errorf("no text content could be extracted from document"),
		"No text content could be extracted from document",
	)
	// ErrEmbeddingFailed is used when the embedding service fails on an
	// individual request or returns an inconsistent response.
	ErrEmbeddingFailed = fmt.Errorf("embedding failed")
	// ErrPersistFailed is used when writing chunk records fails.
	ErrPersistFailed = fmt.Errorf("persist failed")
	// ErrInternal is used for any other unexpected failure.
	ErrInternal = fmt.Errorf("internal error")
	// ErrAlreadyProcessing is used when another run holds the document lock.
	ErrAlreadyProcessing = errorsx.AddMessage(
		fmt.Errorf("document is already being processed"),
		"Document is already being processed",
	)
)

// Messagef wraps a domain error with context and attaches the end-user
// message that is stored on the failed document. Only kind is kept in the
// error chain, so msg is the single message carried by the result.
func Messagef(kind error, msg string, cause error) error {
	if cause == nil {
		return errorsx.AddMessage(kind, msg)
	}
	return errorsx.AddMessage(fmt.Errorf("%w: %v", kind, cause), msg)
}

// Message returns the end-user message of err, falling back to its text.
func Message(err error) string {
	return errorsx.MessageOrErr(err)
}
