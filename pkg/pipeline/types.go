package pipeline

// TextChunk is a chunk of extracted document text.
type TextChunk struct {
	// Index is the zero-based position of the chunk in the document.
	Index  int
	Text   string
	Tokens int
}
