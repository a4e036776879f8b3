package gemini

// Constants for the Gemini embedding client
const (
	// DefaultEmbeddingModel is the Gemini embedding model.
	DefaultEmbeddingModel = "gemini-embedding-001"

	// DefaultEmbeddingDimension is the requested vector size when none is
	// configured.
	DefaultEmbeddingDimension int32 = 1536

	// TaskTypeRetrievalDocument optimizes embeddings for stored chunks.
	TaskTypeRetrievalDocument = "RETRIEVAL_DOCUMENT"
)

var supportedDimensions = map[int32]bool{768: true, 1536: true, 3072: true}
