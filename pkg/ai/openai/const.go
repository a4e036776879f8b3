package openai

// Constants for the OpenAI embedding client
const (
	// DefaultEmbeddingModel produces 1536-dimensional embeddings.
	DefaultEmbeddingModel = "text-embedding-3-small"

	// DefaultEmbeddingDimension is the vector size of DefaultEmbeddingModel.
	DefaultEmbeddingDimension = 1536
)
