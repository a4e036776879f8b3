package constant

// Pipeline defaults. The effective values come from the pipeline section of
// the configuration.
const (
	// ChunkSize is the target maximum length of a chunk, in characters.
	ChunkSize = 2000
	// ChunkOverlap is the number of trailing characters of a finalized chunk
	// that seed the next one.
	ChunkOverlap = 200
	// EmbedBatchSize is the number of chunks sent in one embedding request.
	EmbedBatchSize = 10
	// InsertBatchSize is the number of chunk rows written per insert.
	InsertBatchSize = 50
)

// HeaderAuthorization is the header whose presence gates the trigger.
const HeaderAuthorization = "Authorization"

// MetadataErrorKey is the document metadata key holding the failure reason.
const MetadataErrorKey = "error"

// Content types the extractor handles explicitly.
const (
	ContentTypePlain       = "text/plain"
	ContentTypeMarkdown    = "text/markdown"
	ContentTypeXMarkdown   = "text/x-markdown"
	ContentTypeOctetStream = "application/octet-stream"
)

// MaxErrorMessageLength bounds the failure reason stored on a document.
const MaxErrorMessageLength = 1024
