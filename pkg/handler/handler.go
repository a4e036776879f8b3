package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"github.com/instill-ai/knowledge-backend/pkg/logger"
	"github.com/instill-ai/knowledge-backend/pkg/types"
	"github.com/instill-ai/knowledge-backend/pkg/worker"

	kberrors "github.com/instill-ai/knowledge-backend/pkg/errors"
)

const (
	msgProcessed        = "Document processed successfully"
	msgDocumentNotFound = "Document not found"
)

// DocumentProcessor runs the ingestion pipeline on a document.
type DocumentProcessor interface {
	ProcessDocument(ctx context.Context, documentUID types.DocumentUIDType) (*worker.ProcessDocumentResult, error)
}

// Handler serves the HTTP trigger of the ingestion pipeline.
type Handler struct {
	processor DocumentProcessor
	// timeout bounds a single trigger invocation. Zero means no bound.
	timeout time.Duration
}

// NewHandler initiates a handler instance
func NewHandler(processor DocumentProcessor, timeout time.Duration) *Handler {
	return &Handler{
		processor: processor,
		timeout:   timeout,
	}
}

type processDocumentRequest struct {
	KnowledgeBaseID string `json:"knowledge_base_id"`
}

type processDocumentResponse struct {
	Message    string `json:"message"`
	DocumentID string `json:"document_id"`
	ChunkCount int    `json:"chunk_count"`
}

type errorResponse struct {
	Error      string `json:"error"`
	DocumentID string `json:"document_id,omitempty"`
}

// ProcessDocument runs the pipeline on the document named in the request
// body and reports the outcome.
func (h *Handler) ProcessDocument(c *gin.Context) {
	var req processDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}
	req.KnowledgeBaseID = strings.TrimSpace(req.KnowledgeBaseID)
	if req.KnowledgeBaseID == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "knowledge_base_id is required"})
		return
	}

	// An identifier that isn't a UUID can't resolve to a document.
	documentUID, err := uuid.FromString(req.KnowledgeBaseID)
	if err != nil {
		c.JSON(http.StatusNotFound, errorResponse{Error: msgDocumentNotFound})
		return
	}

	ctx := c.Request.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	res, err := h.processor.ProcessDocument(ctx, documentUID)
	if err != nil {
		_ = c.Error(err)

		status := statusFromError(err)
		resp := errorResponse{Error: kberrors.Message(err), DocumentID: req.KnowledgeBaseID}
		if status == http.StatusNotFound {
			resp = errorResponse{Error: msgDocumentNotFound}
		}
		if status == http.StatusInternalServerError {
			logger, _ := logger.GetZapLogger(ctx)
			logger.Error("Document processing request failed",
				zap.String("documentUID", req.KnowledgeBaseID),
				zap.Error(err),
			)
		}

		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, processDocumentResponse{
		Message:    msgProcessed,
		DocumentID: res.DocumentUID.String(),
		ChunkCount: res.ChunkCount,
	})
}

// Health reports that the server is up.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, kberrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, kberrors.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, kberrors.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, kberrors.ErrAlreadyProcessing):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
