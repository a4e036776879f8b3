package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/gojuno/minimock/v3"
	"go.uber.org/zap"

	qt "github.com/frankban/quicktest"

	"github.com/instill-ai/knowledge-backend/pkg/mock"
	"github.com/instill-ai/knowledge-backend/pkg/types"
	"github.com/instill-ai/knowledge-backend/pkg/worker"

	kberrors "github.com/instill-ai/knowledge-backend/pkg/errors"
)

func newRequest(method, body string, authorized bool) *http.Request {
	req := httptest.NewRequest(method, ProcessDocumentPath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.Header.Set("Authorization", "Bearer secret")
	}
	return req
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	r := NewRouter(h, RouterConfig{}, zap.NewNop())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_ProcessDocument(t *testing.T) {
	c := qt.New(t)
	uid := uuid.Must(uuid.NewV4())
	validBody := fmt.Sprintf(`{"knowledge_base_id":%q}`, uid.String())

	testCases := []struct {
		name       string
		req        *http.Request
		procErr    error
		wantStatus int
		wantBody   map[string]any
		wantCalls  int
	}{
		{
			name:       "ok",
			req:        newRequest(http.MethodPost, validBody, true),
			wantStatus: http.StatusOK,
			wantBody: map[string]any{
				"message":     "Document processed successfully",
				"document_id": uid.String(),
				"chunk_count": float64(2),
			},
			wantCalls: 1,
		},
		{
			name:       "nok - unauthenticated",
			req:        newRequest(http.MethodPost, validBody, false),
			wantStatus: http.StatusUnauthorized,
			wantBody:   map[string]any{"error": "Missing authorization header"},
		},
		{
			name:       "nok - malformed body",
			req:        newRequest(http.MethodPost, `{"knowledge_base_id":`, true),
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "Invalid request body"},
		},
		{
			name:       "nok - missing id",
			req:        newRequest(http.MethodPost, `{"title":"handbook"}`, true),
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "knowledge_base_id is required"},
		},
		{
			name:       "nok - id isn't a uuid",
			req:        newRequest(http.MethodPost, `{"knowledge_base_id":"handbook"}`, true),
			wantStatus: http.StatusNotFound,
			wantBody:   map[string]any{"error": "Document not found"},
		},
		{
			name:       "nok - unknown document",
			req:        newRequest(http.MethodPost, validBody, true),
			procErr:    kberrors.Messagef(kberrors.ErrNotFound, "Document not found", errors.New("record not found")),
			wantStatus: http.StatusNotFound,
			wantBody:   map[string]any{"error": "Document not found"},
			wantCalls:  1,
		},
		{
			name:       "nok - processing failure",
			req:        newRequest(http.MethodPost, validBody, true),
			procErr:    kberrors.Messagef(kberrors.ErrFetchFailed, "Document has no source location", nil),
			wantStatus: http.StatusInternalServerError,
			wantBody: map[string]any{
				"error":       "Document has no source location",
				"document_id": uid.String(),
			},
			wantCalls: 1,
		},
		{
			name:       "nok - already processing",
			req:        newRequest(http.MethodPost, validBody, true),
			procErr:    kberrors.ErrAlreadyProcessing,
			wantStatus: http.StatusConflict,
			wantBody: map[string]any{
				"error":       "Document is already being processed",
				"document_id": uid.String(),
			},
			wantCalls: 1,
		},
	}

	for _, tc := range testCases {
		c.Run(tc.name, func(c *qt.C) {
			mc := minimock.NewController(c)
			p := mock.NewDocumentProcessorMock(mc)
			if tc.wantCalls > 0 {
				var res *worker.ProcessDocumentResult
				if tc.procErr == nil {
					res = &worker.ProcessDocumentResult{DocumentUID: uid, ChunkCount: 2}
				}
				p.ProcessDocumentMock.ExpectDocumentUIDParam2(uid).Return(res, tc.procErr)
			}

			rec := serve(NewHandler(p, 0), tc.req)

			c.Check(rec.Code, qt.Equals, tc.wantStatus)
			c.Check(rec.Body.String(), qt.JSONEquals, tc.wantBody)
			c.Check(p.AfterProcessDocumentCounter(), qt.Equals, uint64(tc.wantCalls))
		})
	}
}

func TestHandler_Preflight(t *testing.T) {
	c := qt.New(t)
	h := NewHandler(mock.NewDocumentProcessorMock(minimock.NewController(c)), 0)

	c.Run("cors request", func(c *qt.C) {
		req := httptest.NewRequest(http.MethodOptions, ProcessDocumentPath, nil)
		req.Header.Set("Origin", "https://app.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "authorization, content-type")

		rec := serve(h, req)
		c.Check(rec.Code, qt.Equals, http.StatusNoContent)
		c.Check(rec.Body.Len(), qt.Equals, 0)
		c.Check(rec.Header().Get("Access-Control-Allow-Origin"), qt.Equals, "*")
	})

	c.Run("without origin", func(c *qt.C) {
		rec := serve(h, httptest.NewRequest(http.MethodOptions, ProcessDocumentPath, nil))
		c.Check(rec.Code, qt.Equals, http.StatusNoContent)
		c.Check(rec.Body.Len(), qt.Equals, 0)
	})
}

func TestHandler_Timeout(t *testing.T) {
	c := qt.New(t)
	uid := uuid.Must(uuid.NewV4())
	body := fmt.Sprintf(`{"knowledge_base_id":%q}`, uid.String())

	c.Run("with timeout", func(c *qt.C) {
		p := mock.NewDocumentProcessorMock(minimock.NewController(c))
		p.ProcessDocumentMock.Set(func(ctx context.Context, documentUID types.DocumentUIDType) (*worker.ProcessDocumentResult, error) {
			_, ok := ctx.Deadline()
			c.Check(ok, qt.IsTrue)
			return &worker.ProcessDocumentResult{DocumentUID: documentUID}, nil
		})

		rec := serve(NewHandler(p, time.Minute), newRequest(http.MethodPost, body, true))
		c.Check(rec.Code, qt.Equals, http.StatusOK)
	})

	c.Run("without timeout", func(c *qt.C) {
		p := mock.NewDocumentProcessorMock(minimock.NewController(c))
		p.ProcessDocumentMock.Set(func(ctx context.Context, documentUID types.DocumentUIDType) (*worker.ProcessDocumentResult, error) {
			_, ok := ctx.Deadline()
			c.Check(ok, qt.IsFalse)
			return &worker.ProcessDocumentResult{DocumentUID: documentUID}, nil
		})

		rec := serve(NewHandler(p, 0), newRequest(http.MethodPost, body, true))
		c.Check(rec.Code, qt.Equals, http.StatusOK)
	})
}

func TestHandler_Health(t *testing.T) {
	c := qt.New(t)

	p := mock.NewDocumentProcessorMock(minimock.NewController(c))
	rec := serve(NewHandler(p, 0), httptest.NewRequest(http.MethodGet, "/health", nil))
	c.Check(rec.Code, qt.Equals, http.StatusOK)
	c.Check(rec.Body.String(), qt.JSONEquals, map[string]any{"status": "ok"})
}

func TestCorsConfig(t *testing.T) {
	c := qt.New(t)

	cfg := corsConfig(nil)
	c.Check(cfg.AllowAllOrigins, qt.IsTrue)

	cfg = corsConfig([]string{"*"})
	c.Check(cfg.AllowAllOrigins, qt.IsTrue)
	c.Check(cfg.AllowOrigins, qt.HasLen, 0)

	cfg = corsConfig([]string{"https://app.example.com"})
	c.Check(cfg.AllowAllOrigins, qt.IsFalse)
	c.Check(cfg.AllowOrigins, qt.DeepEquals, []string{"https://app.example.com"})
	c.Check(cfg.AllowCredentials, qt.IsTrue)
}
