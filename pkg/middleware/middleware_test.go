package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	qt "github.com/frankban/quicktest"
)

func newEngine(logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Trace(), AccessLog(logger))
	r.GET("/ok", RequireAuthorization(), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
	return r
}

func TestRequireAuthorization(t *testing.T) {
	c := qt.New(t)
	r := newEngine(zap.NewNop())

	testCases := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing", want: http.StatusUnauthorized},
		{name: "blank", header: "   ", want: http.StatusUnauthorized},
		{name: "present", header: "Bearer token", want: http.StatusOK},
	}

	for _, tc := range testCases {
		c.Run(tc.name, func(c *qt.C) {
			req := httptest.NewRequest(http.MethodGet, "/ok", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			c.Check(rec.Code, qt.Equals, tc.want)
			if tc.want == http.StatusUnauthorized {
				c.Check(rec.Body.String(), qt.JSONEquals, map[string]any{"error": "Missing authorization header"})
			}
		})
	}
}

func TestAccessLog(t *testing.T) {
	c := qt.New(t)
	core, logs := observer.New(zap.DebugLevel)
	r := newEngine(zap.New(core))

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("Authorization", "Bearer token")
	r.ServeHTTP(httptest.NewRecorder(), req)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	entries := logs.All()
	c.Assert(entries, qt.HasLen, 3)
	c.Check(entries[0].Level, qt.Equals, zap.InfoLevel)
	c.Check(entries[1].Level, qt.Equals, zap.WarnLevel)
	c.Check(entries[2].Level, qt.Equals, zap.ErrorLevel)
	c.Check(entries[2].ContextMap()["status"], qt.Equals, int64(500))
	c.Check(entries[2].ContextMap()["path"], qt.Equals, "/boom")
}
