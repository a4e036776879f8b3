package handler

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/instill-ai/knowledge-backend/pkg/constant"
	"github.com/instill-ai/knowledge-backend/pkg/middleware"
)

// ProcessDocumentPath is the route of the pipeline trigger.
const ProcessDocumentPath = "/v1/process-document"

// RouterConfig holds the HTTP settings of the router.
type RouterConfig struct {
	AllowOrigins []string
	Debug        bool
}

// NewRouter registers the routes of h on a gin engine.
func NewRouter(h *Handler, cfg RouterConfig, logger *zap.Logger) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.Trace(),
		middleware.AccessLog(logger),
		cors.New(corsConfig(cfg.AllowOrigins)),
	)

	r.GET("/health", h.Health)

	// Preflight requests carrying an Origin header are answered by the CORS
	// middleware. This covers the ones that don't.
	r.OPTIONS(ProcessDocumentPath, func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.POST(ProcessDocumentPath, middleware.RequireAuthorization(), h.ProcessDocument)

	return r
}

func corsConfig(allowOrigins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Content-Length",
			constant.HeaderAuthorization,
			"X-Client-Info",
			"Apikey",
		},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}

	if len(allowOrigins) == 0 || slices.Contains(allowOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowOrigins
		cfg.AllowCredentials = true
	}

	return cfg
}
