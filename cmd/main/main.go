package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/instill-ai/knowledge-backend/config"
	"github.com/instill-ai/knowledge-backend/pkg/handler"
	"github.com/instill-ai/knowledge-backend/pkg/logger"
	"github.com/instill-ai/knowledge-backend/pkg/worker"

	database "github.com/instill-ai/knowledge-backend/pkg/db"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// gorm's autoUpdate will use local timezone by default, so we need to set it to UTC
	time.Local = time.UTC

	// Initialize config
	if err := config.Init(config.ParseConfigFlag()); err != nil {
		log.Fatal(err.Error())
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctx, span := otel.Tracer("main-tracer").Start(ctx, "main")

	logger, _ := logger.GetZapLogger(ctx)
	defer func() {
		// can't handle the error due to https://github.com/uber-go/zap/issues/880
		_ = logger.Sync()
	}()

	db := database.GetSharedConnection()
	defer database.Close(db)

	w, cleanup, err := worker.NewFromConfig(ctx, config.Config, db, logger)
	if err != nil {
		logger.Fatal("Failed to initialize worker", zap.Error(err))
	}
	defer cleanup()

	h := handler.NewHandler(w, config.Config.Server.RequestTimeout)
	router := handler.NewRouter(h, handler.RouterConfig{
		AllowOrigins: config.Config.Server.CORS.AllowOrigins,
		Debug:        config.Config.Server.Debug,
	}, logger)

	publicHTTPServer := &http.Server{
		Addr:              fmt.Sprintf(":%v", config.Config.Server.PublicPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errSig := make(chan error, 1)
	go func() {
		var err error
		switch {
		case config.Config.Server.HTTPS.Cert != "" && config.Config.Server.HTTPS.Key != "":
			err = publicHTTPServer.ListenAndServeTLS(config.Config.Server.HTTPS.Cert, config.Config.Server.HTTPS.Key)
		default:
			err = publicHTTPServer.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errSig <- err
		}
	}()

	span.End()
	logger.Info("HTTP server is running.", zap.Int("port", config.Config.Server.PublicPort))

	// kill (no param) default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall.SIGKILL but can't be catch, so don't need add it
	quitSig := make(chan os.Signal, 1)
	signal.Notify(quitSig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errSig:
		logger.Error("Fatal error", zap.Error(err))
	case <-quitSig:
		logger.Info("Shutting down server...")

		// In-flight runs are allowed to finish so no document is left in
		// processing.
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if err := publicHTTPServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown failed", zap.Error(err))
		}
		logger.Info("Server stopped")
	}
}
