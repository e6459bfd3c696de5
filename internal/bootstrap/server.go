package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultShutdownTimeout = 10 * time.Second

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

func newHTTPServer(router *gin.Engine, cfg ServerConfig) *http.Server {
	return &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

// StartHTTPServer menjalankan Gin server dan menunggu SIGINT/SIGTERM untuk
// graceful shutdown.
func StartHTTPServer(
	router *gin.Engine,
	cfg ServerConfig,
	auditLogger AuditLogger,
) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, newHTTPServer(router, cfg), cfg.ShutdownTimeout, auditLogger); err != nil {
		zap.L().Named("bootstrap.server").Fatal("http server failed", zap.Error(err))
	}
}

// serve blocks until ctx is done or the listener fails, then drains open
// connections within shutdownTimeout.
func serve(ctx context.Context, server *http.Server, shutdownTimeout time.Duration, auditLogger AuditLogger) error {
	log := zap.L().Named("bootstrap.server")
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server running", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	reason := "context done"
	if cause := context.Cause(ctx); cause != nil {
		reason = cause.Error()
	}
	log.Info("shutdown signal received", zap.String("reason", reason))

	// audit sebelum shutdown
	auditLogger.Log(ctx, AuditLog{
		Action:  ActionServerShutdown,
		Message: "Server is shutting down",
		Meta: map[string]any{
			"addr":   server.Addr,
			"reason": reason,
		},
	})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
		return err
	}
	log.Info("server exited gracefully")
	return nil
}
