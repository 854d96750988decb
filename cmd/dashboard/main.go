package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/enset/dashboard/internal/api"
	"github.com/enset/dashboard/internal/auth"
	"github.com/enset/dashboard/internal/backend"
	"github.com/enset/dashboard/internal/config"
	"github.com/enset/dashboard/internal/logging"
	"github.com/enset/dashboard/internal/service"
	"github.com/enset/dashboard/internal/session"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	keycloak := auth.NewKeycloak(cfg.Auth, logger)
	client := backend.NewClient(cfg.API, keycloak, logger)
	sess := session.New(
		keycloak,
		service.NewCatalogService(client, logger),
		service.NewOrderService(client, logger),
		logger,
	)

	// An init failure leaves the session in the failed state; POST
	// /v1/session/init retries it.
	initCtx, cancelInit := context.WithTimeout(context.Background(), cfg.API.Timeout)
	if err := sess.Init(initCtx); err != nil {
		logger.Error("Session initialization failed", zap.Error(err))
	}
	cancelInit()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(cfg, sess, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Dashboard listening",
			zap.String("addr", srv.Addr),
			zap.String("session_id", sess.ID()),
			zap.String("state", string(sess.State())),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info("Received shutdown signal")
	case err := <-serverErr:
		logger.Fatal("Server error", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Failed to shut down server", zap.Error(err))
	}
	if sess.State() == session.StateAuthenticated {
		if err := sess.Logout(ctx); err != nil {
			logger.Warn("Logout on shutdown failed", zap.Error(err))
		}
	}

	logger.Info("Dashboard stopped")
}
