package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/mtrack/internal/core/services"
	"github.com/SscSPs/mtrack/internal/handlers"
	"github.com/SscSPs/mtrack/internal/middleware"
	"github.com/SscSPs/mtrack/internal/platform/config"
	"github.com/SscSPs/mtrack/internal/repositories/filestore"
	"github.com/SscSPs/mtrack/internal/scheduler"
	"github.com/SscSPs/mtrack/internal/utils"
	"github.com/spf13/afero"
)

const shutdownTimeout = 10 * time.Second

func main() {
	issueFor := flag.String("issue-token", "", "print a bearer token for the given client name and exit")
	genSecret := flag.Bool("gen-secret", false, "print a random value for JWT_SECRET and exit")
	flag.Parse()

	if *genSecret {
		secret, err := utils.GenerateJWTSecret(utils.MinSecretBytes)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(secret)
		return
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *issueFor != "" {
		token, err := middleware.IssueToken(cfg.JWTSecret, *issueFor, cfg.JWTExpiryDuration, time.Now())
		if err != nil {
			logger.Error("Failed to issue token", slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Println(token)
		return
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("Server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fs := afero.NewOsFs()
	if err := fs.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	lock, err := filestore.LockDataDir(cfg.DataDir)
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Error("Failed to release data directory lock", slog.String("error", err.Error()))
		}
	}()

	repos := filestore.NewRepositoryProvider(fs, cfg.DataDir, filestore.WithLogger(logger))
	for _, store := range repos.Initializers() {
		if err := store.Initialize(ctx); err != nil {
			return fmt.Errorf("initialize data files: %w", err)
		}
	}
	logger.Info("Data directory ready", slog.String("dir", cfg.DataDir))

	container := services.NewServiceContainer(repos, time.Now)

	runner := scheduler.NewRunner(container.Automation, cfg.AutomationInterval, logger)
	if err := runner.Start(ctx); err != nil {
		return err
	}

	router, err := handlers.NewRouter(cfg, container, logger)
	if err != nil {
		return err
	}
	if err := router.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("set trusted proxies: %w", err)
	}

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("addr", server.Addr), slog.Bool("auth", cfg.AuthEnabled()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down server...")
	case err := <-serverErr:
		if err != nil {
			_ = runner.Stop(context.Background())
			return fmt.Errorf("server failed: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
	}
	if err := runner.Stop(shutdownCtx); err != nil {
		logger.Error("Automation runner did not stop cleanly", slog.String("error", err.Error()))
	}
	logger.Info("Server exited")
	return nil
}
