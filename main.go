package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msomdec/youth-portal/internal/config"
	"github.com/msomdec/youth-portal/internal/domain"
	"github.com/msomdec/youth-portal/internal/flow"
	"github.com/msomdec/youth-portal/internal/handler"
	"github.com/msomdec/youth-portal/internal/repository/s3store"
	"github.com/msomdec/youth-portal/internal/repository/sqlite"
	"github.com/msomdec/youth-portal/internal/service"
	"github.com/msomdec/youth-portal/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logOpts := &slog.HandlerOptions{Level: cfg.LogLevel}
	logger := slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, logOpts),
		slog.NewJSONHandler(os.Stderr, logOpts),
	))
	slog.SetDefault(logger)

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied")

	files, err := openFileStore(ctx, cfg, db)
	if err != nil {
		slog.Error("failed to open file store", "backend", cfg.FileStore, "error", err)
		os.Exit(1)
	}

	otp := flow.NewOTPIssuer(flow.LogSender{Logger: logger.With("component", "otp")}, cfg.OTPBcryptCost, cfg.OTPTTL)
	sessions := session.NewRegistry(cfg.SessionIdleTTL)
	flows := flow.NewRegistry(otp, cfg.SessionIdleTTL)
	limiter := service.NewTokenBucket(cfg.OTPPerMinute, cfg.OTPBurst)

	go sessions.Run(ctx)
	go flows.Run(ctx)
	go limiter.Run(ctx)

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: handler.New(handler.Deps{
			Tokens:         session.NewTokens(cfg.JWTSecret, cfg.ClientCookieTTL),
			Sessions:       sessions,
			Flows:          flows,
			Storage:        db.LocalStorage(),
			Quizzes:        service.NewQuizService(service.Catalog(), db.QuizAttempts()),
			Profiles:       service.NewProfileService(),
			Images:         service.NewImageService(files),
			OTPLimiter:     limiter,
			AllowedOrigins: cfg.AllowedOrigins,
			CookieSecure:   cfg.CookieSecure,
		}),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "file_store", cfg.FileStore)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func openFileStore(ctx context.Context, cfg *config.Config, db *sqlite.DB) (domain.FileStore, error) {
	if cfg.FileStore != config.FileStoreS3 {
		return db.FileStore(), nil
	}
	store, err := s3store.New(ctx, s3store.Options{
		Bucket:          cfg.S3Bucket,
		Region:          cfg.S3Region,
		Endpoint:        cfg.S3Endpoint,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}
