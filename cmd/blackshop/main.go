// Package main is the entry point for the Black Shop front-end server.
// It loads configuration, connects to Valkey and object storage, sets up
// routing, and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blackshop/internal/api"
	"blackshop/internal/cache"
	"blackshop/internal/config"
	"blackshop/internal/handlers"
	"blackshop/internal/i18n"
	"blackshop/internal/middleware"
	"blackshop/internal/render"
	"blackshop/internal/router"
	"blackshop/internal/session"
	"blackshop/internal/storage"
)

// Login and register submits allowed per client IP and minute.
const authAttemptsPerMinute = 10

// Every page fans out to the same three service hosts; keep enough idle
// connections per host to reuse them.
const apiIdleConnsPerHost = 32

func main() {
	// Read .env before the logger so APP_ENV can pick the handler.
	envErr := config.LoadDotEnv()

	// Structured logger: JSON in production, text otherwise.
	var handler slog.Handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	if os.Getenv("APP_ENV") == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	slog.SetDefault(slog.New(handler))

	if envErr != nil {
		slog.Error("failed to read .env file", "error", envErr)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"locale", cfg.Locale,
		"wizard_publish", cfg.WizardPublish,
	)

	bundle, err := i18n.New(cfg.Locale)
	if err != nil {
		slog.Error("failed to load translations", "error", err)
		os.Exit(1)
	}

	// Remote services. A missing host only fails the calls to that service.
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = apiIdleConnsPerHost
	client := api.New(cfg.API(), api.WithHTTPClient(&http.Client{Transport: transport}))
	for _, svc := range client.MissingHosts() {
		slog.Warn("service host not configured, its calls will fail", "service", svc)
	}

	// Connect to Valkey (wizard drafts).
	valkeyClient, err := cache.ConnectValkey(context.Background(), cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()
	drafts := cache.NewDraftStore(valkeyClient, cfg.WizardDraftTTL)

	// S3-compatible object storage for category images (optional).
	var storageClient *storage.Client
	if cfg.StorageEnabled() {
		storageClient, err = storage.New(storage.Options{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			PublicURL: cfg.S3PublicURL,
		})
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured, category image uploads disabled")
	}

	renderer, err := render.New(bundle)
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Session cookies are Secure outside development.
	secureCookies := cfg.SecureCookies()

	storefrontHandlers := handlers.NewStorefront(renderer, client, bundle)
	authHandlers := handlers.NewAuth(renderer, client, bundle, session.NewCookies(secureCookies))
	adminHandlers := handlers.NewAdmin(renderer, client, bundle, storageClient, drafts, cfg.WizardPublish)

	limiter := middleware.NewRateLimiter(authAttemptsPerMinute, time.Minute)
	defer limiter.Stop()

	r := router.New(router.Options{
		Bundle:        bundle,
		Limiter:       limiter,
		SecureCookies: secureCookies,
	}, storefrontHandlers, authHandlers, adminHandlers)

	// WriteTimeout covers the wizard's image decoding on large uploads.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
