package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/Shuvikm/sonyliv-clone/internal/api"
	"github.com/Shuvikm/sonyliv-clone/internal/auth"
	"github.com/Shuvikm/sonyliv-clone/internal/cache"
	"github.com/Shuvikm/sonyliv-clone/internal/client"
	"github.com/Shuvikm/sonyliv-clone/internal/config"
	grpcserver "github.com/Shuvikm/sonyliv-clone/internal/grpc"
	"github.com/Shuvikm/sonyliv-clone/internal/metrics"
	"github.com/Shuvikm/sonyliv-clone/internal/services"
	"github.com/Shuvikm/sonyliv-clone/internal/session"
	"github.com/Shuvikm/sonyliv-clone/internal/store"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.GetConfig()
	logger := config.GetLogger()

	logger.Info().
		Str("version", version).
		Int("server_port", cfg.Server.Port).
		Str("server_address", cfg.Server.Address).
		Bool("tmdb_configured", cfg.TMDB.APIKey != "").
		Bool("news_configured", cfg.News.APIKey != "").
		Bool("cache_enabled", cfg.Cache.Enabled).
		Str("cache_provider", cfg.Cache.Provider).
		Msg("Application started with configuration")

	if cfg.Auth.JWTSecret == config.DefaultDemoJWTSecret {
		logger.Warn().Msg("Using the default JWT secret; set APP_AUTH_JWT_SECRET outside local development")
	}

	if err := api.InitSentry(cfg.Sentry.DSN, cfg.Sentry.Environment, version); err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize Sentry")
	}
	defer api.FlushSentry()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Provider response cache
	var responseCache cache.Cache
	if cfg.Cache.Enabled {
		ttl := config.ParseDuration("cache.ttl", cfg.Cache.TTL, 10*time.Minute)
		c, err := cache.Open(cfg, "provider", cfg.Cache.Size, ttl)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to create provider cache, continuing without it")
		} else {
			responseCache = c
		}
	}
	providerClient := client.NewClient(cfg, responseCache)
	defer func() {
		if err := providerClient.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close provider client")
		}
	}()

	sessionTTL := config.ParseDuration("session.ttl", cfg.Session.TTL, auth.DefaultTokenTTL)
	sessionStore, err := cache.Open(cfg, "session", cfg.Session.Size, sessionTTL)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create session store")
	}
	defer func() { _ = sessionStore.Close() }()

	// The browse surface and demo login keep working without a database
	opts := api.Options{
		Catalog:        services.NewCatalog(providerClient),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	}
	var users auth.UserStore
	var probe grpcserver.Probe

	db, err := store.Connect(ctx, cfg)
	if err != nil {
		logger.Error().Err(err).Msg("MongoDB unavailable, catalog and registration are disabled")
	} else {
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := db.Close(closeCtx); err != nil {
				logger.Error().Err(err).Msg("Failed to disconnect MongoDB")
			}
		}()
		users = db.Users
		opts.Contents = db.Contents
		opts.Ping = db.Ping
		probe = db.Ping
	}

	tokenTTL := config.ParseDuration("auth.token_ttl", cfg.Auth.TokenTTL, auth.DefaultTokenTTL)
	opts.Auth = auth.NewService(users, auth.NewTokenIssuer(cfg.Auth.JWTSecret, tokenTTL), session.NewManager(sessionStore))

	proxies, err := api.ParseTrustedProxies(cfg.RateLimit.TrustedProxies)
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid rate_limit.trusted_proxies")
	}
	opts.TrustedProxies = proxies
	if cfg.RateLimit.RPS > 0 {
		opts.Limiter = api.NewIPRateLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst, proxies)
		defer opts.Limiter.Stop()
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port),
		Handler:           api.NewServer(opts).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if cfg.Metrics.Enabled {
		metricsServer := metrics.NewHTTPServer(cfg.Server.Address, cfg.Metrics.Port)
		go func() {
			logger.Info().Str("address", metricsServer.Addr).Msg("Starting Prometheus metrics HTTP server")
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Fatal().Err(err).Msg("Failed to serve metrics")
			}
		}()
		defer func() {
			if err := metricsServer.Shutdown(context.Background()); err != nil {
				logger.Error().Err(err).Msg("Failed to shutdown metrics server")
			}
		}()
	}

	if cfg.GRPC.Enabled {
		grpcServer := grpcserver.NewGRPCServer(probe)
		address := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.GRPC.Port)
		listener, err := net.Listen("tcp", address)
		if err != nil {
			logger.Fatal().Err(err).Str("address", address).Msg("Failed to create gRPC listener")
		}
		go grpcServer.Watch(ctx, 30*time.Second)
		go func() {
			logger.Info().Str("address", address).Msg("Starting gRPC health server")
			if err := grpcServer.Serve(listener); err != nil {
				logger.Error().Err(err).Msg("gRPC server stopped")
			}
		}()
		defer grpcServer.Shutdown()
	}

	go func() {
		<-ctx.Done()
		logger.Info().Msg("Received shutdown signal")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown HTTP server")
		}
	}()

	logger.Info().Str("address", httpServer.Addr).Msg("Starting HTTP server")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("Failed to serve HTTP")
	}

	logger.Info().Msg("Server stopped gracefully")
}
