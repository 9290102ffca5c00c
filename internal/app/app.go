package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	jwtauth "github.com/heartmarshall/voicescribe-backend/internal/auth"

	"github.com/heartmarshall/voicescribe-backend/internal/adapter/postgres"
	convrepo "github.com/heartmarshall/voicescribe-backend/internal/adapter/postgres/conversion"
	"github.com/heartmarshall/voicescribe-backend/internal/adapter/provider/deepgram"
	"github.com/heartmarshall/voicescribe-backend/internal/adapter/s3store"
	"github.com/heartmarshall/voicescribe-backend/internal/config"
	"github.com/heartmarshall/voicescribe-backend/internal/migrations"
	authsvc "github.com/heartmarshall/voicescribe-backend/internal/service/auth"
	"github.com/heartmarshall/voicescribe-backend/internal/service/conversion"
	"github.com/heartmarshall/voicescribe-backend/internal/transport/middleware"
	"github.com/heartmarshall/voicescribe-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, applies migrations, wires adapters and services, and serves
// HTTP until the context is cancelled or a termination signal arrives.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Database.Migrate {
		if err := migrations.Up(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	store, err := s3store.New(ctx, cfg.Storage, logger)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	tts := deepgram.NewClient(cfg.Speech, logger)

	tokens := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
	authService := authsvc.NewService(logger, tokens)
	convService := conversion.NewService(logger, tts, store, convrepo.New(pool))

	handler := newRouter(cfg, logger, authService, convService, pool)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

// newRouter assembles the HTTP routes and middleware chains. Health probes
// are open; the TTS endpoints sit behind the auth middleware so no request
// reaches a handler without a verified identity.
func newRouter(
	cfg *config.Config,
	logger *slog.Logger,
	verifier *authsvc.Service,
	convService *conversion.Service,
	pinger interface{ Ping(context.Context) error },
) http.Handler {
	ttsHandler := rest.NewTTSHandler(convService, logger)
	healthHandler := rest.NewHealthHandler(pinger, BuildVersion())

	protected := middleware.Auth(verifier)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("POST /api/tts/convert", protected(http.HandlerFunc(ttsHandler.Convert)))
	mux.Handle("GET /api/tts/history", protected(http.HandlerFunc(ttsHandler.History)))

	base := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)

	return base(mux)
}
