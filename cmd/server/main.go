package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/NewsDesk/cmd/server/factory"
	"github.com/NewsDesk/internal/app"
	"github.com/NewsDesk/internal/infra/tracing"
	transport "github.com/NewsDesk/internal/transport/http"
	"github.com/NewsDesk/pkg/config"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.Provide(
			// Config
			config.Load,
			factory.NewLogger,

			// Infrastructure
			factory.NewEventPublisher,
			factory.NewHooks,
			factory.NewAPIClient,

			// Services
			factory.NewReadinessWaiter,

			// HTTP Server
			transport.NewHTTPServer,
		),
		fx.Invoke(
			SetupTracer,
			WaitForReady, // Block until the backend answers, when enabled
			StartServer,
		),
	).Run()
}

// --- Invokers ---

func SetupTracer(lc fx.Lifecycle, cfg *config.Config) error {
	ctx := context.Background()
	shutdown, err := tracing.InitTracer(ctx, "newsdesk-gateway", cfg.OTLPEndpoint)
	if err != nil {
		slog.Error("Failed to initialize tracer", "error", err)
		return err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Info("Shutting down tracer provider")
			return shutdown(ctx)
		},
	})
	return nil
}

// WaitForReady blocks until the news backend answers, if configured to.
func WaitForReady(cfg *config.Config, waiter *app.ReadinessWaiter) error {
	if !cfg.WaitForBackend {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), cfg.BackendReadyTimeout)
	defer cancel()
	return waiter.WaitForBackend(ctx)
}

func StartServer(lc fx.Lifecycle, server *http.Server) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				slog.Info("Starting gateway server", "address", server.Addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					slog.Error("HTTP server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
}
