// Package factory provides dependency injection constructors for infrastructure components.
package factory

import (
	"context"
	"log/slog"
	"os"

	"github.com/NewsDesk/internal/infra/queue"
	"github.com/NewsDesk/internal/infra/tracing"
	"github.com/NewsDesk/pkg/config"
	"github.com/NewsDesk/pkg/logging"
	"github.com/NewsDesk/pkg/newsapi"
	"go.uber.org/fx"
)

// NewLogger builds the process logger from config and installs it as default.
func NewLogger(cfg *config.Config) *slog.Logger {
	logger := logging.NewLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, os.Stdout)
	slog.SetDefault(logger)
	return logger
}

// NewEventPublisher creates the Kafka call event sink with lifecycle
// management. It returns nil when no brokers are configured.
func NewEventPublisher(cfg *config.Config, lc fx.Lifecycle) *queue.EventPublisher {
	if !cfg.EventsEnabled() {
		slog.Info("Call event publishing disabled, no Kafka brokers configured")
		return nil
	}

	producer := queue.NewKafkaProducer(cfg.KafkaBrokers, cfg.KafkaEventsTopic)
	publisher := queue.NewEventPublisher(producer, cfg.EventBufferSize)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				publisher.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return producer.Close()
		},
	})
	return publisher
}

// NewAPIClient creates the backend access layer client. Outbound calls are
// traced and reported to every hook.
func NewAPIClient(cfg *config.Config, hooks []newsapi.Hook) *newsapi.Client {
	return newsapi.New(
		cfg.APIClientConfig(),
		newsapi.WithHooks(hooks...),
		newsapi.WithTransport(tracing.Transport(nil)),
	)
}
