package factory

import (
	"log/slog"

	"github.com/NewsDesk/internal/infra/metrics"
	"github.com/NewsDesk/internal/infra/queue"
	"github.com/NewsDesk/pkg/newsapi"
)

// NewHooks lists the observers attached to the API client: request logging,
// Prometheus metrics and, when enabled, the Kafka call event sink.
func NewHooks(logger *slog.Logger, publisher *queue.EventPublisher) []newsapi.Hook {
	hooks := []newsapi.Hook{
		newsapi.NewLogHook(logger),
		metrics.NewHook(),
	}
	if publisher != nil {
		hooks = append(hooks, publisher)
	}

	slog.Info("Registered API hooks", "count", len(hooks), "events", publisher != nil)
	return hooks
}
