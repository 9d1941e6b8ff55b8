package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/NewsDesk/pkg/newsapi"
)

type ReadinessWaiter struct {
	client   *newsapi.Client
	interval time.Duration
}

func NewReadinessWaiter(client *newsapi.Client) *ReadinessWaiter {
	return &ReadinessWaiter{
		client:   client,
		interval: 2 * time.Second,
	}
}

// WaitForBackend polls the crawler status endpoint until it answers 2xx or ctx
// ends. Each probe is an ordinary call; its failure is logged by the client's
// hooks like any other.
func (w *ReadinessWaiter) WaitForBackend(ctx context.Context) error {
	slog.Info("Waiting for news backend...", "base_url", w.client.Config().BaseURL)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := w.client.Crawler.Status(ctx); err != nil {
				slog.Warn("News backend not ready yet", "error", err)
				continue
			}
			slog.Info("News backend is ready")
			return nil
		}
	}
}
