package factory

import (
	"errors"
	"fmt"

	"github.com/NewsDesk/internal/app"
	"github.com/NewsDesk/pkg/config"
	"github.com/NewsDesk/pkg/newsapi"
)

// NewReadinessWaiter creates the backend readiness probe with validation.
func NewReadinessWaiter(client *newsapi.Client, cfg *config.Config) (*app.ReadinessWaiter, error) {
	if client == nil {
		return nil, errors.New("api client is nil")
	}
	if cfg.WaitForBackend && cfg.BackendReadyTimeout <= 0 {
		return nil, fmt.Errorf("invalid backend ready timeout: %s (must be positive)", cfg.BackendReadyTimeout)
	}
	return app.NewReadinessWaiter(client), nil
}
