package metrics

import (
	"context"
	"strconv"

	"github.com/NewsDesk/pkg/newsapi"
)

// Hook records every backend call in the package collectors.
type Hook struct{}

var _ newsapi.Hook = Hook{}

func NewHook() Hook {
	return Hook{}
}

func (Hook) BeforeRequest(_ context.Context, ev newsapi.RequestEvent) {
	APIRequests.WithLabelValues(ev.Operation, ev.Method).Inc()
}

func (Hook) AfterResponse(_ context.Context, ev newsapi.ResponseEvent) {
	APIResponses.WithLabelValues(ev.Operation, strconv.Itoa(ev.StatusCode)).Inc()
	APIRequestDuration.WithLabelValues(ev.Operation).Observe(ev.Duration.Seconds())
}

func (Hook) OnError(_ context.Context, ev newsapi.ErrorEvent) {
	if ev.Err.StatusCode != 0 {
		APIResponses.WithLabelValues(ev.Operation, strconv.Itoa(ev.Err.StatusCode)).Inc()
	}
	APIErrors.WithLabelValues(ev.Operation, string(ev.Err.Kind)).Inc()
	APIRequestDuration.WithLabelValues(ev.Operation).Observe(ev.Duration.Seconds())
}
