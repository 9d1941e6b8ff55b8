package newsapi

import (
	"context"
	"log/slog"
	"time"
)

// RequestEvent is emitted before a request is dispatched.
type RequestEvent struct {
	CallID    string
	Operation string
	Method    string
	Path      string
	Time      time.Time
}

// ResponseEvent is emitted after a 2xx response.
type ResponseEvent struct {
	CallID     string
	Operation  string
	Method     string
	Path       string
	StatusCode int
	Duration   time.Duration
}

// ErrorEvent is emitted when a call fails for any reason.
type ErrorEvent struct {
	CallID    string
	Operation string
	Method    string
	Path      string
	Duration  time.Duration
	Err       *Error
}

// Hook observes every call made by the Client it is attached to.
// Hooks must not block for long: they run inline with the call.
type Hook interface {
	BeforeRequest(ctx context.Context, ev RequestEvent)
	AfterResponse(ctx context.Context, ev ResponseEvent)
	OnError(ctx context.Context, ev ErrorEvent)
}

// HookFuncs adapts plain functions to Hook. Nil fields are skipped.
type HookFuncs struct {
	Request  func(ctx context.Context, ev RequestEvent)
	Response func(ctx context.Context, ev ResponseEvent)
	Error    func(ctx context.Context, ev ErrorEvent)
}

func (h HookFuncs) BeforeRequest(ctx context.Context, ev RequestEvent) {
	if h.Request != nil {
		h.Request(ctx, ev)
	}
}

func (h HookFuncs) AfterResponse(ctx context.Context, ev ResponseEvent) {
	if h.Response != nil {
		h.Response(ctx, ev)
	}
}

func (h HookFuncs) OnError(ctx context.Context, ev ErrorEvent) {
	if h.Error != nil {
		h.Error(ctx, ev)
	}
}

// LogHook writes one structured log line per hook event.
type LogHook struct {
	logger *slog.Logger
}

// NewLogHook returns a Hook logging to logger, or slog.Default() when nil.
func NewLogHook(logger *slog.Logger) *LogHook {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogHook{logger: logger}
}

func (h *LogHook) BeforeRequest(ctx context.Context, ev RequestEvent) {
	h.logger.InfoContext(ctx, "API request",
		"method", ev.Method,
		"path", ev.Path,
		"operation", ev.Operation,
		"call_id", ev.CallID)
}

func (h *LogHook) AfterResponse(ctx context.Context, ev ResponseEvent) {
	h.logger.InfoContext(ctx, "API response",
		"status", ev.StatusCode,
		"path", ev.Path,
		"duration", ev.Duration,
		"call_id", ev.CallID)
}

func (h *LogHook) OnError(ctx context.Context, ev ErrorEvent) {
	attrs := []any{
		"message", ev.Err.Message,
		"kind", ev.Err.Kind,
		"path", ev.Path,
		"call_id", ev.CallID,
	}
	if ev.Err.StatusCode != 0 {
		attrs = append(attrs, "status", ev.Err.StatusCode)
	}
	h.logger.ErrorContext(ctx, "API response error", attrs...)
}
