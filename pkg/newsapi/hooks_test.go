package newsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLogLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		lines = append(lines, entry)
	}
	return lines
}

func TestLogHook_SuccessfulCall(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	rec := &recorder{body: `{}`}
	client := newTestClient(t, rec, WithHooks(NewLogHook(logger)))

	_, err := client.Crawler.StartCrawling(context.Background())
	require.NoError(t, err)

	lines := decodeLogLines(t, &buf)
	require.Len(t, lines, 2)

	assert.Equal(t, "API request", lines[0]["msg"])
	assert.Equal(t, "POST", lines[0]["method"])
	assert.Equal(t, "/api/crawler/crawl", lines[0]["path"])

	assert.Equal(t, "API response", lines[1]["msg"])
	assert.Equal(t, float64(http.StatusOK), lines[1]["status"])
	assert.Equal(t, "/api/crawler/crawl", lines[1]["path"])
}

func TestLogHook_FailedCall(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	rec := &recorder{status: http.StatusNotFound, body: `{"message":"missing"}`}
	client := newTestClient(t, rec, WithHooks(NewLogHook(logger)))

	_, err := client.Articles.ByID(context.Background(), "9")
	require.Error(t, err)

	lines := decodeLogLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "API response error", lines[1]["msg"])
	assert.Equal(t, "ERROR", lines[1]["level"])
	assert.Equal(t, float64(http.StatusNotFound), lines[1]["status"])
	assert.Equal(t, "missing", lines[1]["message"])
}

func TestLogHook_NetworkFailureOmitsStatus(t *testing.T) {
	var buf bytes.Buffer
	hook := NewLogHook(slog.New(slog.NewJSONHandler(&buf, nil)))

	hook.OnError(context.Background(), ErrorEvent{
		Path: "/api/crawler/status",
		Err:  &Error{Kind: KindNetwork, Message: "connection refused"},
	})

	lines := decodeLogLines(t, &buf)
	require.Len(t, lines, 1)
	_, hasStatus := lines[0]["status"]
	assert.False(t, hasStatus)
	assert.Equal(t, "network", lines[0]["kind"])
}
