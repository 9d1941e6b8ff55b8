package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorSampler(t *testing.T) {
	sampler := NewErrorSampler(10)

	ok, count := sampler.ShouldLog("kafka_publish")
	assert.True(t, ok, "first occurrence should be logged")
	assert.Equal(t, 1, count)

	for i := 2; i <= 9; i++ {
		ok, _ := sampler.ShouldLog("kafka_publish")
		assert.False(t, ok, "occurrence %d should be suppressed", i)
	}

	ok, count = sampler.ShouldLog("kafka_publish")
	assert.True(t, ok, "10th occurrence should be logged")
	assert.Equal(t, 10, count)
	assert.Equal(t, 10, sampler.Count("kafka_publish"))

	sampler.Reset("kafka_publish")
	assert.Equal(t, 0, sampler.Count("kafka_publish"))
	ok, _ = sampler.ShouldLog("kafka_publish")
	assert.True(t, ok, "first occurrence after reset should be logged")
}

func TestErrorSampler_KeysAreIndependent(t *testing.T) {
	sampler := NewErrorSampler(5)

	sampler.ShouldLog("event_dropped")
	sampler.ShouldLog("kafka_publish")
	sampler.ShouldLog("kafka_publish")

	assert.Equal(t, 1, sampler.Count("event_dropped"))
	assert.Equal(t, 2, sampler.Count("kafka_publish"))
}

func TestErrorSampler_InvalidIntervalDefaults(t *testing.T) {
	sampler := NewErrorSampler(0)
	for i := 1; i <= 10; i++ {
		ok, _ := sampler.ShouldLog("k")
		if i == 1 || i == 10 {
			assert.True(t, ok, "occurrence %d", i)
		} else {
			assert.False(t, ok, "occurrence %d", i)
		}
	}
}

func TestNewLogger_Formats(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(slog.LevelInfo, "json", &buf).Info("hello", "k", "v")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	NewLogger(slog.LevelInfo, "text", &buf).Info("hello", "k", "v")
	assert.Contains(t, buf.String(), "msg=hello")

	buf.Reset()
	NewLogger(ParseLevel("warn"), "json", &buf).Info("dropped")
	assert.Empty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}
