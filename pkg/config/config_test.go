package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"NEWS_API_URL", "VITE_API_URL", "SERVER_PORT", "ALLOWED_HOSTS", "STATIC_DIR",
		"LOG_LEVEL", "LOG_FORMAT", "KAFKA_BROKERS", "KAFKA_EVENTS_TOPIC", "EVENT_BUFFER_SIZE",
		"OTEL_EXPORTER_OTLP_ENDPOINT", "WAIT_FOR_BACKEND", "BACKEND_READY_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	assert.Equal(t, "5000", cfg.ServerPort)
	assert.Equal(t, []string{"crawling-jejy.onrender.com", "localhost", "127.0.0.1"}, cfg.AllowedHosts)
	assert.Equal(t, "dist", cfg.StaticDir)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.False(t, cfg.EventsEnabled())
	assert.False(t, cfg.WaitForBackend)
	assert.Equal(t, time.Minute, cfg.BackendReadyTimeout)
	assert.Equal(t, 256, cfg.EventBufferSize)
}

func TestLoad_APIURLOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("VITE_API_URL", "http://vite.example:8080")

	assert.Equal(t, "http://vite.example:8080", Load().APIBaseURL)

	t.Setenv("NEWS_API_URL", "https://api.example")
	assert.Equal(t, "https://api.example", Load().APIBaseURL)
}

func TestLoad_ParsesListsAndDurations(t *testing.T) {
	clearEnv(t)
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("ALLOWED_HOSTS", "news.example")
	t.Setenv("WAIT_FOR_BACKEND", "true")
	t.Setenv("BACKEND_READY_TIMEOUT", "45")
	t.Setenv("EVENT_BUFFER_SIZE", "not-a-number")

	cfg := Load()
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.True(t, cfg.EventsEnabled())
	assert.Equal(t, []string{"news.example"}, cfg.AllowedHosts)
	assert.True(t, cfg.WaitForBackend)
	assert.Equal(t, 45*time.Second, cfg.BackendReadyTimeout)
	assert.Equal(t, 256, cfg.EventBufferSize)
}

func TestAPIClientConfig_FixedTimeoutAndHeader(t *testing.T) {
	cfg := &Config{APIBaseURL: "http://backend:8080"}

	api := cfg.APIClientConfig()
	assert.Equal(t, "http://backend:8080", api.BaseURL)
	assert.Equal(t, 10*time.Second, api.Timeout)
	assert.Equal(t, map[string]string{"Content-Type": "application/json"}, api.DefaultHeaders)
}
