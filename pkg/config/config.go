package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/NewsDesk/pkg/newsapi"
	"github.com/joho/godotenv"
)

const defaultAllowedHosts = "crawling-jejy.onrender.com,localhost,127.0.0.1"

type Config struct {
	APIBaseURL          string
	ServerPort          string
	AllowedHosts        []string
	StaticDir           string
	LogLevel            string
	LogFormat           string
	KafkaBrokers        []string
	KafkaEventsTopic    string
	EventBufferSize     int
	OTLPEndpoint        string
	WaitForBackend      bool
	BackendReadyTimeout time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		APIBaseURL:          getEnv("NEWS_API_URL", getEnv("VITE_API_URL", newsapi.DefaultBaseURL)),
		ServerPort:          getEnv("SERVER_PORT", "5000"),
		AllowedHosts:        splitList(getEnv("ALLOWED_HOSTS", defaultAllowedHosts)),
		StaticDir:           getEnv("STATIC_DIR", "dist"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "json"),
		KafkaBrokers:        splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaEventsTopic:    getEnv("KAFKA_EVENTS_TOPIC", "newsdesk_api_events"),
		EventBufferSize:     getIntEnv("EVENT_BUFFER_SIZE", 256),
		OTLPEndpoint:        os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		WaitForBackend:      getBoolEnv("WAIT_FOR_BACKEND", false),
		BackendReadyTimeout: getDurationEnv("BACKEND_READY_TIMEOUT", 1*time.Minute),
	}
}

// APIClientConfig returns the access layer configuration. The timeout and
// default headers are fixed; only the base URL comes from the environment.
func (c *Config) APIClientConfig() newsapi.Config {
	return newsapi.DefaultConfig(c.APIBaseURL)
}

// EventsEnabled reports whether call events should be shipped to Kafka.
func (c *Config) EventsEnabled() bool {
	return len(c.KafkaBrokers) > 0 && c.KafkaEventsTopic != ""
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		// Try parsing as duration string (e.g. "1m", "60s")
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		// Try parsing as integer seconds
		if i, err := strconv.Atoi(value); err == nil {
			return time.Duration(i) * time.Second
		}
	}
	return fallback
}
