package newsapi

import "time"

const (
	// DefaultBaseURL is used when no base URL override is configured.
	DefaultBaseURL = "http://localhost:8080"
	// DefaultTimeout bounds every request issued by the client.
	DefaultTimeout = 10 * time.Second
)

// Config is the immutable configuration of a Client.
type Config struct {
	BaseURL        string
	Timeout        time.Duration
	DefaultHeaders map[string]string
}

// DefaultConfig returns the configuration the backend expects: the given base
// URL (or DefaultBaseURL when empty), DefaultTimeout and a JSON content type.
func DefaultConfig(baseURL string) Config {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return Config{
		BaseURL: baseURL,
		Timeout: DefaultTimeout,
		DefaultHeaders: map[string]string{
			"Content-Type": "application/json",
		},
	}
}

func (c Config) clone() Config {
	headers := make(map[string]string, len(c.DefaultHeaders))
	for k, v := range c.DefaultHeaders {
		headers[k] = v
	}
	c.DefaultHeaders = headers
	return c
}
