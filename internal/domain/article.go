package domain

import (
	"context"
	"time"
)

// Article is a news article as served by the backend.
// Timestamps are ISO local date-times without zone, kept as sent.
type Article struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	ImageURL    string `json:"imageUrl"`
	Source      string `json:"source"`
	Category    string `json:"category"`
	Link        string `json:"link"`
	PublishedAt string `json:"publishedAt"`
	CreatedAt   string `json:"createdAt"`
}

// ArticlesResponse is the page envelope of every article listing.
type ArticlesResponse struct {
	Date        string    `json:"date"`
	Message     string    `json:"message"`
	TotalCount  int       `json:"totalCount"`
	CurrentPage int       `json:"currentPage"`
	TotalPages  int       `json:"totalPages"`
	Articles    []Article `json:"articles"`
}

// CrawlResult is returned by both crawl triggers. Only one count is set.
type CrawlResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	SavedCount   *int   `json:"savedCount,omitempty"`
	ArticleCount *int   `json:"articleCount,omitempty"`
}

// CrawlerStats carries the backend's human-readable statistics line.
type CrawlerStats struct {
	Success bool   `json:"success"`
	Stats   string `json:"stats"`
}

// CrawlerStatus reports crawler liveness.
type CrawlerStatus struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Call event phases.
const (
	PhaseRequest  = "request"
	PhaseResponse = "response"
	PhaseError    = "error"
)

// CallEvent is one observability record of an API call, shipped to external sinks.
type CallEvent struct {
	ID         string    `json:"id"`
	Phase      string    `json:"phase"`
	Operation  string    `json:"operation"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	StatusCode int       `json:"status_code,omitempty"`
	Message    string    `json:"message,omitempty"`
	DurationMs int64     `json:"duration_ms,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// EventProducer publishes call events to a queue.
type EventProducer interface {
	Publish(ctx context.Context, event *CallEvent) error
	Close() error
}
