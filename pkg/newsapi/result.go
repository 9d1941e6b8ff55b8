package newsapi

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Result is a successful response. Body holds the bytes exactly as received.
type Result struct {
	StatusCode int
	Header     http.Header
	Body       json.RawMessage
}

// Decode unmarshals the body into v.
func (r *Result) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// Decode converts an operation's return pair into a typed payload:
//
//	today, err := newsapi.Decode[domain.ArticlesResponse](c.Articles.TodaysArticles(ctx, newsapi.DefaultPage))
func Decode[T any](res *Result, err error) (T, error) {
	var out T
	if err != nil {
		return out, err
	}
	if err := res.Decode(&out); err != nil {
		return out, err
	}
	return out, nil
}
