package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// Kind classifies a failed call.
type Kind string

const (
	KindNetwork Kind = "network"
	KindTimeout Kind = "timeout"
	KindHTTP    Kind = "http"
)

var (
	ErrNetwork = errors.New("newsapi: network failure")
	ErrTimeout = errors.New("newsapi: request timed out")
	ErrHTTP    = errors.New("newsapi: unsuccessful status")
)

// Error is the normalized failure returned by every operation.
// StatusCode is zero when no response was received. ContentType is the
// backend's Content-Type for the unsuccessful response.
type Error struct {
	Kind        Kind
	StatusCode  int
	Message     string
	Method      string
	Path        string
	Body        json.RawMessage
	ContentType string
	Err         error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: %s", e.Method, e.Path, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match a failure against ErrNetwork, ErrTimeout or ErrHTTP.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNetwork:
		return e.Kind == KindNetwork
	case ErrTimeout:
		return e.Kind == KindTimeout
	case ErrHTTP:
		return e.Kind == KindHTTP
	}
	return false
}

// StatusCode reports the HTTP status carried by err, if any.
func StatusCode(err error) (int, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.StatusCode != 0 {
		return apiErr.StatusCode, true
	}
	return 0, false
}

func transportError(method, path string, err error) *Error {
	kind := KindNetwork
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		kind = KindTimeout
	}
	return &Error{
		Kind:    kind,
		Message: err.Error(),
		Method:  method,
		Path:    path,
		Err:     err,
	}
}

func statusError(method, path string, status int, contentType string, body []byte) *Error {
	return &Error{
		Kind:        KindHTTP,
		StatusCode:  status,
		Message:     serverMessage(status, body),
		Method:      method,
		Path:        path,
		Body:        body,
		ContentType: contentType,
	}
}

// serverMessage prefers the backend's own message over the status text.
func serverMessage(status int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" && !json.Valid(body) {
		return text
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return fmt.Sprintf("status %d", status)
}
