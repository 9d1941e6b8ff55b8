package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/NewsDesk/pkg/config"
	"github.com/NewsDesk/pkg/newsapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backendCall struct {
	method string
	path   string
	query  string
}

func newGateway(t *testing.T, backend http.Handler, hosts ...string) http.Handler {
	t.Helper()
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)

	static := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(static, "index.html"), []byte("<html>desk</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(static, "app.js"), []byte("console.log(1)"), 0o644))

	cfg := &config.Config{StaticDir: static, AllowedHosts: hosts}
	return NewRouter(cfg, newsapi.New(newsapi.DefaultConfig(server.URL)))
}

func recordingBackend(calls chan<- backendCall, status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls <- backendCall{method: r.Method, path: r.URL.EscapedPath(), query: r.URL.RawQuery}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestGateway_RelaysBackendRoutes(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		want   backendCall
	}{
		{"today", "GET", "/api/articles/today?page=2&size=5", backendCall{"GET", "/api/articles/today", "page=2&size=5"}},
		{"today defaults", "GET", "/api/articles/today", backendCall{"GET", "/api/articles/today", "page=0&size=20"}},
		{"search", "GET", "/api/articles/search?q=AI+%EB%89%B4%EC%8A%A4", backendCall{"GET", "/api/articles/search", "q=AI%20%EB%89%B4%EC%8A%A4&page=0&size=20"}},
		{"filtered", "GET", "/api/articles?category=IT&page=1", backendCall{"GET", "/api/articles", "page=1&size=20&category=IT"}},
		{"by id", "GET", "/api/articles/42", backendCall{"GET", "/api/articles/42", ""}},
		{"categories", "GET", "/api/articles/categories", backendCall{"GET", "/api/articles/categories", ""}},
		{"sources", "GET", "/api/articles/sources", backendCall{"GET", "/api/articles/sources", ""}},
		{"source categories", "GET", "/api/articles/sources/a%2Fb/categories", backendCall{"GET", "/api/articles/sources/a%2Fb/categories", ""}},
		{"range", "GET", "/api/articles/range?start=2024-01-01T00:00:00&end=2024-01-31T23:59:59", backendCall{"GET", "/api/articles/range", "start=2024-01-01T00%3A00%3A00&end=2024-01-31T23%3A59%3A59&page=0&size=20"}},
		{"crawl", "POST", "/api/crawler/crawl", backendCall{"POST", "/api/crawler/crawl", ""}},
		{"crawl source", "POST", "/api/crawler/crawl/%EC%97%B0%ED%95%A9%EB%89%B4%EC%8A%A4", backendCall{"POST", "/api/crawler/crawl/%EC%97%B0%ED%95%A9%EB%89%B4%EC%8A%A4", ""}},
		{"stats", "GET", "/api/crawler/stats", backendCall{"GET", "/api/crawler/stats", ""}},
		{"status", "GET", "/api/crawler/status", backendCall{"GET", "/api/crawler/status", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := make(chan backendCall, 1)
			gw := newGateway(t, recordingBackend(calls, http.StatusOK, `{"ok":true}`))

			rec := serve(gw, tt.method, tt.target)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
			assert.Equal(t, tt.want, <-calls)
		})
	}
}

func TestGateway_PassesBackendFailureThrough(t *testing.T) {
	calls := make(chan backendCall, 1)
	gw := newGateway(t, recordingBackend(calls, http.StatusNotFound, `{"message":"Article not found"}`))

	rec := serve(gw, "GET", "/api/articles/999")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Article not found"}`, rec.Body.String())
	<-calls
}

func TestGateway_KeepsBackendErrorContentType(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<h1>upstream down</h1>"))
	})
	gw := newGateway(t, backend)

	rec := serve(gw, "GET", "/api/crawler/status")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<h1>upstream down</h1>", rec.Body.String())
}

func TestGateway_UnknownAPIRoutes(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		status int
	}{
		{"unknown path", "GET", "/api/nope", http.StatusNotFound},
		{"unknown nested path", "GET", "/api/articles/1/comments", http.StatusNotFound},
		{"wrong method on read route", "DELETE", "/api/articles/today", http.StatusMethodNotAllowed},
		{"read on crawl trigger", "GET", "/api/crawler/crawl", http.StatusMethodNotAllowed},
		{"post on article", "POST", "/api/articles/42", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := make(chan backendCall, 1)
			gw := newGateway(t, recordingBackend(calls, http.StatusOK, `{}`))

			rec := serve(gw, tt.method, tt.target)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.NotContains(t, rec.Body.String(), "<html>")
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Contains(t, body["message"], "/api/")
			assert.Empty(t, calls)
		})
	}
}

func TestGateway_NetworkFailureIsBadGateway(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	cfg := &config.Config{StaticDir: t.TempDir()}
	gw := NewRouter(cfg, newsapi.New(newsapi.DefaultConfig(url)))

	rec := serve(gw, "GET", "/api/crawler/status")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["message"])
}

func TestGateway_TimeoutIsGatewayTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	apiCfg := newsapi.DefaultConfig(server.URL)
	apiCfg.Timeout = 50 * time.Millisecond
	gw := NewRouter(&config.Config{StaticDir: t.TempDir()}, newsapi.New(apiCfg))

	rec := serve(gw, "GET", "/api/crawler/stats")

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}

func TestGateway_RejectsMalformedPaging(t *testing.T) {
	calls := make(chan backendCall, 1)
	gw := newGateway(t, recordingBackend(calls, http.StatusOK, `{}`))

	rec := serve(gw, "GET", "/api/articles/today?size=ten")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, calls)
}

func TestGateway_MalformedPagingNamesPageFirst(t *testing.T) {
	calls := make(chan backendCall, 1)
	gw := newGateway(t, recordingBackend(calls, http.StatusOK, `{}`))

	for range 20 {
		rec := serve(gw, "GET", "/api/articles?size=ten&page=two")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message":"invalid page: two"}`, rec.Body.String())
	}
	assert.Empty(t, calls)
}

func TestGateway_RejectsMalformedRange(t *testing.T) {
	calls := make(chan backendCall, 1)
	gw := newGateway(t, recordingBackend(calls, http.StatusOK, `{}`))

	rec := serve(gw, "GET", "/api/articles/range?start=yesterday&end=2024-01-31T23:59:59")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, calls)
}

func TestGateway_ServesSinglePageApp(t *testing.T) {
	gw := newGateway(t, http.NotFoundHandler())

	asset := serve(gw, "GET", "/app.js")
	assert.Equal(t, http.StatusOK, asset.Code)
	assert.Equal(t, "console.log(1)", asset.Body.String())

	route := serve(gw, "GET", "/articles/42")
	assert.Equal(t, http.StatusOK, route.Code)
	assert.Equal(t, "<html>desk</html>", route.Body.String())

	root := serve(gw, "GET", "/")
	assert.Equal(t, http.StatusOK, root.Code)
	assert.Equal(t, "<html>desk</html>", root.Body.String())
}

func TestSPAHandler_StaysInsideDir(t *testing.T) {
	root := t.TempDir()
	static := filepath.Join(root, "dist")
	require.NoError(t, os.Mkdir(static, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(static, "index.html"), []byte("<html>desk</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "secret.txt"), []byte("secret"), 0o644))

	rec := httptest.NewRecorder()
	NewSPAHandler(static).ServeHTTP(rec, httptest.NewRequest("GET", "/../secret.txt", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "secret")
}

func TestSPAHandler_MissingIndexIsNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	NewSPAHandler(t.TempDir()).ServeHTTP(rec, httptest.NewRequest("GET", "/articles", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGateway_HostAllowList(t *testing.T) {
	calls := make(chan backendCall, 1)
	gw := newGateway(t, recordingBackend(calls, http.StatusOK, `{}`), "localhost", ".onrender.com")

	tests := []struct {
		name   string
		host   string
		path   string
		status int
	}{
		{"listed host with port", "localhost:5000", "/", http.StatusOK},
		{"subdomain wildcard", "crawling-jejy.onrender.com", "/", http.StatusOK},
		{"unlisted host", "evil.example.com", "/", http.StatusForbidden},
		{"unlisted host on api", "evil.example.com", "/api/crawler/status", http.StatusForbidden},
		{"unlisted host on unknown api route", "evil.example.com", "/api/nope", http.StatusForbidden},
		{"health is exempt", "evil.example.com", "/health", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			req.Host = tt.host
			rec := httptest.NewRecorder()
			gw.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
	assert.Empty(t, calls)
}

func TestAllowedHosts_EmptyListAllowsAll(t *testing.T) {
	h := AllowedHosts(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Host = "anything.example"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHealth(t *testing.T) {
	gw := newGateway(t, http.NotFoundHandler())

	rec := serve(gw, "GET", "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
