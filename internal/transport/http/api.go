package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/NewsDesk/pkg/newsapi"
	"github.com/gorilla/mux"
)

// APIHandler serves the backend's routes to the browser by calling the
// backend through the access layer. Statuses and bodies pass through as-is.
type APIHandler struct {
	client *newsapi.Client
}

func NewAPIHandler(client *newsapi.Client) *APIHandler {
	return &APIHandler{client: client}
}

// Router returns a standalone router for everything under /api. Unknown
// routes and wrong methods get JSON 404 and 405 answers instead of reaching
// the single-page app.
func (h *APIHandler) Router() *mux.Router {
	r := mux.NewRouter().UseEncodedPath()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusNotFound, "No route for "+r.URL.Path)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusMethodNotAllowed, r.Method+" not allowed on "+r.URL.Path)
	})
	h.Register(r.PathPrefix("/api").Subrouter())
	return r
}

// Register mounts the handlers on a router rooted at /api.
func (h *APIHandler) Register(r *mux.Router) {
	r.HandleFunc("/articles/today", h.todaysArticles).Methods("GET")
	r.HandleFunc("/articles/search", h.search).Methods("GET")
	r.HandleFunc("/articles/range", h.byDateRange).Methods("GET")
	r.HandleFunc("/articles/categories", h.categories).Methods("GET")
	r.HandleFunc("/articles/sources", h.sources).Methods("GET")
	r.HandleFunc("/articles/sources/{source}/categories", h.categoriesBySource).Methods("GET")
	r.HandleFunc("/articles/{id}", h.byID).Methods("GET")
	r.HandleFunc("/articles", h.filtered).Methods("GET")

	r.HandleFunc("/crawler/crawl", h.startCrawling).Methods("POST")
	r.HandleFunc("/crawler/crawl/{source}", h.crawlSource).Methods("POST")
	r.HandleFunc("/crawler/stats", h.stats).Methods("GET")
	r.HandleFunc("/crawler/status", h.status).Methods("GET")
}

func (h *APIHandler) todaysArticles(w http.ResponseWriter, r *http.Request) {
	page, ok := pageParams(w, r)
	if !ok {
		return
	}
	relay(w, r)(h.client.Articles.TodaysArticles(r.Context(), page))
}

func (h *APIHandler) search(w http.ResponseWriter, r *http.Request) {
	page, ok := pageParams(w, r)
	if !ok {
		return
	}
	relay(w, r)(h.client.Articles.Search(r.Context(), r.URL.Query().Get("q"), page))
}

func (h *APIHandler) filtered(w http.ResponseWriter, r *http.Request) {
	page, ok := pageParams(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	filter := newsapi.ArticleFilter{
		Category: q.Get("category"),
		Source:   q.Get("source"),
	}
	relay(w, r)(h.client.Articles.Filtered(r.Context(), filter, page))
}

func (h *APIHandler) byDateRange(w http.ResponseWriter, r *http.Request) {
	page, ok := pageParams(w, r)
	if !ok {
		return
	}
	start, err := parseRangeTime(r.URL.Query().Get("start"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid start: "+err.Error())
		return
	}
	end, err := parseRangeTime(r.URL.Query().Get("end"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid end: "+err.Error())
		return
	}
	relay(w, r)(h.client.Articles.ByDateRange(r.Context(), start, end, page))
}

func (h *APIHandler) byID(w http.ResponseWriter, r *http.Request) {
	relay(w, r)(h.client.Articles.ByID(r.Context(), mux.Vars(r)["id"]))
}

func (h *APIHandler) categories(w http.ResponseWriter, r *http.Request) {
	relay(w, r)(h.client.Articles.Categories(r.Context()))
}

func (h *APIHandler) sources(w http.ResponseWriter, r *http.Request) {
	relay(w, r)(h.client.Articles.Sources(r.Context()))
}

func (h *APIHandler) categoriesBySource(w http.ResponseWriter, r *http.Request) {
	source, ok := pathVar(w, r, "source")
	if !ok {
		return
	}
	relay(w, r)(h.client.Articles.CategoriesBySource(r.Context(), source))
}

func (h *APIHandler) startCrawling(w http.ResponseWriter, r *http.Request) {
	relay(w, r)(h.client.Crawler.StartCrawling(r.Context()))
}

func (h *APIHandler) crawlSource(w http.ResponseWriter, r *http.Request) {
	source, ok := pathVar(w, r, "source")
	if !ok {
		return
	}
	relay(w, r)(h.client.Crawler.CrawlSource(r.Context(), source))
}

func (h *APIHandler) stats(w http.ResponseWriter, r *http.Request) {
	relay(w, r)(h.client.Crawler.Stats(r.Context()))
}

func (h *APIHandler) status(w http.ResponseWriter, r *http.Request) {
	relay(w, r)(h.client.Crawler.Status(r.Context()))
}

// pageParams reads page and size, leaving absent ones at their defaults.
func pageParams(w http.ResponseWriter, r *http.Request) (newsapi.Page, bool) {
	page := newsapi.DefaultPage
	q := r.URL.Query()
	params := []struct {
		key string
		dst *int
	}{
		{"page", &page.Page},
		{"size", &page.Size},
	}
	for _, p := range params {
		raw := q.Get(p.key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid "+p.key+": "+raw)
			return page, false
		}
		*p.dst = n
	}
	return page, true
}

// pathVar returns a decoded path variable; the router matches encoded paths.
func pathVar(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	value, err := url.PathUnescape(mux.Vars(r)[name])
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid "+name)
		return "", false
	}
	return value, true
}

func parseRangeTime(raw string) (time.Time, error) {
	t, err := time.Parse(newsapi.RangeTimeLayout, raw)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// relay writes an access layer result, or its failure, to w.
func relay(w http.ResponseWriter, r *http.Request) func(*newsapi.Result, error) {
	return func(res *newsapi.Result, err error) {
		if err != nil {
			writeFailure(w, r, err)
			return
		}
		writeBody(w, res.StatusCode, res.Header.Get("Content-Type"), res.Body)
	}
}

func writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *newsapi.Error
	if !errors.As(err, &apiErr) {
		slog.Error("Unexpected gateway error", "path", r.URL.Path, "error", err)
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	switch apiErr.Kind {
	case newsapi.KindHTTP:
		if len(apiErr.Body) == 0 {
			writeMessage(w, apiErr.StatusCode, apiErr.Message)
			return
		}
		writeBody(w, apiErr.StatusCode, apiErr.ContentType, apiErr.Body)
	case newsapi.KindTimeout:
		writeMessage(w, http.StatusGatewayTimeout, apiErr.Message)
	default:
		writeMessage(w, http.StatusBadGateway, apiErr.Message)
	}
}

func writeBody(w http.ResponseWriter, status int, contentType string, body []byte) {
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		slog.Debug("Failed to write response body", "error", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": message}); err != nil {
		slog.Debug("Failed to encode error response", "error", err)
	}
}
