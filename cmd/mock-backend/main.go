package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/NewsDesk/internal/domain"
	"github.com/NewsDesk/pkg/newsapi"
	"github.com/gorilla/mux"
)

// backend is an in-memory stand-in for the news crawler backend.
type backend struct {
	mu       sync.RWMutex
	articles []domain.Article
	nextID   int64
}

func newBackend(now time.Time) *backend {
	b := &backend{nextID: 1}
	seed := []struct {
		title, source, category string
		age                     time.Duration
	}{
		{"반도체 수출 3개월 연속 증가", "연합뉴스", "경제", 30 * time.Minute},
		{"AI 스타트업 투자 유치 활발", "네이버뉴스", "IT", 2 * time.Hour},
		{"국회 예산안 본회의 통과", "연합뉴스", "정치", 5 * time.Hour},
		{"프로야구 개막전 매진", "다음뉴스", "스포츠", 26 * time.Hour},
		{"클라우드 보안 가이드 발표", "네이버뉴스", "IT", 72 * time.Hour},
	}
	for _, s := range seed {
		b.add(s.title, s.source, s.category, now.Add(-s.age))
	}
	return b
}

func (b *backend) add(title, source, category string, published time.Time) domain.Article {
	a := domain.Article{
		ID:          b.nextID,
		Title:       title,
		Summary:     title + " 관련 기사 요약입니다.",
		Source:      source,
		Category:    category,
		Link:        fmt.Sprintf("https://news.example.com/%d", b.nextID),
		PublishedAt: published.Format(newsapi.RangeTimeLayout),
		CreatedAt:   published.Add(5 * time.Minute).Format(newsapi.RangeTimeLayout),
	}
	b.nextID++
	b.articles = append(b.articles, a)
	return a
}

func (b *backend) filter(keep func(domain.Article, time.Time) bool) []domain.Article {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var out []domain.Article
	for _, a := range b.articles {
		published, err := time.ParseInLocation(newsapi.RangeTimeLayout, a.PublishedAt, time.Local)
		if err != nil {
			continue
		}
		if keep(a, published) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PublishedAt > out[j].PublishedAt })
	return out
}

func (b *backend) router() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/articles/today", func(w http.ResponseWriter, r *http.Request) {
		today := time.Now().Format("2006-01-02")
		list := b.filter(func(a domain.Article, _ time.Time) bool { return strings.HasPrefix(a.PublishedAt, today) })
		writePage(w, r, list, "오늘의 기사")
	}).Methods("GET")

	api.HandleFunc("/articles/search", func(w http.ResponseWriter, r *http.Request) {
		q, ok := r.URL.Query()["q"]
		if !ok {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Required parameter 'q' is not present."})
			return
		}
		keyword := q[0]
		list := b.filter(func(a domain.Article, _ time.Time) bool {
			return strings.Contains(a.Title, keyword) || strings.Contains(a.Summary, keyword)
		})
		writePage(w, r, list, fmt.Sprintf("'%s' 검색 결과", keyword))
	}).Methods("GET")

	api.HandleFunc("/articles/range", func(w http.ResponseWriter, r *http.Request) {
		start, err1 := time.ParseInLocation(newsapi.RangeTimeLayout, r.URL.Query().Get("start"), time.Local)
		end, err2 := time.ParseInLocation(newsapi.RangeTimeLayout, r.URL.Query().Get("end"), time.Local)
		if err1 != nil || err2 != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "start and end must be ISO date-times"})
			return
		}
		list := b.filter(func(_ domain.Article, p time.Time) bool { return !p.Before(start) && !p.After(end) })
		writePage(w, r, list, "기간별 기사")
	}).Methods("GET")

	api.HandleFunc("/articles/categories", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, b.distinct(func(a domain.Article) (string, bool) { return a.Category, true }))
	}).Methods("GET")

	api.HandleFunc("/articles/sources", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, b.distinct(func(a domain.Article) (string, bool) { return a.Source, true }))
	}).Methods("GET")

	api.HandleFunc("/articles/sources/{source}/categories", func(w http.ResponseWriter, r *http.Request) {
		source := mux.Vars(r)["source"]
		writeJSON(w, http.StatusOK, b.distinct(func(a domain.Article) (string, bool) { return a.Category, a.Source == source }))
	}).Methods("GET")

	api.HandleFunc("/articles/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid article id"})
			return
		}
		list := b.filter(func(a domain.Article, _ time.Time) bool { return a.ID == id })
		if len(list) == 0 {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": fmt.Sprintf("Article not found: %d", id)})
			return
		}
		writeJSON(w, http.StatusOK, list[0])
	}).Methods("GET")

	api.HandleFunc("/articles", func(w http.ResponseWriter, r *http.Request) {
		category, source := r.URL.Query().Get("category"), r.URL.Query().Get("source")
		list := b.filter(func(a domain.Article, _ time.Time) bool {
			return (category == "" || a.Category == category) && (source == "" || a.Source == source)
		})
		writePage(w, r, list, "필터링된 기사")
	}).Methods("GET")

	api.HandleFunc("/crawler/crawl", func(w http.ResponseWriter, _ *http.Request) {
		b.mu.Lock()
		b.add("속보: 새로 수집된 기사", "연합뉴스", "사회", time.Now())
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "크롤링이 완료되었습니다.", "savedCount": 1})
	}).Methods("POST")

	api.HandleFunc("/crawler/crawl/{source}", func(w http.ResponseWriter, r *http.Request) {
		source := mux.Vars(r)["source"]
		b.mu.Lock()
		b.add(source+" 최신 기사", source, "사회", time.Now())
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": source + " 크롤링이 완료되었습니다.", "articleCount": 1})
	}).Methods("POST")

	api.HandleFunc("/crawler/stats", func(w http.ResponseWriter, _ *http.Request) {
		b.mu.RLock()
		total := len(b.articles)
		b.mu.RUnlock()
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "stats": fmt.Sprintf("전체 기사: %d개", total)})
	}).Methods("GET")

	api.HandleFunc("/crawler/status", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "status": "running", "message": "크롤러가 정상 동작 중입니다."})
	}).Methods("GET")

	return r
}

func (b *backend) distinct(pick func(domain.Article) (string, bool)) []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	seen := make(map[string]bool)
	out := []string{}
	for _, a := range b.articles {
		v, ok := pick(a)
		if !ok || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func writePage(w http.ResponseWriter, r *http.Request, list []domain.Article, message string) {
	page, size := 0, 20
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v >= 0 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("size")); err == nil && v > 0 {
		size = v
	}

	totalPages := len(list) / size
	if len(list)%size != 0 {
		totalPages++
	}
	// Pages past the end are empty; page*size only runs for pages in range.
	from, to := len(list), len(list)
	if page < totalPages {
		from = page * size
		to = from + min(size, len(list)-from)
	}
	writeJSON(w, http.StatusOK, domain.ArticlesResponse{
		Date:        time.Now().Format("2006-01-02"),
		Message:     message,
		TotalCount:  len(list),
		CurrentPage: page,
		TotalPages:  totalPages,
		Articles:    append([]domain.Article{}, list[from:to]...),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func main() {
	addr := ":8080"
	if port := os.Getenv("MOCK_BACKEND_PORT"); port != "" {
		addr = ":" + port
	}

	slog.Info("Mock news backend running", "address", addr)
	if err := http.ListenAndServe(addr, newBackend(time.Now()).router()); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
