package newsapi

import (
	"context"
	"net/http"
	"time"
)

// RangeTimeLayout is the ISO local date-time format the range endpoint binds.
const RangeTimeLayout = "2006-01-02T15:04:05"

// ArticleAPI groups the read-only article queries.
type ArticleAPI struct {
	c *Client
}

// TodaysArticles lists today's articles.
func (a *ArticleAPI) TodaysArticles(ctx context.Context, page Page) (*Result, error) {
	var q query
	q.addPage(page)
	return a.c.do(ctx, "articles.today", http.MethodGet, "/api/articles/today?"+q.String())
}

// Search runs a keyword search. The keyword is sent as given, including empty.
func (a *ArticleAPI) Search(ctx context.Context, keyword string, page Page) (*Result, error) {
	var q query
	q.addRaw("q", escapeComponent(keyword))
	q.addPage(page)
	return a.c.do(ctx, "articles.search", http.MethodGet, "/api/articles/search?"+q.String())
}

// Filtered lists articles by category and/or source.
func (a *ArticleAPI) Filtered(ctx context.Context, filter ArticleFilter, page Page) (*Result, error) {
	var q query
	q.addPage(page)
	if filter.Category != "" {
		q.add("category", filter.Category)
	}
	if filter.Source != "" {
		q.add("source", filter.Source)
	}
	return a.c.do(ctx, "articles.filtered", http.MethodGet, "/api/articles?"+q.String())
}

// ByDateRange lists articles published between start and end.
func (a *ArticleAPI) ByDateRange(ctx context.Context, start, end time.Time, page Page) (*Result, error) {
	var q query
	q.add("start", start.Format(RangeTimeLayout))
	q.add("end", end.Format(RangeTimeLayout))
	q.addPage(page)
	return a.c.do(ctx, "articles.range", http.MethodGet, "/api/articles/range?"+q.String())
}

// ByID fetches a single article. The id is inserted into the path verbatim.
func (a *ArticleAPI) ByID(ctx context.Context, id string) (*Result, error) {
	return a.c.do(ctx, "articles.get", http.MethodGet, "/api/articles/"+id)
}

// Categories lists every known category.
func (a *ArticleAPI) Categories(ctx context.Context) (*Result, error) {
	return a.c.do(ctx, "articles.categories", http.MethodGet, "/api/articles/categories")
}

// Sources lists every known source.
func (a *ArticleAPI) Sources(ctx context.Context) (*Result, error) {
	return a.c.do(ctx, "articles.sources", http.MethodGet, "/api/articles/sources")
}

// CategoriesBySource lists the categories published by one source.
func (a *ArticleAPI) CategoriesBySource(ctx context.Context, source string) (*Result, error) {
	return a.c.do(ctx, "articles.source_categories", http.MethodGet,
		"/api/articles/sources/"+escapeComponent(source)+"/categories")
}
