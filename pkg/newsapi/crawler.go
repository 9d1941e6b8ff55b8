package newsapi

import (
	"context"
	"net/http"
)

// CrawlerAPI groups the crawler control commands. POSTs carry no body.
type CrawlerAPI struct {
	c *Client
}

// StartCrawling triggers a crawl of every configured site.
func (a *CrawlerAPI) StartCrawling(ctx context.Context) (*Result, error) {
	return a.c.do(ctx, "crawler.crawl", http.MethodPost, "/api/crawler/crawl")
}

// CrawlSource triggers a crawl of a single source.
func (a *CrawlerAPI) CrawlSource(ctx context.Context, source string) (*Result, error) {
	return a.c.do(ctx, "crawler.crawl_source", http.MethodPost, "/api/crawler/crawl/"+escapeComponent(source))
}

// Stats returns the crawler statistics summary.
func (a *CrawlerAPI) Stats(ctx context.Context) (*Result, error) {
	return a.c.do(ctx, "crawler.stats", http.MethodGet, "/api/crawler/stats")
}

// Status reports whether the crawler is running.
func (a *CrawlerAPI) Status(ctx context.Context) (*Result, error) {
	return a.c.do(ctx, "crawler.status", http.MethodGet, "/api/crawler/status")
}
