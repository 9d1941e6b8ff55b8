package newsapi

import (
	"net/url"
	"strconv"
	"strings"
)

// Page selects a page of a list endpoint. Pages are 0-based.
type Page struct {
	Page int
	Size int
}

const defaultPageSize = 20

// DefaultPage is the first page with the backend's default size.
var DefaultPage = Page{Page: 0, Size: defaultPageSize}

// size returns the page size, substituting the default for a zero value.
func (p Page) size() int {
	if p.Size == 0 {
		return defaultPageSize
	}
	return p.Size
}

// ArticleFilter narrows the filtered article listing. Empty fields are omitted.
type ArticleFilter struct {
	Category string
	Source   string
}

// escapeComponent encodes s the way encodeURIComponent does for the characters
// the backend cares about: spaces become %20, reserved characters are escaped.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// query builds a query string keeping insertion order, which url.Values does not.
type query struct {
	b strings.Builder
}

func (q *query) add(key, value string) {
	if q.b.Len() > 0 {
		q.b.WriteByte('&')
	}
	q.b.WriteString(url.QueryEscape(key))
	q.b.WriteByte('=')
	q.b.WriteString(url.QueryEscape(value))
}

// addRaw appends a value that is already encoded.
func (q *query) addRaw(key, encoded string) {
	if q.b.Len() > 0 {
		q.b.WriteByte('&')
	}
	q.b.WriteString(key)
	q.b.WriteByte('=')
	q.b.WriteString(encoded)
}

func (q *query) addPage(p Page) {
	q.add("page", strconv.Itoa(p.Page))
	q.add("size", strconv.Itoa(p.size()))
}

func (q *query) String() string {
	return q.b.String()
}
