package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/NewsDesk/internal/dateutil"
	"github.com/NewsDesk/internal/domain"
	"github.com/NewsDesk/pkg/newsapi"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const (
	colorPrimary = "#7D56F4"
	colorSuccess = "#04B575"
	colorError   = "#FF0000"
	colorInfo    = "#626262"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorPrimary))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorSuccess))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorError))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorInfo))

	headlineStyle = lipgloss.NewStyle().Bold(true)
)

// render prints a call's outcome. JSON output writes the backend body as
// received; pretty output decodes it into T and hands it to pretty.
func render[T any](cmd *cobra.Command, res *newsapi.Result, err error, pretty func(io.Writer, T)) error {
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if flagOutput == outputJSON {
		_, err := fmt.Fprintln(out, string(res.Body))
		return err
	}

	v, err := newsapi.Decode[T](res, nil)
	if err != nil {
		return err
	}
	pretty(out, v)
	return nil
}

func printArticles(w io.Writer, resp domain.ArticlesResponse) {
	heading := fmt.Sprintf("%d articles", resp.TotalCount)
	if resp.Date != "" {
		heading = resp.Date + " · " + heading
	}
	fmt.Fprintln(w, titleStyle.Render(heading))
	if resp.Message != "" {
		fmt.Fprintln(w, infoStyle.Render(resp.Message))
	}

	for _, a := range resp.Articles {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s %s\n", infoStyle.Render(fmt.Sprintf("[%d]", a.ID)), headlineStyle.Render(a.Title))
		fmt.Fprintf(w, "    %s\n", infoStyle.Render(articleMeta(a)))
		if a.Summary != "" {
			fmt.Fprintf(w, "    %s\n", a.Summary)
		}
	}

	if resp.TotalPages > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, infoStyle.Render(fmt.Sprintf("page %d/%d", resp.CurrentPage+1, resp.TotalPages)))
	}
}

func printArticle(w io.Writer, a domain.Article) {
	fmt.Fprintln(w, titleStyle.Render(a.Title))
	fmt.Fprintln(w, infoStyle.Render(articleMeta(a)))
	if dateutil.IsValidDate(a.PublishedAt) {
		fmt.Fprintln(w, infoStyle.Render(dateutil.FormatDate(a.PublishedAt)))
	}
	if a.Summary != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, a.Summary)
	}
	if a.Link != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, a.Link)
	}
}

func articleMeta(a domain.Article) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{a.Source, a.Category} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if dateutil.IsValidDate(a.PublishedAt) {
		parts = append(parts, dateutil.FormatRelativeTime(a.PublishedAt))
	}
	return strings.Join(parts, " | ")
}

func printList(title string) func(io.Writer, []string) {
	return func(w io.Writer, items []string) {
		fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s (%d)", title, len(items))))
		for _, item := range items {
			fmt.Fprintf(w, "  - %s\n", item)
		}
	}
}

func printCrawlResult(w io.Writer, r domain.CrawlResult) {
	style := successStyle
	if !r.Success {
		style = errorStyle
	}
	fmt.Fprintln(w, style.Render(r.Message))
	switch {
	case r.SavedCount != nil:
		fmt.Fprintf(w, "saved: %d\n", *r.SavedCount)
	case r.ArticleCount != nil:
		fmt.Fprintf(w, "articles: %d\n", *r.ArticleCount)
	}
}

func printStats(w io.Writer, s domain.CrawlerStats) {
	fmt.Fprintln(w, titleStyle.Render("Crawler stats"))
	fmt.Fprintln(w, s.Stats)
}

func printStatus(w io.Writer, s domain.CrawlerStatus) {
	style := successStyle
	if !s.Success {
		style = errorStyle
	}
	fmt.Fprintf(w, "%s %s\n", titleStyle.Render("Crawler:"), style.Render(s.Status))
	if s.Message != "" {
		fmt.Fprintln(w, infoStyle.Render(s.Message))
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
