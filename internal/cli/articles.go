package cli

import (
	"fmt"
	"io"

	"github.com/NewsDesk/internal/dateutil"
	"github.com/NewsDesk/internal/domain"
	"github.com/NewsDesk/pkg/newsapi"
	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"
)

func newArticlesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "articles",
		Short: "Browse crawled articles",
	}
	cmd.AddCommand(
		newTodayCmd(),
		newSearchCmd(),
		newListCmd(),
		newGetCmd(),
		newRangeCmd(),
	)
	return cmd
}

func addPageFlags(cmd *cobra.Command, page *newsapi.Page) {
	cmd.Flags().IntVar(&page.Page, "page", newsapi.DefaultPage.Page, "Page number (0-based)")
	cmd.Flags().IntVar(&page.Size, "size", newsapi.DefaultPage.Size, "Page size")
}

func newTodayCmd() *cobra.Command {
	var page newsapi.Page
	cmd := &cobra.Command{
		Use:   "today",
		Short: "List today's articles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := client.Articles.TodaysArticles(cmd.Context(), page)
			return render(cmd, res, err, func(w io.Writer, resp domain.ArticlesResponse) {
				fmt.Fprintln(w, infoStyle.Render(dateutil.TodayString()))
				printArticles(w, resp)
			})
		},
	}
	addPageFlags(cmd, &page)
	return cmd
}

func newSearchCmd() *cobra.Command {
	var page newsapi.Page
	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search articles by keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := client.Articles.Search(cmd.Context(), args[0], page)
			return render(cmd, res, err, printArticles)
		},
	}
	addPageFlags(cmd, &page)
	return cmd
}

func newListCmd() *cobra.Command {
	var (
		page   newsapi.Page
		filter newsapi.ArticleFilter
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List articles filtered by category and/or source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := client.Articles.Filtered(cmd.Context(), filter, page)
			return render(cmd, res, err, printArticles)
		},
	}
	addPageFlags(cmd, &page)
	cmd.Flags().StringVar(&filter.Category, "category", "", "Category filter")
	cmd.Flags().StringVar(&filter.Source, "source", "", "Source filter")
	return cmd
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := client.Articles.ByID(cmd.Context(), args[0])
			return render(cmd, res, err, printArticle)
		},
	}
}

func newRangeCmd() *cobra.Command {
	var (
		page       newsapi.Page
		start, end string
	)
	cmd := &cobra.Command{
		Use:   "range --start <date> --end <date>",
		Short: "List articles published in a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := dateparse.ParseLocal(start)
			if err != nil {
				return fmt.Errorf("parse --start: %w", err)
			}
			to, err := dateparse.ParseLocal(end)
			if err != nil {
				return fmt.Errorf("parse --end: %w", err)
			}
			res, err := client.Articles.ByDateRange(cmd.Context(), from, to, page)
			return render(cmd, res, err, printArticles)
		},
	}
	addPageFlags(cmd, &page)
	cmd.Flags().StringVar(&start, "start", "", "Range start (any common date format)")
	cmd.Flags().StringVar(&end, "end", "", "Range end (any common date format)")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}
