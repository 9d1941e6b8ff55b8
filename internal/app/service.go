package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/NewsDesk/internal/domain"
	"github.com/NewsDesk/pkg/newsapi"
	"golang.org/x/sync/errgroup"
)

// Overview is the desk landing data: the filter choices and crawler health.
type Overview struct {
	Categories []string
	Sources    []string
	Stats      domain.CrawlerStats
	Status     domain.CrawlerStatus
}

type DeskService struct {
	client *newsapi.Client
}

func NewDeskService(client *newsapi.Client) *DeskService {
	return &DeskService{client: client}
}

// Overview loads categories, sources, stats and status concurrently.
// Every call runs to completion even if another fails; the first failure is
// returned once all have settled.
func (s *DeskService) Overview(ctx context.Context) (*Overview, error) {
	start := time.Now()
	var (
		out Overview
		g   errgroup.Group
	)

	g.Go(func() error {
		categories, err := newsapi.Decode[[]string](s.client.Articles.Categories(ctx))
		out.Categories = categories
		return err
	})
	g.Go(func() error {
		sources, err := newsapi.Decode[[]string](s.client.Articles.Sources(ctx))
		out.Sources = sources
		return err
	})
	g.Go(func() error {
		stats, err := newsapi.Decode[domain.CrawlerStats](s.client.Crawler.Stats(ctx))
		out.Stats = stats
		return err
	})
	g.Go(func() error {
		status, err := newsapi.Decode[domain.CrawlerStatus](s.client.Crawler.Status(ctx))
		out.Status = status
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Debug("Overview loaded",
		"categories", len(out.Categories),
		"sources", len(out.Sources),
		"status", out.Status.Status,
		"duration", time.Since(start))
	return &out, nil
}
