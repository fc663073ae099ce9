package news

import (
	"context"
	"econnews/internal/model"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"
)

const (
	DefaultThreshold = 30
	DefaultPause     = 2 * time.Second
)

// Collector queries sources in priority order and stops once it holds Threshold
// articles. A failing source contributes nothing; nothing is retried.
type Collector struct {
	sources   []Source
	threshold int
	pause     time.Duration
	now       func() time.Time
	sleep     func(ctx context.Context, d time.Duration)
}

func NewCollector(sources []Source, threshold int, pause time.Duration) *Collector {
	return &Collector{
		sources:   sources,
		threshold: threshold,
		pause:     pause,
		now:       time.Now,
		sleep:     sleepContext,
	}
}

// Collect returns the gathered articles in source order. A cancelled ctx discards
// everything collected so far.
func (c *Collector) Collect(ctx context.Context) ([]model.Article, error) {
	var all []model.Article

	for _, src := range c.sources {
		if ctx.Err() != nil {
			break
		}

		name := src.Name()
		slog.Info("fetching source", "source", name)

		articles, err := src.Fetch(ctx)
		if err != nil {
			slog.Error("error fetching source", "source", name, "error", err)
		} else {
			scraped := c.now().Format(model.ScrapedDateLayout)
			for i := range articles {
				articles[i].ScrapedDate = scraped
			}
			slog.Info("source fetched", "source", name, "count", len(articles))
			all = append(all, articles...)
		}

		c.sleep(ctx, c.pause)

		if len(all) >= c.threshold {
			slog.Info("collection threshold reached", "count", len(all), "threshold", c.threshold)
			break
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("collect interrupted: %w", err)
	}

	return all, nil
}

// AssignIDs returns a copy of articles numbered R001, R002, ... in order.
func AssignIDs(articles []model.Article) []model.Article {
	return lo.Map(articles, func(a model.Article, i int) model.Article {
		a.ID = model.FormatID(i + 1)
		return a
	})
}

func sleepContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
