package llm

import (
	"context"
	"econnews/internal/model"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

const DefaultDelay = 500 * time.Millisecond

// Cache stores labels keyed by article text. Cache errors are logged and treated as a miss.
type Cache interface {
	Get(ctx context.Context, title, description string) (string, bool, error)
	Set(ctx context.Context, title, description, category string) error
}

// Progress is called once per article after its label is known. index is 1-based.
type Progress func(index, total int, article model.Article)

// Categorizer labels articles one at a time with a fixed pause between requests.
type Categorizer struct {
	classifier Classifier
	delay      time.Duration
	cache      Cache
	progress   Progress
	sleep      func(ctx context.Context, d time.Duration)
}

func NewCategorizer(classifier Classifier, delay time.Duration) *Categorizer {
	return &Categorizer{
		classifier: classifier,
		delay:      delay,
		sleep:      sleepContext,
	}
}

func (c *Categorizer) WithCache(cache Cache) *Categorizer {
	c.cache = cache
	return c
}

func (c *Categorizer) OnProgress(p Progress) *Categorizer {
	c.progress = p
	return c
}

// NormalizeCategory maps a raw model answer onto the label set. Anything outside it
// becomes the catch-all label.
func NormalizeCategory(raw string) string {
	category := strings.ToLower(strings.TrimSpace(raw))
	if model.IsCategory(category) {
		return category
	}
	return model.DefaultCategory
}

// Categorize returns a labelled copy of articles. A failed request yields the error
// sentinel for that article and the batch carries on. Cancelling ctx aborts the batch
// and nothing is returned.
func (c *Categorizer) Categorize(ctx context.Context, articles []model.Article) ([]model.Article, error) {
	out := make([]model.Article, len(articles))
	requested := false

	for i, a := range articles {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("categorize interrupted at %d/%d: %w", i, len(articles), err)
		}

		req := ClassifyRequest{Title: a.Title, Description: a.Description}
		if strings.TrimSpace(req.Description) == "" {
			req.Description = a.Title
		}

		category, cached := c.lookup(ctx, req)
		if !cached {
			if requested {
				c.sleep(ctx, c.delay)
			}
			requested = true
			category = c.classify(ctx, a.ID, req)

			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("categorize interrupted at %d/%d: %w", i, len(articles), err)
			}
		}

		a.Category = category
		out[i] = a

		if c.progress != nil {
			c.progress(i+1, len(articles), a)
		}
	}

	return out, nil
}

func (c *Categorizer) classify(ctx context.Context, id string, req ClassifyRequest) string {
	raw, err := c.classifier.Classify(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return model.ErrorCategory
		}
		slog.Error("error classifying article", "article_id", id, "error", err)
		return model.ErrorCategory
	}

	category := NormalizeCategory(raw)

	if c.cache != nil {
		if err := c.cache.Set(ctx, req.Title, req.Description, category); err != nil {
			slog.Warn("error caching category", "article_id", id, "error", err)
		}
	}

	return category
}

func (c *Categorizer) lookup(ctx context.Context, req ClassifyRequest) (string, bool) {
	if c.cache == nil {
		return "", false
	}

	category, ok, err := c.cache.Get(ctx, req.Title, req.Description)
	if err != nil {
		slog.Warn("error reading category cache", "error", err)
		return "", false
	}

	if !ok || !model.IsCategory(category) {
		return "", false
	}

	return category, true
}

// Distribution counts labels, most frequent first.
func Distribution(articles []model.Article) []model.Count {
	return model.CountBy(articles, model.ByCategory)
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
