package news

import (
	"context"
	"econnews/internal/model"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/mmcdole/gofeed/rss"
)

const itemSourceKey = "source"

type FeedConfig struct {
	Name  string
	URL   string
	Limit int

	// UserAgent is sent when non-empty; some publishers reject the Go default.
	UserAgent string

	// SourceFromItem takes the source label from each item's <source> element,
	// falling back to Name.
	SourceFromItem bool

	// ContentFromTitle fills Content with the title when the item has no description.
	ContentFromTitle bool
}

type RSSSource struct {
	cfg        FeedConfig
	httpClient *http.Client
}

func NewRSSSource(cfg FeedConfig, timeout time.Duration) *RSSSource {
	return &RSSSource{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (s *RSSSource) Name() string {
	return s.cfg.Name
}

func (s *RSSSource) Fetch(ctx context.Context) ([]model.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.URL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("rss new request: %w", err)
	}

	if s.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", s.cfg.UserAgent)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rss fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("rss fetch: unexpected status %d", resp.StatusCode)
	}

	parser := gofeed.NewParser()
	parser.RSSTranslator = &sourceTranslator{}

	feed, err := parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("rss parse: %w", err)
	}

	items := feed.Items
	if s.cfg.Limit > 0 && len(items) > s.cfg.Limit {
		items = items[:s.cfg.Limit]
	}

	articles := make([]model.Article, 0, len(items))
	for _, item := range items {
		articles = append(articles, s.toArticle(item))
	}

	return articles, nil
}

func (s *RSSSource) toArticle(item *gofeed.Item) model.Article {
	source := s.cfg.Name
	if s.cfg.SourceFromItem && item.Custom[itemSourceKey] != "" {
		source = item.Custom[itemSourceKey]
	}

	a := normalize(item.Title, item.Description, item.Link, item.Published, source)

	if a.Content == "" && s.cfg.ContentFromTitle {
		a.Content = a.Title
	}

	return a
}

// sourceTranslator keeps the RSS <source> element, which the default translator drops.
type sourceTranslator struct {
	gofeed.DefaultRSSTranslator
}

func (t *sourceTranslator) Translate(feed interface{}) (*gofeed.Feed, error) {
	translated, err := t.DefaultRSSTranslator.Translate(feed)
	if err != nil {
		return nil, err
	}

	raw, ok := feed.(*rss.Feed)
	if !ok || len(raw.Items) != len(translated.Items) {
		return translated, nil
	}

	for i, item := range raw.Items {
		if item.Source == nil || item.Source.Title == "" {
			continue
		}
		if translated.Items[i].Custom == nil {
			translated.Items[i].Custom = map[string]string{}
		}
		translated.Items[i].Custom[itemSourceKey] = item.Source.Title
	}

	return translated, nil
}
