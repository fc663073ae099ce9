package news

import (
	"context"
	"econnews/internal/model"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type AlphaVantageSource struct {
	apiKey     string
	limit      int
	httpClient *http.Client
}

func NewAlphaVantageSource(apiKey string, limit int, timeout time.Duration) *AlphaVantageSource {
	return &AlphaVantageSource{
		apiKey:     apiKey,
		limit:      limit,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *AlphaVantageSource) Name() string {
	return "AlphaVantage"
}

func (c *AlphaVantageSource) Fetch(ctx context.Context) ([]model.Article, error) {
	url := fmt.Sprintf(
		"https://www.alphavantage.co/query?function=NEWS_SENTIMENT&topics=economy_macro&limit=%d&sort=LATEST&apikey=%s",
		c.limit, c.apiKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("alphavantage new request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("alphavantage fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alphavantage fetch: unexpected status %d", resp.StatusCode)
	}

	var raw avResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("alphavantage decode: %w", err)
	}

	feed := raw.Feed
	if c.limit > 0 && len(feed) > c.limit {
		feed = feed[:c.limit]
	}

	articles := make([]model.Article, 0, len(feed))
	for _, item := range feed {
		source := item.Source
		if source == "" {
			source = c.Name()
		}

		articles = append(articles, normalize(item.Title, item.Summary, item.URL, item.TimePublished, source))
	}

	return articles, nil
}

type avResponse struct {
	Feed []avFeedItem `json:"feed"`
}

type avFeedItem struct {
	Title         string `json:"title"`
	Summary       string `json:"summary"`
	URL           string `json:"url"`
	Source        string `json:"source"`
	TimePublished string `json:"time_published"`
}
