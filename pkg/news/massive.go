package news

import (
	"context"
	"econnews/internal/model"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type MassiveSource struct {
	apiKey     string
	limit      int
	httpClient *http.Client
}

func NewMassiveSource(apiKey string, limit int, timeout time.Duration) *MassiveSource {
	return &MassiveSource{
		apiKey:     apiKey,
		limit:      limit,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *MassiveSource) Name() string {
	return "Massive"
}

func (c *MassiveSource) Fetch(ctx context.Context) ([]model.Article, error) {
	url := fmt.Sprintf(
		"https://api.massive.com/v2/reference/news?limit=%d&order=desc&sort=published_utc&apiKey=%s",
		c.limit, c.apiKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("massive new request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("massive fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("massive fetch: unexpected status %d", resp.StatusCode)
	}

	var raw massiveResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("massive decode: %w", err)
	}

	results := raw.Results
	if c.limit > 0 && len(results) > c.limit {
		results = results[:c.limit]
	}

	articles := make([]model.Article, 0, len(results))
	for _, item := range results {
		source := item.Publisher.Name
		if source == "" {
			source = c.Name()
		}

		articles = append(articles, normalize(item.Title, item.Description, item.ArticleURL, item.PublishedUTC, source))
	}

	return articles, nil
}

type massiveResponse struct {
	Results []massiveResult `json:"results"`
}

type massiveResult struct {
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	ArticleURL   string           `json:"article_url"`
	PublishedUTC string           `json:"published_utc"`
	Publisher    massivePublisher `json:"publisher"`
}

type massivePublisher struct {
	Name string `json:"name"`
}
