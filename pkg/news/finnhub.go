package news

import (
	"context"
	"econnews/internal/model"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

type FinnHubSource struct {
	client *finnhub.DefaultApiService
	limit  int
}

func NewFinnHubSource(apiKey string, limit int) *FinnHubSource {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnHubSource{client: client, limit: limit}
}

func (c *FinnHubSource) Name() string {
	return "FinnHub"
}

func (c *FinnHubSource) Fetch(ctx context.Context) ([]model.Article, error) {
	res, _, err := c.client.MarketNews(ctx).Category("general").Execute()
	if err != nil {
		return nil, err
	}

	if c.limit > 0 && len(res) > c.limit {
		res = res[:c.limit]
	}

	articles := make([]model.Article, 0, len(res))

	for _, news := range res {
		var title, summary, url, date string
		source := c.Name()

		if news.Headline != nil {
			title = *news.Headline
		}

		if news.Summary != nil {
			summary = *news.Summary
		}

		if news.Url != nil {
			url = *news.Url
		}

		if news.Datetime != nil {
			date = time.Unix(*news.Datetime, 0).UTC().Format(time.RFC1123Z)
		}

		if news.Source != nil && *news.Source != "" {
			source = *news.Source
		}

		articles = append(articles, normalize(title, summary, url, date, source))
	}

	return articles, nil
}
