package news

import "time"

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// DefaultFeeds is the RSS priority order: most reliable first.
var DefaultFeeds = []FeedConfig{
	{
		Name:             "Google News",
		URL:              "https://news.google.com/rss/search?q=economics+when:7d&hl=en-US&gl=US&ceid=US:en",
		Limit:            20,
		SourceFromItem:   true,
		ContentFromTitle: true,
	},
	{
		Name:  "The Guardian",
		URL:   "https://www.theguardian.com/business/economics/rss",
		Limit: 15,
	},
	{
		Name:  "Reuters",
		URL:   "https://www.reutersagency.com/feed/?taxonomy=best-topics&post_type=best",
		Limit: 15,
	},
	{
		Name:      "Financial Times",
		URL:       "https://www.ft.com/economics?format=rss",
		Limit:     15,
		UserAgent: browserUserAgent,
	},
}

func NewRSSSources(feeds []FeedConfig, timeout time.Duration) []Source {
	sources := make([]Source, 0, len(feeds))
	for _, f := range feeds {
		sources = append(sources, NewRSSSource(f, timeout))
	}
	return sources
}
