package handler

type ArticleResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Source      string `json:"source"`
	Date        string `json:"date"`
	Link        string `json:"link"`
	ScrapedDate string `json:"scraped_date"`
	Category    string `json:"llm_category"`
}

type MetricsResponse struct {
	Articles   int    `json:"articles"`
	Categories int    `json:"categories"`
	Sources    int    `json:"sources"`
	Model      string `json:"model"`
}

type ShareResponse struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type DashboardResponse struct {
	Metrics           MetricsResponse   `json:"metrics"`
	CategoryBreakdown []ShareResponse   `json:"category_breakdown"`
	TopSources        []ShareResponse   `json:"top_sources"`
	Search            string            `json:"search"`
	Articles          []ArticleResponse `json:"articles"`
	Total             int               `json:"total"`
}

type ArticlesResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Total    int               `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

type FiltersResponse struct {
	Categories []string `json:"categories"`
	Sources    []string `json:"sources"`
}
