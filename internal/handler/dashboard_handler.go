package handler

import (
	"econnews/internal/dashboard"
	"econnews/internal/model"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

const datasetMissingMessage = "Data file not found! Please run the collector and categorizer first."

type DatasetLoader interface {
	Load() (*dashboard.Dataset, error)
}

type DashboardHandler struct {
	loader    DatasetLoader
	modelName string
}

func NewDashboardHandler(loader DatasetLoader, modelName string) *DashboardHandler {
	return &DashboardHandler{loader: loader, modelName: modelName}
}

func (h *DashboardHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.GetPage)
	r.GET("/api/dashboard", h.GetDashboard)
	r.GET("/api/articles", h.GetArticles)
	r.GET("/api/filters", h.GetFilters)
	r.GET("/health", h.GetHealth)
}

func (h *DashboardHandler) GetPage(c *gin.Context) {
	dataset, ok := h.load(c, true)
	if !ok {
		return
	}

	sel := parseSelection(c)
	view := dataset.Build(sel, c.Query("q"), h.modelName)

	c.HTML(http.StatusOK, "dashboard.html", newPageData(dataset, sel, view))
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	dataset, ok := h.load(c, false)
	if !ok {
		return
	}

	view := dataset.Build(parseSelection(c), c.Query("q"), h.modelName)

	c.JSON(http.StatusOK, DashboardResponse{
		Metrics: MetricsResponse{
			Articles:   view.Metrics.Articles,
			Categories: view.Metrics.Categories,
			Sources:    view.Metrics.Sources,
			Model:      view.Metrics.Model,
		},
		CategoryBreakdown: toShareResponses(view.Breakdown),
		TopSources:        toShareResponses(view.TopSources),
		Search:            view.Search,
		Articles:          toArticleResponses(view.Results),
		Total:             len(view.Results),
	})
}

func (h *DashboardHandler) GetArticles(c *gin.Context) {
	dataset, ok := h.load(c, false)
	if !ok {
		return
	}

	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	results := dashboard.Search(dataset.Filter(parseSelection(c)), c.Query("q"))
	total := len(results)

	start := min(offset, total)
	end := min(start+limit, total)

	c.JSON(http.StatusOK, ArticlesResponse{
		Articles: toArticleResponses(results[start:end]),
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	})
}

func (h *DashboardHandler) GetFilters(c *gin.Context) {
	dataset, ok := h.load(c, false)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, FiltersResponse{
		Categories: dataset.Categories(),
		Sources:    dataset.Sources(),
	})
}

func (h *DashboardHandler) GetHealth(c *gin.Context) {
	dataset, err := h.loader.Load()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"dataset": "unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"dataset":  "loaded",
		"articles": dataset.Len(),
	})
}

// load writes the error response itself and reports false when the dataset is
// unusable. Nothing else is rendered in that case.
func (h *DashboardHandler) load(c *gin.Context, page bool) (*dashboard.Dataset, bool) {
	dataset, err := h.loader.Load()
	if err == nil {
		return dataset, true
	}

	status := http.StatusInternalServerError
	message := "Could not load the dataset."
	if errors.Is(err, dashboard.ErrDatasetNotFound) {
		status = http.StatusServiceUnavailable
		message = datasetMissingMessage
	}

	slog.Error("error loading dataset", "error", err)

	if page {
		c.HTML(status, "error.html", gin.H{"Message": message})
	} else {
		c.JSON(status, gin.H{"error": message})
	}

	return nil, false
}

// parseSelection reads repeated category/source params. Without applied=1 an absent
// param means "all"; with it, the listed values are the whole selection.
func parseSelection(c *gin.Context) dashboard.Selection {
	applied := c.Query("applied") != ""

	categories, hasCategories := c.GetQueryArray("category")
	sources, hasSources := c.GetQueryArray("source")

	return dashboard.Selection{
		AllCategories: !applied && !hasCategories,
		Categories:    nonEmpty(categories),
		AllSources:    !applied && !hasSources,
		Sources:       nonEmpty(sources),
	}
}

func nonEmpty(values []string) []string {
	return lo.Filter(values, func(v string, _ int) bool { return strings.TrimSpace(v) != "" })
}

func toArticleResponses(articles []model.Article) []ArticleResponse {
	return lo.Map(articles, func(a model.Article, _ int) ArticleResponse {
		return ArticleResponse{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Content:     a.Content,
			Source:      a.Source,
			Date:        a.Date,
			Link:        a.Link,
			ScrapedDate: a.ScrapedDate,
			Category:    a.Category,
		}
	})
}

func toShareResponses(shares []dashboard.Share) []ShareResponse {
	return lo.Map(shares, func(s dashboard.Share, _ int) ShareResponse {
		return ShareResponse{Name: s.Name, Count: s.Count, Percentage: s.Percentage}
	})
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	param := c.Query(name)

	if param == "" {
		return defaultValue
	}

	parsedValue, err := strconv.Atoi(param)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", param, "error", err)
		return defaultValue
	}

	return parsedValue
}

func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 50
		maxLimit     = 500
	)

	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}

func getQueryOffset(c *gin.Context) int {
	offset := getQueryInt("offset", 0, c)
	if offset < 0 {
		slog.Warn("invalid query parameter, using default", "param", "offset", "value", offset, "default", 0)
		return 0
	}
	return offset
}
