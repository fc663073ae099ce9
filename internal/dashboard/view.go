package dashboard

import (
	"econnews/internal/model"
	"math"
	"slices"
	"strings"

	"github.com/samber/lo"
)

const TopSourceLimit = 10

// Selection is the filter state. A nil slice with All unset selects nothing.
type Selection struct {
	AllCategories bool
	Categories    []string
	AllSources    bool
	Sources       []string
}

func SelectAll() Selection {
	return Selection{AllCategories: true, AllSources: true}
}

type Metrics struct {
	Articles   int
	Categories int
	Sources    int
	Model      string
}

type Share struct {
	Name       string
	Count      int
	Percentage float64
}

// View is everything the dashboard renders for one filter state.
type View struct {
	Metrics    Metrics
	Breakdown  []Share
	TopSources []Share
	Results    []model.Article
	Search     string
}

// Filter returns the articles matching both filters, in dataset order.
func (d *Dataset) Filter(sel Selection) []model.Article {
	return lo.Filter(d.articles, func(a model.Article, _ int) bool {
		return (sel.AllCategories || slices.Contains(sel.Categories, a.Category)) &&
			(sel.AllSources || slices.Contains(sel.Sources, a.Source))
	})
}

// Search keeps articles whose title or description contains term, ignoring case.
// An empty term keeps everything.
func Search(articles []model.Article, term string) []model.Article {
	term = strings.TrimSpace(term)
	if term == "" {
		return articles
	}

	needle := strings.ToLower(term)
	return lo.Filter(articles, func(a model.Article, _ int) bool {
		return strings.Contains(strings.ToLower(a.Title), needle) ||
			strings.Contains(strings.ToLower(a.Description), needle)
	})
}

func Summarize(filtered []model.Article, modelName string) Metrics {
	return Metrics{
		Articles:   len(filtered),
		Categories: len(lo.Uniq(lo.Map(filtered, func(a model.Article, _ int) string { return a.Category }))),
		Sources:    len(lo.Uniq(lo.Map(filtered, func(a model.Article, _ int) string { return a.Source }))),
		Model:      modelName,
	}
}

func CategoryBreakdown(filtered []model.Article) []Share {
	return shares(model.CountBy(filtered, model.ByCategory), len(filtered))
}

func TopSources(filtered []model.Article, n int) []Share {
	counts := model.CountBy(filtered, model.BySource)
	if len(counts) > n {
		counts = counts[:n]
	}
	return shares(counts, len(filtered))
}

// Build computes the full view. It never mutates the dataset, so the same
// selection always yields the same view.
func (d *Dataset) Build(sel Selection, search, modelName string) View {
	filtered := d.Filter(sel)

	return View{
		Metrics:    Summarize(filtered, modelName),
		Breakdown:  CategoryBreakdown(filtered),
		TopSources: TopSources(filtered, TopSourceLimit),
		Results:    Search(filtered, search),
		Search:     strings.TrimSpace(search),
	}
}

func shares(counts []model.Count, total int) []Share {
	return lo.Map(counts, func(c model.Count, _ int) Share {
		return Share{Name: c.Value, Count: c.Count, Percentage: percentage(c.Count, total)}
	})
}

func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*1000) / 10
}

func sortedUnique(articles []model.Article, key func(model.Article) string) []string {
	values := lo.Uniq(lo.Map(articles, func(a model.Article, _ int) string { return key(a) }))
	slices.Sort(values)
	return values
}
