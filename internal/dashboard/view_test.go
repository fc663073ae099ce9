package dashboard

import (
	"econnews/internal/model"
	"testing"

	"github.com/go-playground/assert/v2"
)

func sampleDataset() *Dataset {
	return NewDataset([]model.Article{
		{ID: "R001", Title: "Fed Raises Interest Rates", Description: "The central bank acted.", Source: "Reuters", Category: "monetary_policy"},
		{ID: "R002", Title: "Oil Prices Surge", Description: "Brent crude jumps.", Source: "Bloomberg", Category: "commodities"},
		{ID: "R003", Title: "Jobs report", Description: "Unemployment falls; INTEREST in hiring grows.", Source: "Reuters", Category: "employment"},
		{ID: "R004", Title: "Markets wobble", Description: "", Source: "The Guardian", Category: model.ErrorCategory},
	})
}

func TestFilter_DefaultsToAll(t *testing.T) {
	d := sampleDataset()

	assert.Equal(t, 4, len(d.Filter(SelectAll())))
}

func TestFilter_Conjunction(t *testing.T) {
	d := sampleDataset()

	got := d.Filter(Selection{Categories: []string{"monetary_policy", "commodities"}, Sources: []string{"Reuters"}})

	assert.Equal(t, 1, len(got))
	assert.Equal(t, "R001", got[0].ID)
}

func TestFilter_EmptySelectionYieldsNothing(t *testing.T) {
	d := sampleDataset()

	view := d.Build(Selection{AllSources: true}, "", "GPT-3.5")

	assert.Equal(t, 0, len(view.Results))
	assert.Equal(t, Metrics{Model: "GPT-3.5"}, view.Metrics)
	assert.Equal(t, 0, len(view.Breakdown))
	assert.Equal(t, 0, len(view.TopSources))

	view = d.Build(Selection{AllCategories: true, Sources: []string{}}, "oil", "GPT-3.5")
	assert.Equal(t, 0, view.Metrics.Articles)
	assert.Equal(t, 0, len(view.Results))
}

func TestSearch_Scenario(t *testing.T) {
	articles := []model.Article{
		{ID: "R001", Title: "Fed Raises Interest Rates"},
		{ID: "R002", Title: "Oil Prices Surge"},
	}

	got := Search(articles, "interest")

	assert.Equal(t, 1, len(got))
	assert.Equal(t, "Fed Raises Interest Rates", got[0].Title)
}

func TestSearch_MatchesDescriptionCaseInsensitive(t *testing.T) {
	got := Search(sampleDataset().Articles(), "  Interest ")

	assert.Equal(t, 2, len(got))
	assert.Equal(t, "R001", got[0].ID)
	assert.Equal(t, "R003", got[1].ID)
}

func TestSearch_EmptyTermKeepsAll(t *testing.T) {
	articles := sampleDataset().Articles()

	assert.Equal(t, articles, Search(articles, ""))
}

func TestTopSources_TieBreakFirstSeen(t *testing.T) {
	var articles []model.Article
	add := func(source string, n int) {
		for i := 0; i < n; i++ {
			articles = append(articles, model.Article{Source: source, Category: "trade"})
		}
	}
	add("A", 5)
	add("B", 5)
	add("C", 3)

	top := TopSources(articles, TopSourceLimit)

	assert.Equal(t, 3, len(top))
	assert.Equal(t, "A", top[0].Name)
	assert.Equal(t, "B", top[1].Name)
	assert.Equal(t, "C", top[2].Name)
}

func TestTopSources_CapsAtN(t *testing.T) {
	var articles []model.Article
	for i := 0; i < 12; i++ {
		articles = append(articles, model.Article{Source: model.FormatID(i)})
	}

	assert.Equal(t, TopSourceLimit, len(TopSources(articles, TopSourceLimit)))
}

func TestCategoryBreakdown_Percentages(t *testing.T) {
	articles := []model.Article{
		{Category: "trade"}, {Category: "trade"}, {Category: "inflation"},
	}

	breakdown := CategoryBreakdown(articles)

	assert.Equal(t, []Share{
		{Name: "trade", Count: 2, Percentage: 66.7},
		{Name: "inflation", Count: 1, Percentage: 33.3},
	}, breakdown)
}

func TestSummarize(t *testing.T) {
	m := Summarize(sampleDataset().Articles(), "GPT-3.5")

	assert.Equal(t, Metrics{Articles: 4, Categories: 4, Sources: 3, Model: "GPT-3.5"}, m)
}

func TestBuild_Idempotent(t *testing.T) {
	d := sampleDataset()
	sel := Selection{AllCategories: true, Sources: []string{"Reuters", "Bloomberg"}}

	first := d.Build(sel, "interest", "GPT-3.5")
	second := d.Build(sel, "interest", "GPT-3.5")

	assert.Equal(t, first, second)
	assert.Equal(t, 3, first.Metrics.Articles)
	assert.Equal(t, 2, len(first.Results))
}
