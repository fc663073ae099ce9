package handler

import (
	"econnews/internal/dashboard"
	"embed"
	"fmt"
	"html/template"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Qualitative palette for the category chart; cycles past twelve entries.
var palette = []string{
	"#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3", "#fdb462",
	"#b3de69", "#fccde5", "#d9d9d9", "#bc80bd", "#ccebc5", "#ffed6f",
}

func LoadTemplates(r *gin.Engine) {
	r.SetHTMLTemplate(ParseTemplates())
}

func ParseTemplates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"percent": func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
		"clip":    clip,
	}).ParseFS(templatesFS, "templates/*.html"))
}

type option struct {
	Value    string
	Selected bool
}

type bar struct {
	Name       string
	Count      int
	Percentage float64
	Width      float64
	Color      string
}

type totals struct {
	Articles   int
	Sources    int
	Categories int
}

type pageData struct {
	Totals     totals
	Categories []option
	Sources    []option
	View       dashboard.View
	Breakdown  []bar
	TopSources []bar
	Donut      template.CSS
}

func newPageData(d *dashboard.Dataset, sel dashboard.Selection, view dashboard.View) pageData {
	breakdown := bars(view.Breakdown, true)

	return pageData{
		Totals: totals{
			Articles:   d.Len(),
			Sources:    len(d.Sources()),
			Categories: len(d.Categories()),
		},
		Categories: options(d.Categories(), sel.AllCategories, sel.Categories),
		Sources:    options(d.Sources(), sel.AllSources, sel.Sources),
		View:       view,
		Breakdown:  breakdown,
		TopSources: bars(view.TopSources, false),
		Donut:      donut(breakdown),
	}
}

func options(values []string, all bool, selected []string) []option {
	return lo.Map(values, func(v string, _ int) option {
		return option{Value: v, Selected: all || slices.Contains(selected, v)}
	})
}

func bars(shares []dashboard.Share, colored bool) []bar {
	maxCount := 0
	for _, s := range shares {
		maxCount = max(maxCount, s.Count)
	}

	return lo.Map(shares, func(s dashboard.Share, i int) bar {
		b := bar{Name: s.Name, Count: s.Count, Percentage: s.Percentage, Color: "#3b82f6"}
		if maxCount > 0 {
			b.Width = float64(s.Count) / float64(maxCount) * 100
		}
		if colored {
			b.Color = palette[i%len(palette)]
		}
		return b
	})
}

// donut renders category proportions as a conic gradient. The value is built only
// from numbers and the fixed palette.
func donut(breakdown []bar) template.CSS {
	if len(breakdown) == 0 {
		return template.CSS("conic-gradient(#e5e7eb 0% 100%)")
	}

	var stops []string
	start := 0.0
	for i, b := range breakdown {
		end := start + b.Percentage
		if i == len(breakdown)-1 {
			end = 100
		}
		stops = append(stops, fmt.Sprintf("%s %.1f%% %.1f%%", b.Color, start, end))
		start = end
	}

	return template.CSS("conic-gradient(" + strings.Join(stops, ", ") + ")")
}

func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
