package news

import (
	"econnews/internal/model"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// StripMarkup returns the text content of an HTML fragment. Plain text passes through
// with entities decoded.
func StripMarkup(s string) string {
	if s == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}

	return strings.TrimSpace(doc.Text())
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

// normalize builds the common record shape from raw feed fields.
func normalize(title, rawDescription, link, date, source string) model.Article {
	clean := StripMarkup(rawDescription)

	return model.Article{
		Title:       strings.TrimSpace(title),
		Description: truncate(clean, model.MaxDescriptionLength),
		Content:     clean,
		Source:      source,
		Date:        date,
		Link:        strings.TrimSpace(link),
	}
}
