package model

import (
	"fmt"
	"slices"
)

const (
	DefaultCategory = "general_economics"
	ErrorCategory   = "error"

	MaxDescriptionLength = 300
	ScrapedDateLayout    = "2006-01-02 15:04:05"
)

// Categories is the closed label set, in prompt order.
var Categories = []string{
	"inflation",
	"monetary_policy",
	"gdp_growth",
	"employment",
	"trade",
	"housing",
	"commodities",
	"financial_markets",
	"productivity",
	DefaultCategory,
}

type Article struct {
	ID          string
	Title       string
	Description string
	Content     string
	Source      string
	Date        string
	Link        string
	ScrapedDate string
	Category    string
}

// IsCategory reports whether name is one of the ten labels. The error sentinel is not.
func IsCategory(name string) bool {
	return slices.Contains(Categories, name)
}

// IsAssigned reports whether a stored category is a valid post-categorization value.
func IsAssigned(name string) bool {
	return IsCategory(name) || name == ErrorCategory
}

func FormatID(seq int) string {
	return fmt.Sprintf("R%03d", seq)
}
