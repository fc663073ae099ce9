package llm

import (
	"fmt"
	"strings"
)

var categoryDefinitions = []struct {
	Name        string
	Description string
}{
	{"inflation", "CPI, price changes, inflation rates"},
	{"monetary_policy", "Central bank decisions, interest rates, policy changes"},
	{"gdp_growth", "Economic growth, GDP reports, recession/expansion"},
	{"employment", "Jobs, unemployment, labor market, wages"},
	{"trade", "Imports, exports, trade balances, tariffs"},
	{"housing", "Property markets, home prices, mortgages"},
	{"commodities", "Oil, gold, agricultural products, raw materials"},
	{"financial_markets", "Stock markets, currencies, crypto, market volatility"},
	{"productivity", "Economic efficiency, tech investment, output per worker"},
	{"general_economics", "Economic theory, general economic discussion, economic education"},
}

func BuildPrompt(req ClassifyRequest) string {
	var sb strings.Builder

	sb.WriteString("You are an economic analyst. Categorize this economic news article into ONE of these categories:\n\n")
	sb.WriteString("Categories:\n")
	for _, c := range categoryDefinitions {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", c.Name, c.Description))
	}

	sb.WriteString("\nArticle:\n")
	sb.WriteString(fmt.Sprintf("Title: %s\n", req.Title))
	sb.WriteString(fmt.Sprintf("Description: %s\n", req.Description))
	sb.WriteString("\nRespond with ONLY the category name, nothing else.")

	return sb.String()
}
