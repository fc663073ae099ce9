package repository

import (
	"econnews/internal/model"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestDatasetRepository_WriteCollected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "scraped_articles.csv")
	repo := NewDatasetRepository(path)

	err := repo.Write([]model.Article{
		{ID: "R001", Title: "Fed, again", Description: "Rates \"held\"", Source: "Reuters", Category: "inflation"},
	}, false)
	assert.Equal(t, nil, err)

	raw, err := os.ReadFile(path)
	assert.Equal(t, nil, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	assert.Equal(t, "id,title,description,content,source,date,link,scraped_date", lines[0])
	assert.Equal(t, 2, len(lines))
	assert.Equal(t, false, strings.Contains(string(raw), "inflation"))
}

func TestDatasetRepository_RoundTripCategorized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categorized.csv")
	repo := NewDatasetRepository(path)

	in := []model.Article{
		{ID: "R001", Title: "Fed Raises Interest Rates", Description: "multi\nline", Source: "Reuters", Category: "monetary_policy"},
		{ID: "R002", Title: "Oil Prices Surge", Source: "Bloomberg", Category: model.ErrorCategory},
	}

	assert.Equal(t, nil, repo.Write(in, true))

	out, err := repo.ReadAll()
	assert.Equal(t, nil, err)
	assert.Equal(t, in, out)
}

func TestDatasetRepository_ReplaceLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	repo := NewDatasetRepository(filepath.Join(dir, "a.csv"))

	assert.Equal(t, nil, repo.Write([]model.Article{{ID: "R001"}}, false))
	assert.Equal(t, nil, repo.Write([]model.Article{{ID: "R001"}, {ID: "R002"}}, false))

	entries, err := os.ReadDir(dir)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(entries))

	out, err := repo.ReadAll()
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(out))
}

func TestDatasetRepository_MissingFile(t *testing.T) {
	repo := NewDatasetRepository(filepath.Join(t.TempDir(), "missing.csv"))

	_, err := repo.ReadAll()
	assert.Equal(t, true, os.IsNotExist(err))
}

func TestDecodeArticles_MissingColumnsDefaultEmpty(t *testing.T) {
	articles, err := DecodeArticles(strings.NewReader("id,title\nR001,Only a title\n"))

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))
	assert.Equal(t, "Only a title", articles[0].Title)
	assert.Equal(t, "", articles[0].Description)
	assert.Equal(t, "", articles[0].Category)
}

func TestDecodeArticles_Empty(t *testing.T) {
	articles, err := DecodeArticles(strings.NewReader(""))

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(articles))
}
