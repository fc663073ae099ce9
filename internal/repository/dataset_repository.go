package repository

import (
	"econnews/internal/model"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var (
	CollectedColumns   = []string{"id", "title", "description", "content", "source", "date", "link", "scraped_date"}
	CategorizedColumns = append(append([]string{}, CollectedColumns...), "llm_category")
)

// DatasetRepository persists the article table as a CSV file. Writes replace the
// file atomically so a reader never observes a half-written dataset.
type DatasetRepository struct {
	path string
}

func NewDatasetRepository(path string) *DatasetRepository {
	return &DatasetRepository{path: path}
}

func (r *DatasetRepository) Path() string {
	return r.path
}

// ReadAll loads every row. Missing columns default to empty strings.
func (r *DatasetRepository) ReadAll() ([]model.Article, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeArticles(f)
}

// Write stores articles with the collector columns, plus llm_category when
// withCategory is set.
func (r *DatasetRepository) Write(articles []model.Article, withCategory bool) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dataset dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp dataset: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeArticles(tmp, articles, withCategory); err != nil {
		tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp dataset: %w", err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("replace dataset: %w", err)
	}

	return nil
}

func EncodeArticles(w io.Writer, articles []model.Article, withCategory bool) error {
	columns := CollectedColumns
	if withCategory {
		columns = CategorizedColumns
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, a := range articles {
		row := []string{a.ID, a.Title, a.Description, a.Content, a.Source, a.Date, a.Link, a.ScrapedDate}
		if withCategory {
			row = append(row, a.Category)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %s: %w", a.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func DecodeArticles(r io.Reader) ([]model.Article, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []model.Article{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	articles := []model.Article{}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}

		articles = append(articles, model.Article{
			ID:          field("id"),
			Title:       field("title"),
			Description: field("description"),
			Content:     field("content"),
			Source:      field("source"),
			Date:        field("date"),
			Link:        field("link"),
			ScrapedDate: field("scraped_date"),
			Category:    field("llm_category"),
		})
	}

	return articles, nil
}
