package dashboard

import (
	"econnews/internal/model"
	"econnews/internal/repository"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"
)

var ErrDatasetNotFound = errors.New("dataset not found")

type cacheKey struct {
	modTime time.Time
	size    int64
}

// Loader memoizes the categorized dataset. The file is re-read only when its
// modification time or size changes.
type Loader struct {
	repo *repository.DatasetRepository

	mu      sync.Mutex
	key     cacheKey
	dataset *Dataset
	loads   int
}

func NewLoader(repo *repository.DatasetRepository) *Loader {
	return &Loader{repo: repo}
}

func (l *Loader) Load() (*Dataset, error) {
	info, err := os.Stat(l.repo.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, l.repo.Path())
	}
	if err != nil {
		return nil, fmt.Errorf("stat dataset: %w", err)
	}

	key := cacheKey{modTime: info.ModTime(), size: info.Size()}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.dataset != nil && l.key == key {
		return l.dataset, nil
	}

	articles, err := l.repo.ReadAll()
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, l.repo.Path())
	}
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	l.dataset = NewDataset(articles)
	l.key = key
	l.loads++

	return l.dataset, nil
}

// Dataset is a read-only snapshot of the categorized articles.
type Dataset struct {
	articles   []model.Article
	categories []string
	sources    []string
}

func NewDataset(articles []model.Article) *Dataset {
	return &Dataset{
		articles:   articles,
		categories: sortedUnique(articles, model.ByCategory),
		sources:    sortedUnique(articles, model.BySource),
	}
}

// Articles returns a copy so callers cannot alter the snapshot.
func (d *Dataset) Articles() []model.Article {
	return append([]model.Article(nil), d.articles...)
}

func (d *Dataset) Len() int {
	return len(d.articles)
}

// Categories lists the distinct categories present, sorted.
func (d *Dataset) Categories() []string {
	return append([]string(nil), d.categories...)
}

// Sources lists the distinct sources present, sorted.
func (d *Dataset) Sources() []string {
	return append([]string(nil), d.sources...)
}
