package repository

import (
	"database/sql"
	"econnews/internal/model"

	"github.com/lib/pq"
	"github.com/samber/lo"
)

// ArticleRepository mirrors the categorized dataset into Postgres.
type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) EnsureSchema() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS categorized_article (
			id           TEXT PRIMARY KEY,
			title        TEXT NOT NULL,
			description  TEXT NOT NULL,
			content      TEXT NOT NULL,
			source       TEXT NOT NULL,
			published    TEXT NOT NULL,
			link         TEXT NOT NULL,
			scraped_date TEXT NOT NULL,
			llm_category TEXT NOT NULL
		)
	`)
	return err
}

// SaveCategorized upserts the whole batch in one transaction. Rows are keyed by id, so
// re-running the categorizer replaces the previous labels.
func (r *ArticleRepository) SaveCategorized(articles []model.Article) error {
	if len(articles) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	column := func(get func(a model.Article) string) interface{} {
		return pq.Array(lo.Map(articles, func(a model.Article, _ int) string { return get(a) }))
	}

	_, err = tx.Exec(`
		INSERT INTO categorized_article(id, title, description, content, source, published, link, scraped_date, llm_category)
		SELECT * FROM unnest($1::text[], $2::text[], $3::text[], $4::text[], $5::text[], $6::text[], $7::text[], $8::text[], $9::text[])
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			content = EXCLUDED.content,
			source = EXCLUDED.source,
			published = EXCLUDED.published,
			link = EXCLUDED.link,
			scraped_date = EXCLUDED.scraped_date,
			llm_category = EXCLUDED.llm_category
	`,
		column(func(a model.Article) string { return a.ID }),
		column(func(a model.Article) string { return a.Title }),
		column(func(a model.Article) string { return a.Description }),
		column(func(a model.Article) string { return a.Content }),
		column(func(a model.Article) string { return a.Source }),
		column(func(a model.Article) string { return a.Date }),
		column(func(a model.Article) string { return a.Link }),
		column(func(a model.Article) string { return a.ScrapedDate }),
		column(func(a model.Article) string { return a.Category }),
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *ArticleRepository) GetCategorizedTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM categorized_article
	`).Scan(&total)
	return total, err
}

func (r *ArticleRepository) GetByID(id string) (*model.Article, error) {
	var a model.Article
	err := r.db.QueryRow(`
		SELECT id, title, description, content, source, published, link, scraped_date, llm_category
		FROM categorized_article
		WHERE id = $1
	`, id).Scan(&a.ID, &a.Title, &a.Description, &a.Content, &a.Source, &a.Date, &a.Link, &a.ScrapedDate, &a.Category)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &a, nil
}
