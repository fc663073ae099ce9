package news

import (
	"context"
	"econnews/internal/model"
)

// Source is one feed or news API. Fetch returns at most the source's own item cap.
// ScrapedDate is stamped by the Collector and ID by AssignIDs; Date is whatever the
// source published, possibly empty.
type Source interface {
	Fetch(ctx context.Context) ([]model.Article, error)
	Name() string
}
