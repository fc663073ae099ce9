package news

import (
	"context"
	"econnews/internal/model"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

type fakeSource struct {
	name  string
	count int
	err   error
	calls int
}

func (f *fakeSource) Name() string {
	return f.name
}

func (f *fakeSource) Fetch(ctx context.Context) ([]model.Article, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	articles := make([]model.Article, f.count)
	for i := range articles {
		articles[i] = model.Article{Title: fmt.Sprintf("%s %d", f.name, i), Source: f.name}
	}
	return articles, nil
}

func newTestCollector(sources []Source, threshold int) (*Collector, *[]time.Duration) {
	var pauses []time.Duration
	c := NewCollector(sources, threshold, DefaultPause)
	c.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	c.sleep = func(_ context.Context, d time.Duration) { pauses = append(pauses, d) }
	return c, &pauses
}

func TestCollect_EarlyStop(t *testing.T) {
	first := &fakeSource{name: "Google News", count: 30}
	second := &fakeSource{name: "The Guardian", count: 15}

	c, _ := newTestCollector([]Source{first, second}, 30)
	articles, _ := c.Collect(context.Background())

	assert.Equal(t, 30, len(articles))
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls)
}

func TestCollect_ContinuesUntilThreshold(t *testing.T) {
	a := &fakeSource{name: "A", count: 20}
	b := &fakeSource{name: "B", count: 15}
	c3 := &fakeSource{name: "C", count: 15}

	c, pauses := newTestCollector([]Source{a, b, c3}, 30)
	articles, _ := c.Collect(context.Background())

	assert.Equal(t, 35, len(articles))
	assert.Equal(t, 0, c3.calls)
	assert.Equal(t, 2, len(*pauses))
	assert.Equal(t, "A 0", articles[0].Title)
	assert.Equal(t, "B 0", articles[20].Title)
}

func TestCollect_FailedSourceIsSkipped(t *testing.T) {
	broken := &fakeSource{name: "Reuters", err: errors.New("connection refused")}
	ok := &fakeSource{name: "FT", count: 3}

	c, pauses := newTestCollector([]Source{broken, ok}, 30)
	articles, _ := c.Collect(context.Background())

	assert.Equal(t, 3, len(articles))
	assert.Equal(t, 1, broken.calls)
	assert.Equal(t, 2, len(*pauses))
	assert.Equal(t, DefaultPause, (*pauses)[0])
}

func TestCollect_AllFail(t *testing.T) {
	c, _ := newTestCollector([]Source{
		&fakeSource{name: "A", err: errors.New("down")},
		&fakeSource{name: "B", err: errors.New("down")},
	}, 30)

	articles, err := c.Collect(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(articles))
}

func TestCollect_StampsScrapedDate(t *testing.T) {
	c, _ := newTestCollector([]Source{&fakeSource{name: "A", count: 2}}, 30)

	articles, _ := c.Collect(context.Background())

	assert.Equal(t, "2024-01-02 03:04:05", articles[0].ScrapedDate)
	assert.Equal(t, "2024-01-02 03:04:05", articles[1].ScrapedDate)
}

func TestCollect_NoDedup(t *testing.T) {
	a := &fakeSource{name: "A", count: 2}

	c, _ := newTestCollector([]Source{a, a}, 30)
	articles, _ := c.Collect(context.Background())

	assert.Equal(t, 4, len(articles))
	assert.Equal(t, articles[0].Title, articles[2].Title)
}

type cancellingSource struct {
	fakeSource
	cancel context.CancelFunc
}

func (f *cancellingSource) Fetch(ctx context.Context) ([]model.Article, error) {
	articles, err := f.fakeSource.Fetch(ctx)
	f.cancel()
	return articles, err
}

func TestCollect_CancelledDiscardsPartialRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	first := &cancellingSource{fakeSource: fakeSource{name: "A", count: 5}, cancel: cancel}
	second := &fakeSource{name: "B", count: 5}

	c, _ := newTestCollector([]Source{first, second}, 30)
	articles, err := c.Collect(ctx)

	assert.Equal(t, true, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, len(articles))
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls)
}

func TestAssignIDs_UniqueAndIncreasing(t *testing.T) {
	in := make([]model.Article, 35)

	out := AssignIDs(in)

	seen := map[string]bool{}
	for i, a := range out {
		assert.Equal(t, model.FormatID(i+1), a.ID)
		assert.Equal(t, false, seen[a.ID])
		seen[a.ID] = true
		if i > 0 {
			assert.Equal(t, true, out[i-1].ID < a.ID)
		}
	}
	assert.Equal(t, "", in[0].ID)
}
