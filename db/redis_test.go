package db

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-playground/assert/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*CategoryCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewCategoryCache(client), mr
}

func TestCategoryCache_MissThenHit(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, "Fed Raises Interest Rates", "desc")
	assert.Equal(t, nil, err)
	assert.Equal(t, false, ok)

	assert.Equal(t, nil, cache.Set(ctx, "Fed Raises Interest Rates", "desc", "monetary_policy"))

	category, ok, err := cache.Get(ctx, "Fed Raises Interest Rates", "desc")
	assert.Equal(t, nil, err)
	assert.Equal(t, true, ok)
	assert.Equal(t, "monetary_policy", category)
}

func TestCategoryCache_KeyDependsOnBothFields(t *testing.T) {
	assert.Equal(t, categoryKey("a", "b"), categoryKey("a", "b"))
	assert.NotEqual(t, categoryKey("a", "b"), categoryKey("ab", ""))
	assert.NotEqual(t, categoryKey("a", "b"), categoryKey("a", "c"))
}

func TestCategoryCache_SetsTTL(t *testing.T) {
	cache, mr := newTestCache(t)

	assert.Equal(t, nil, cache.Set(context.Background(), "t", "d", "trade"))
	assert.Equal(t, CategoryTTL, mr.TTL(categoryKey("t", "d")))
}

func TestCategoryCache_ServerDown(t *testing.T) {
	cache, mr := newTestCache(t)
	mr.Close()

	_, ok, err := cache.Get(context.Background(), "t", "d")
	assert.NotEqual(t, nil, err)
	assert.Equal(t, false, ok)
}
