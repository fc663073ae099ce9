package model

import "slices"

// Count is one row of a value count.
type Count struct {
	Value string
	Count int
}

// CountBy counts articles by key, highest count first. Equal counts keep the order in
// which their value was first seen.
func CountBy(articles []Article, key func(Article) string) []Count {
	index := make(map[string]int)
	counts := []Count{}

	for _, a := range articles {
		v := key(a)
		i, ok := index[v]
		if !ok {
			i = len(counts)
			index[v] = i
			counts = append(counts, Count{Value: v})
		}
		counts[i].Count++
	}

	slices.SortStableFunc(counts, func(a, b Count) int {
		return b.Count - a.Count
	})

	return counts
}

func BySource(a Article) string   { return a.Source }
func ByCategory(a Article) string { return a.Category }
