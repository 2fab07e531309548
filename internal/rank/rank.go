// Package rank orders scored items.
package rank

import "sort"

type Scored[T any] struct {
	Item  T
	Score float64
}

// Rank returns a copy of items ordered by descending score. Items with equal
// scores keep their input order.
func Rank[T any](items []Scored[T]) []Scored[T] {
	out := make([]Scored[T], len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// By ranks items using score to read each item's score.
func By[T any](items []T, score func(T) float64) []T {
	scored := make([]Scored[T], len(items))
	for i, it := range items {
		scored[i] = Scored[T]{Item: it, Score: score(it)}
	}
	ranked := Rank(scored)
	out := make([]T, len(ranked))
	for i, s := range ranked {
		out[i] = s.Item
	}
	return out
}
