package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankDescending(t *testing.T) {
	in := []Scored[string]{{"a", 0.2}, {"b", 0.9}, {"c", 0.5}}
	got := Rank(in)
	assert.Equal(t, []Scored[string]{{"b", 0.9}, {"c", 0.5}, {"a", 0.2}}, got)
	assert.Equal(t, "a", in[0].Item, "input must not be reordered")
}

func TestRankStableOnTies(t *testing.T) {
	in := []Scored[string]{{"first", 0.75}, {"second", 0.75}}
	assert.Equal(t, in, Rank(in))

	in = []Scored[string]{{"x", 0.1}, {"p", 0.75}, {"q", 0.75}, {"y", 0.9}, {"r", 0.75}}
	got := Rank(in)
	var names []string
	for _, s := range got {
		names = append(names, s.Item)
	}
	assert.Equal(t, []string{"y", "p", "q", "r", "x"}, names)
}

func TestRankEmpty(t *testing.T) {
	assert.Empty(t, Rank[int](nil))
}

func TestBy(t *testing.T) {
	type job struct {
		name  string
		score float64
	}
	jobs := []job{{"a", 1}, {"b", 3}, {"c", 3}}
	got := By(jobs, func(j job) float64 { return j.score })
	assert.Equal(t, []job{{"b", 3}, {"c", 3}, {"a", 1}}, got)
}
