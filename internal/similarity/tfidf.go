package similarity

import (
	"math"
	"regexp"
	"strings"
)

// token matches runs of two or more word characters.
var token = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// vectorizer is a TF-IDF model fitted on a single comparison. It is never
// shared between comparisons, so vocabulary from one job/candidate pair
// cannot leak into another.
type vectorizer struct {
	vocab map[string]int
	idf   []float64
}

func tokenize(text string) []string {
	return token.FindAllString(strings.ToLower(text), -1)
}

// fit builds the vocabulary and smoothed idf weights
// (ln((1+n)/(1+df)) + 1) over docs.
func fit(docs [][]string) *vectorizer {
	v := &vectorizer{vocab: make(map[string]int)}
	var df []int
	for _, doc := range docs {
		seen := make(map[int]bool)
		for _, tok := range doc {
			idx, ok := v.vocab[tok]
			if !ok {
				idx = len(v.vocab)
				v.vocab[tok] = idx
				df = append(df, 0)
			}
			if !seen[idx] {
				seen[idx] = true
				df[idx]++
			}
		}
	}
	n := float64(len(docs))
	v.idf = make([]float64, len(df))
	for i, d := range df {
		v.idf[i] = math.Log((1+n)/(1+float64(d))) + 1
	}
	return v
}

// transform returns the L2-normalized tf-idf vector of doc.
func (v *vectorizer) transform(doc []string) []float64 {
	vec := make([]float64, len(v.vocab))
	for _, tok := range doc {
		if idx, ok := v.vocab[tok]; ok {
			vec[idx]++
		}
	}
	var norm float64
	for i := range vec {
		vec[i] *= v.idf[i]
		norm += vec[i] * vec[i]
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

// tfidfCosine fits a fresh vectorizer on a and b and returns the cosine of
// their vectors. An empty vocabulary yields 0.
func tfidfCosine(a, b string) float64 {
	ta, tb := tokenize(a), tokenize(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}
	v := fit([][]string{ta, tb})
	return cosine64(v.transform(ta), v.transform(tb))
}

func cosine64(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

func cosine32(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
