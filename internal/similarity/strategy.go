package similarity

import (
	"context"
	"fmt"
	"strings"

	"github.com/muhammadolammi/hirematch/internal/embedding"
)

// Method names accepted by NewStrategy.
const (
	MethodTFIDF      = "tfidf"
	MethodEmbeddings = "embeddings"
)

// Strategy compares two texts and returns a similarity in [0,1]. Either
// text being blank gives 0.
type Strategy interface {
	Similarity(ctx context.Context, a, b string) (float64, error)
}

// Lexical compares texts with TF-IDF vectors fitted per call.
type Lexical struct{}

func (Lexical) Similarity(_ context.Context, a, b string) (float64, error) {
	if blank(a) || blank(b) {
		return 0, nil
	}
	return clamp(tfidfCosine(a, b)), nil
}

// Embedding compares texts by the cosine of their embedding vectors.
type Embedding struct {
	Provider embedding.Provider
}

func (e Embedding) Similarity(ctx context.Context, a, b string) (float64, error) {
	if blank(a) || blank(b) {
		return 0, nil
	}
	va, err := e.Provider.Embed(ctx, a)
	if err != nil {
		return 0, &EmbeddingProviderError{Cause: err}
	}
	vb, err := e.Provider.Embed(ctx, b)
	if err != nil {
		return 0, &EmbeddingProviderError{Cause: err}
	}
	return clamp(cosine32(va, vb)), nil
}

// NewStrategy selects a strategy by method name. The embeddings method
// needs a provider.
func NewStrategy(method string, provider embedding.Provider) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(method)) {
	case "", MethodTFIDF, "lexical":
		return Lexical{}, nil
	case MethodEmbeddings, "embedding":
		if provider == nil {
			return nil, fmt.Errorf("similarity method %q requires an embedding provider", method)
		}
		return Embedding{Provider: provider}, nil
	}
	return nil, fmt.Errorf("invalid similarity method %q, use %q or %q", method, MethodTFIDF, MethodEmbeddings)
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
