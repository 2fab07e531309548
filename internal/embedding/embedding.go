// Package embedding maps text to dense vectors through external models.
package embedding

import "context"

// Provider turns a text into an embedding vector.
type Provider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, text string) ([]float32, error)

func (f ProviderFunc) Embed(ctx context.Context, text string) ([]float32, error) {
	return f(ctx, text)
}
