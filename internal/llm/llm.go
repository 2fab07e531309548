// Package llm talks to chat models and turns their loosely formatted JSON
// answers into documents that satisfy a declared schema.
package llm

import "context"

// Provider sends a prompt to a language model and returns its text answer.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, prompt string) (string, error)

func (f ProviderFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
