package similarity

import "fmt"

// EmbeddingProviderError wraps a failure of the embedding provider.
type EmbeddingProviderError struct {
	Cause error
}

func (e *EmbeddingProviderError) Error() string {
	return fmt.Sprintf("embedding provider failed: %v", e.Cause)
}

func (e *EmbeddingProviderError) Unwrap() error {
	return e.Cause
}
