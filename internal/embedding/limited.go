package embedding

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// Limited spaces out calls to the wrapped provider. It waits for a token
// and never retries.
type Limited struct {
	next    Provider
	limiter *rate.Limiter
}

// NewLimited allows rps calls per second with bursts of burst calls. A
// non-positive rps disables limiting.
func NewLimited(next Provider, rps float64, burst int) *Limited {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	if burst < 1 {
		burst = 1
	}
	return &Limited{next: next, limiter: rate.NewLimiter(limit, burst)}
}

func (l *Limited) Embed(ctx context.Context, text string) ([]float32, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("embedding rate limit: %w", err)
	}
	return l.next.Embed(ctx, text)
}
