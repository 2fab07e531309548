package embedding

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"sync"
)

// Cached memoizes the vectors returned by the wrapped provider, keyed by a
// hash of the model id and text. Errors are not cached.
type Cached struct {
	next    Provider
	modelID string

	mu sync.RWMutex
	m  map[string][]float32
}

func NewCached(next Provider, modelID string) *Cached {
	return &Cached{next: next, modelID: modelID, m: make(map[string][]float32)}
}

func (c *Cached) Embed(ctx context.Context, text string) ([]float32, error) {
	key := cacheKey(text, c.modelID)

	c.mu.RLock()
	v, ok := c.m[key]
	c.mu.RUnlock()
	if ok {
		return v, nil
	}

	v, err := c.next.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.m[key] = v
	c.mu.Unlock()
	return v, nil
}

// Len returns the number of cached vectors.
func (c *Cached) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

func cacheKey(text, model string) string {
	h := sha1.Sum([]byte(text + "|" + model))
	return hex.EncodeToString(h[:])
}
