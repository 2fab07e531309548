// Package store persists candidate records.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/muhammadolammi/hirematch/internal/model"
)

var ErrNotFound = errors.New("candidate not found")

// Store is the candidate persistence contract. GetAll returns a snapshot
// in insertion order.
type Store interface {
	Insert(ctx context.Context, c *model.Candidate) (uuid.UUID, error)
	GetAll(ctx context.Context) ([]model.Candidate, error)
	GetByName(ctx context.Context, name string) (*model.Candidate, error)
}

// encode validates c, assigns an id when missing and returns its record.
func encode(c *model.Candidate) ([]byte, error) {
	if c == nil {
		return nil, errors.New("nil candidate")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	record, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode candidate: %w", err)
	}
	return record, nil
}

// decode is the single path from a stored record back to a Candidate.
func decode(id uuid.UUID, record []byte) (*model.Candidate, error) {
	c, err := model.DecodeCandidate(record)
	if err != nil {
		return nil, fmt.Errorf("candidate %s: %w", id, err)
	}
	c.ID = id
	return c, nil
}
