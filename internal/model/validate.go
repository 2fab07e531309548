package model

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the Candidate invariants: required identity fields, unique
// sorted skills of length >= 2, complete education and experience entries.
func (c *Candidate) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid candidate: %w", err)
	}
	if !sort.StringsAreSorted(c.Skills) {
		return fmt.Errorf("invalid candidate: skills are not sorted")
	}
	return nil
}

// DecodeCandidate is the single deserialization path for stored candidate
// records.
func DecodeCandidate(data []byte) (*Candidate, error) {
	var c Candidate
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to decode candidate: %w", err)
	}
	if c.Skills == nil {
		c.Skills = []string{}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
