package database

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Candidate struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Record    json.RawMessage
	ResumeID  uuid.NullUUID
	CreatedAt time.Time
}

type MatchResult struct {
	ID              uuid.UUID
	SessionID       uuid.UUID
	JobRequirements json.RawMessage
	Results         json.RawMessage
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Resume struct {
	ID               uuid.UUID
	OriginalFilename string
	Mime             string
	ObjectKey        string
	CreatedAt        time.Time
	SessionID        uuid.UUID
}
