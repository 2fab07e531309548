package database

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

const createCandidate = `-- name: CreateCandidate :one
INSERT INTO candidates (id, name, email, record, resume_id)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    email = EXCLUDED.email,
    record = EXCLUDED.record
RETURNING id
`

type CreateCandidateParams struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Record   json.RawMessage
	ResumeID uuid.NullUUID
}

func (q *Queries) CreateCandidate(ctx context.Context, arg CreateCandidateParams) (uuid.UUID, error) {
	row := q.db.QueryRowContext(ctx, createCandidate,
		arg.ID,
		arg.Name,
		arg.Email,
		arg.Record,
		arg.ResumeID,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const listCandidates = `-- name: ListCandidates :many
SELECT id, name, email, record, resume_id, created_at FROM candidates
ORDER BY created_at, id
`

func (q *Queries) ListCandidates(ctx context.Context) ([]Candidate, error) {
	rows, err := q.db.QueryContext(ctx, listCandidates)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Candidate
	for rows.Next() {
		var i Candidate
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Email,
			&i.Record,
			&i.ResumeID,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getCandidateByName = `-- name: GetCandidateByName :one
SELECT id, name, email, record, resume_id, created_at FROM candidates
WHERE name = $1
ORDER BY created_at, id
LIMIT 1
`

func (q *Queries) GetCandidateByName(ctx context.Context, name string) (Candidate, error) {
	row := q.db.QueryRowContext(ctx, getCandidateByName, name)
	var i Candidate
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.Record,
		&i.ResumeID,
		&i.CreatedAt,
	)
	return i, err
}
