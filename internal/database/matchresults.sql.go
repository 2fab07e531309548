package database

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

const saveMatchResults = `-- name: SaveMatchResults :exec
INSERT INTO match_results (session_id, job_requirements, results)
VALUES ($1, $2, $3)
ON CONFLICT (session_id)
DO UPDATE SET
    job_requirements = EXCLUDED.job_requirements,
    results = EXCLUDED.results,
    updated_at = CURRENT_TIMESTAMP
`

type SaveMatchResultsParams struct {
	SessionID       uuid.UUID
	JobRequirements json.RawMessage
	Results         json.RawMessage
}

func (q *Queries) SaveMatchResults(ctx context.Context, arg SaveMatchResultsParams) error {
	_, err := q.db.ExecContext(ctx, saveMatchResults, arg.SessionID, arg.JobRequirements, arg.Results)
	return err
}
