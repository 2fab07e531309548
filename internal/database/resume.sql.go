package database

import (
	"context"

	"github.com/google/uuid"
)

const listSessionResumes = `-- name: ListSessionResumes :many
SELECT id, original_filename, mime, object_key, created_at, session_id FROM resumes
WHERE session_id = $1 AND upload_status = 'uploaded'
ORDER BY created_at, id
`

func (q *Queries) ListSessionResumes(ctx context.Context, sessionID uuid.UUID) ([]Resume, error) {
	rows, err := q.db.QueryContext(ctx, listSessionResumes, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Resume
	for rows.Next() {
		var i Resume
		if err := rows.Scan(
			&i.ID,
			&i.OriginalFilename,
			&i.Mime,
			&i.ObjectKey,
			&i.CreatedAt,
			&i.SessionID,
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
