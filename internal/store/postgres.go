package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/muhammadolammi/hirematch/internal/database"
	"github.com/muhammadolammi/hirematch/internal/model"
)

// Postgres stores candidates through the generated queries.
type Postgres struct {
	q *database.Queries
}

// OpenPostgres connects with the lib/pq driver.
func OpenPostgres(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("error opening db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error reaching db: %w", err)
	}
	return db, nil
}

func NewPostgres(q *database.Queries) *Postgres {
	return &Postgres{q: q}
}

func (p *Postgres) Insert(ctx context.Context, c *model.Candidate) (uuid.UUID, error) {
	return p.InsertFromResume(ctx, c, uuid.Nil)
}

// InsertFromResume links the candidate to the uploaded resume it was parsed
// from. Inserting the same candidate id again updates the record.
func (p *Postgres) InsertFromResume(ctx context.Context, c *model.Candidate, resumeID uuid.UUID) (uuid.UUID, error) {
	record, err := encode(c)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := p.q.CreateCandidate(ctx, database.CreateCandidateParams{
		ID:       c.ID,
		Name:     c.Name,
		Email:    c.Email,
		Record:   record,
		ResumeID: uuid.NullUUID{UUID: resumeID, Valid: resumeID != uuid.Nil},
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert candidate: %w", err)
	}
	return id, nil
}

func (p *Postgres) GetAll(ctx context.Context) ([]model.Candidate, error) {
	rows, err := p.q.ListCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	out := make([]model.Candidate, 0, len(rows))
	for _, row := range rows {
		c, err := decode(row.ID, row.Record)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, nil
}

func (p *Postgres) GetByName(ctx context.Context, name string) (*model.Candidate, error) {
	row, err := p.q.GetCandidateByName(ctx, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return decode(row.ID, row.Record)
}
