package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/muhammadolammi/hirematch/internal/database"
	"github.com/muhammadolammi/hirematch/internal/jobspec"
	"github.com/muhammadolammi/hirematch/internal/model"
	"github.com/muhammadolammi/hirematch/internal/resume"
	"github.com/muhammadolammi/hirematch/internal/similarity"
)

// Session status values written to the sessions table and published on
// the updates exchange.
const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

type Session struct {
	ID             uuid.UUID `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	Name           string    `json:"name"`
	UserID         uuid.UUID `json:"user_id"`
	Status         string    `json:"status"`
	JobTitle       string    `json:"job_title"`
	JobDescription string    `json:"job_description"`
}

type SessionUpdate struct {
	SessionID uuid.UUID `json:"session_id"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ResumeFailure records a resume that could not be turned into a candidate.
type ResumeFailure struct {
	ResumeID uuid.UUID `json:"resume_id"`
	Filename string    `json:"filename"`
	Error    string    `json:"error"`
}

// SessionResults is the document stored in match_results.results.
type SessionResults struct {
	Candidates int                 `json:"candidates"`
	Matches    []model.MatchResult `json:"matches"`
	Failures   []ResumeFailure     `json:"failures"`
}

type sessionQueries interface {
	ListSessionResumes(ctx context.Context, sessionID uuid.UUID) ([]database.Resume, error)
	SetSessionStatus(ctx context.Context, arg database.SetSessionStatusParams) error
	SaveMatchResults(ctx context.Context, arg database.SaveMatchResultsParams) error
}

type candidateSaver interface {
	InsertFromResume(ctx context.Context, c *model.Candidate, resumeID uuid.UUID) (uuid.UUID, error)
}

type downloader interface {
	Download(ctx context.Context, key string) ([]byte, error)
}

type updatePublisher interface {
	Publish(ctx context.Context, update SessionUpdate) error
}

type WorkerConfig struct {
	DB          sessionQueries
	Candidates  candidateSaver
	Objects     downloader
	Updates     updatePublisher
	RabbitMQURL string

	Resumes *resume.Parser
	Jobs    *jobspec.Parser
	Engine  *similarity.Engine

	Logger *slog.Logger
	// RetryWait is the base delay between retried calls.
	RetryWait time.Duration
}
