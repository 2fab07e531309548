package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"github.com/muhammadolammi/hirematch/internal/database"
	"github.com/muhammadolammi/hirematch/internal/model"
	"github.com/muhammadolammi/hirematch/internal/textextract"
)

const retryAttempts = 3

func (w *WorkerConfig) logger() *slog.Logger {
	if w.Logger == nil {
		return slog.Default()
	}
	return w.Logger
}

// processSession parses every uploaded resume of the session, structures
// the job description and stores the ranked matches. Resumes that fail are
// recorded in the results and do not fail the session.
func (w *WorkerConfig) processSession(ctx context.Context, s Session) error {
	log := w.logger().With("session_id", s.ID)

	resumes, err := retry(ctx, retryAttempts, w.RetryWait, func() ([]database.Resume, error) {
		return w.DB.ListSessionResumes(ctx, s.ID)
	})
	if err != nil {
		return fmt.Errorf("error getting resumes for session %s: %w", s.ID, err)
	}

	results := SessionResults{
		Matches:  []model.MatchResult{},
		Failures: []ResumeFailure{},
	}
	candidates := make([]model.Candidate, 0, len(resumes))
	for _, r := range resumes {
		c, err := w.candidateFromResume(ctx, r)
		if err != nil {
			log.Warn("resume skipped", "resume_id", r.ID, "object_key", r.ObjectKey, "error", err)
			results.Failures = append(results.Failures, ResumeFailure{
				ResumeID: r.ID,
				Filename: r.OriginalFilename,
				Error:    err.Error(),
			})
			continue
		}
		candidates = append(candidates, *c)
	}
	results.Candidates = len(candidates)

	job, err := w.Jobs.Parse(ctx, s.JobDescription)
	if err != nil {
		log.Warn("job requirements incomplete", "error", err)
	}
	if job.Title == "" {
		job.Title = s.JobTitle
	}

	matches, err := w.Engine.ScoreAll(ctx, job, candidates)
	if err != nil {
		return fmt.Errorf("failed to score candidates: %w", err)
	}
	results.Matches = append(results.Matches, matches...)
	log.Info("session scored", "resumes", len(resumes), "candidates", len(candidates), "matches", len(matches))

	jobJSON, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job requirements: %w", err)
	}
	resultsJSON, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal match results: %w", err)
	}
	_, err = retry(ctx, retryAttempts, w.RetryWait, func() (struct{}, error) {
		return struct{}{}, w.DB.SaveMatchResults(ctx, database.SaveMatchResultsParams{
			SessionID:       s.ID,
			JobRequirements: jobJSON,
			Results:         resultsJSON,
		})
	})
	if err != nil {
		return fmt.Errorf("failed to save match results after retries: %w", err)
	}
	return nil
}

// candidateFromResume downloads, parses and stores one resume.
func (w *WorkerConfig) candidateFromResume(ctx context.Context, r database.Resume) (*model.Candidate, error) {
	format, err := textextract.FormatFromMIME(r.Mime)
	if err != nil {
		if format, err = textextract.FormatFromName(r.OriginalFilename); err != nil {
			return nil, err
		}
	}

	data, err := retry(ctx, retryAttempts, w.RetryWait, func() ([]byte, error) {
		return w.Objects.Download(ctx, r.ObjectKey)
	})
	if err != nil {
		return nil, fmt.Errorf("file download error: %w", err)
	}

	c, err := w.Resumes.Parse(model.RawDocument{Name: r.OriginalFilename, Format: format, Data: data})
	if err != nil {
		return nil, err
	}
	if c.Name == "" || c.Name == model.UnknownName {
		c.Name = strings.TrimSuffix(r.OriginalFilename, filepath.Ext(r.OriginalFilename))
	}
	c.ID = r.ID

	id, err := retry(ctx, retryAttempts, w.RetryWait, func() (uuid.UUID, error) {
		return w.Candidates.InsertFromResume(ctx, c, r.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store candidate: %w", err)
	}
	c.ID = id
	return c, nil
}

// setStatus writes the session status and publishes it. Failures are logged
// only; the session outcome does not depend on them.
func (w *WorkerConfig) setStatus(ctx context.Context, id uuid.UUID, status, message string) {
	log := w.logger().With("session_id", id, "status", status)
	if err := w.DB.SetSessionStatus(ctx, database.SetSessionStatusParams{Status: status, ID: id}); err != nil {
		log.Error("failed to update session status", "error", err)
	}
	update := SessionUpdate{SessionID: id, Status: status, Message: message, Timestamp: time.Now()}
	if err := w.Updates.Publish(ctx, update); err != nil {
		log.Error("failed to publish update", "error", err)
	}
}

// handleMessage runs one queued session through processing.
func (w *WorkerConfig) handleMessage(ctx context.Context, workerID int, body []byte) {
	var s Session
	if err := json.Unmarshal(body, &s); err != nil {
		w.logger().Error("error unmarshalling message body", "worker", workerID, "error", err)
		if s.ID != uuid.Nil {
			w.setStatus(ctx, s.ID, StatusFailed, "analysis failed")
		}
		return
	}
	w.logger().Info("processing session", "worker", workerID, "session_id", s.ID)

	w.setStatus(ctx, s.ID, StatusProcessing, "analysis started")
	if err := w.processSession(ctx, s); err != nil {
		w.logger().Error("session failed", "worker", workerID, "session_id", s.ID, "error", err)
		w.setStatus(context.WithoutCancel(ctx), s.ID, StatusFailed, "analysis failed")
		return
	}
	w.setStatus(ctx, s.ID, StatusCompleted, "analysis completed")
}

func (w *WorkerConfig) worker(ctx context.Context, id int) error {
	conn, err := amqp.Dial(w.RabbitMQURL)
	if err != nil {
		return fmt.Errorf("error dialling rabbitmq: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("error connecting to rabbitmq channel: %w", err)
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		sessionsQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}
	if err := ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("failed to set qos: %w", err)
	}

	msgs, err := ch.Consume(
		sessionsQueue,
		fmt.Sprintf("hirematch-worker-%d", id),
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("error consuming rabbitmq message: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return errors.New("delivery channel closed")
			}
			w.handleMessage(ctx, id, msg.Body)
			if err := msg.Ack(false); err != nil {
				w.logger().Error("failed to ack message", "worker", id, "error", err)
			}
		}
	}
}

// StartConsumerWorkerPool blocks until every worker has stopped.
func (w *WorkerConfig) StartConsumerWorkerPool(ctx context.Context, numWorkers int) {
	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for i := range numWorkers {
		w.logger().Info("worker started", "worker", i+1)
		go func() {
			defer wg.Done()
			if err := w.worker(ctx, i+1); err != nil {
				w.logger().Error("worker stopped", "worker", i+1, "error", err)
			}
		}()
	}
	wg.Wait()
}
