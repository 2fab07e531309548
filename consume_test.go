package main

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammadolammi/hirematch/internal/database"
	"github.com/muhammadolammi/hirematch/internal/jobspec"
	"github.com/muhammadolammi/hirematch/internal/llm"
	"github.com/muhammadolammi/hirematch/internal/model"
	"github.com/muhammadolammi/hirematch/internal/resume"
	"github.com/muhammadolammi/hirematch/internal/similarity"
)

type fakeDB struct {
	mu        sync.Mutex
	resumes   []database.Resume
	listErr   error
	statuses  []string
	saved     *database.SaveMatchResultsParams
	saveCalls int
}

func (f *fakeDB) ListSessionResumes(context.Context, uuid.UUID) ([]database.Resume, error) {
	return f.resumes, f.listErr
}

func (f *fakeDB) SetSessionStatus(_ context.Context, arg database.SetSessionStatusParams) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses = append(f.statuses, arg.Status)
	return nil
}

func (f *fakeDB) SaveMatchResults(_ context.Context, arg database.SaveMatchResultsParams) error {
	f.saveCalls++
	if f.saveCalls == 1 {
		return errors.New("connection reset")
	}
	f.saved = &arg
	return nil
}

type fakeCandidates struct {
	saved map[uuid.UUID]*model.Candidate
}

func (f *fakeCandidates) InsertFromResume(_ context.Context, c *model.Candidate, resumeID uuid.UUID) (uuid.UUID, error) {
	if err := c.Validate(); err != nil {
		return uuid.Nil, err
	}
	f.saved[resumeID] = c
	return c.ID, nil
}

type fakeObjects map[string]string

func (f fakeObjects) Download(_ context.Context, key string) ([]byte, error) {
	body, ok := f[key]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return []byte(body), nil
}

type fakeUpdates struct {
	updates []SessionUpdate
}

func (f *fakeUpdates) Publish(_ context.Context, u SessionUpdate) error {
	f.updates = append(f.updates, u)
	return nil
}

const johnSmith = "John Smith\njohnsmith@email.com\n555-123-4567\nPython, Django, AWS\n" +
	"Bachelor of Science in Computer Science, MIT, 2015-2019"

func newTestWorker(db *fakeDB, objects fakeObjects, answer string) (*WorkerConfig, *fakeCandidates, *fakeUpdates) {
	candidates := &fakeCandidates{saved: map[uuid.UUID]*model.Candidate{}}
	updates := &fakeUpdates{}
	provider := llm.ProviderFunc(func(context.Context, string) (string, error) { return answer, nil })
	engine := similarity.NewEngine(similarity.Lexical{})
	return &WorkerConfig{
		DB:         db,
		Candidates: candidates,
		Objects:    objects,
		Updates:    updates,
		Resumes:    &resume.Parser{Now: func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }},
		Jobs:       jobspec.NewParser(provider, nil),
		Engine:     engine,
	}, candidates, updates
}

func TestProcessSession(t *testing.T) {
	goodID, badID := uuid.New(), uuid.New()
	db := &fakeDB{resumes: []database.Resume{
		{ID: goodID, OriginalFilename: "john.txt", Mime: "text/plain", ObjectKey: "s/john.txt"},
		{ID: badID, OriginalFilename: "scan.png", Mime: "image/png", ObjectKey: "s/scan.png"},
	}}
	answer := "```json\n{\"job_title\":\"Backend Developer\",\"required_skills\":[\"Python\",\"Django\"]," +
		"\"required_experience\":{\"years\":0,\"level\":\"Entry\",\"description\":\"\"}}\n```"
	w, candidates, _ := newTestWorker(db, fakeObjects{"s/john.txt": johnSmith}, answer)

	session := Session{ID: uuid.New(), JobTitle: "Backend", JobDescription: "We need Python and Django."}
	require.NoError(t, w.processSession(context.Background(), session))

	require.Contains(t, candidates.saved, goodID)
	assert.Equal(t, "John Smith", candidates.saved[goodID].Name)
	assert.Equal(t, goodID, candidates.saved[goodID].ID)

	require.NotNil(t, db.saved)
	assert.Equal(t, 2, db.saveCalls)
	assert.Equal(t, session.ID, db.saved.SessionID)

	var job model.JobRequirements
	require.NoError(t, json.Unmarshal(db.saved.JobRequirements, &job))
	assert.Equal(t, "Backend Developer", job.Title)
	assert.Equal(t, []string{"django", "python"}, job.RequiredSkills)

	var results SessionResults
	require.NoError(t, json.Unmarshal(db.saved.Results, &results))
	assert.Equal(t, 1, results.Candidates)
	require.Len(t, results.Matches, 1)
	assert.Equal(t, "John Smith", results.Matches[0].CandidateName)
	assert.Equal(t, []string{"django", "python"}, results.Matches[0].MatchedSkills)
	assert.Equal(t, 1.0, results.Matches[0].ComponentScores[model.ComponentExperience])
	require.Len(t, results.Failures, 1)
	assert.Equal(t, badID, results.Failures[0].ResumeID)
}

func TestCandidateNameFallsBackToFilename(t *testing.T) {
	id := uuid.New()
	db := &fakeDB{resumes: []database.Resume{
		{ID: id, OriginalFilename: "jane_doe.txt", Mime: "text/plain", ObjectKey: "s/jane.txt"},
	}}
	w, candidates, _ := newTestWorker(db, fakeObjects{"s/jane.txt": "jane.doe@example.com\n555-987-6543\npython, django\n"}, "{}")

	require.NoError(t, w.processSession(context.Background(), Session{ID: uuid.New(), JobDescription: "Python role"}))

	require.Contains(t, candidates.saved, id)
	assert.Equal(t, "jane_doe", candidates.saved[id].Name)
}

func TestProcessSessionUsesSessionTitleWhenModelFails(t *testing.T) {
	db := &fakeDB{resumes: []database.Resume{
		{ID: uuid.New(), OriginalFilename: "john.txt", Mime: "text/plain", ObjectKey: "s/john.txt"},
	}}
	w, _, _ := newTestWorker(db, fakeObjects{"s/john.txt": johnSmith}, "I cannot help with that.")

	require.NoError(t, w.processSession(context.Background(), Session{ID: uuid.New(), JobTitle: "Backend", JobDescription: "Python role"}))

	var job model.JobRequirements
	require.NoError(t, json.Unmarshal(db.saved.JobRequirements, &job))
	assert.Equal(t, "Backend", job.Title)
	assert.Equal(t, model.NotSpecified, job.Experience.Level)
	assert.Empty(t, job.RequiredSkills)
}

func TestHandleMessageStatuses(t *testing.T) {
	t.Run("completed", func(t *testing.T) {
		db := &fakeDB{}
		w, _, updates := newTestWorker(db, fakeObjects{}, "{}")
		body, err := json.Marshal(Session{ID: uuid.New(), JobDescription: "Go developer"})
		require.NoError(t, err)

		w.handleMessage(context.Background(), 1, body)

		assert.Equal(t, []string{StatusProcessing, StatusCompleted}, db.statuses)
		require.Len(t, updates.updates, 2)
		assert.Equal(t, "analysis completed", updates.updates[1].Message)
	})

	t.Run("failed", func(t *testing.T) {
		db := &fakeDB{listErr: errors.New("db down")}
		w, _, updates := newTestWorker(db, fakeObjects{}, "{}")
		body, err := json.Marshal(Session{ID: uuid.New()})
		require.NoError(t, err)

		w.handleMessage(context.Background(), 1, body)

		assert.Equal(t, []string{StatusProcessing, StatusFailed}, db.statuses)
		require.Len(t, updates.updates, 2)
		assert.Equal(t, StatusFailed, updates.updates[1].Status)
	})

	t.Run("malformed body", func(t *testing.T) {
		db := &fakeDB{}
		w, _, updates := newTestWorker(db, fakeObjects{}, "{}")

		w.handleMessage(context.Background(), 1, []byte("not json"))

		assert.Empty(t, db.statuses)
		assert.Empty(t, updates.updates)
	})
}

func TestRetry(t *testing.T) {
	calls := 0
	got, err := retry(context.Background(), 3, 0, func() (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("transient")
		}
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 3, calls)

	calls = 0
	_, err = retry(context.Background(), 2, 0, func() (int, error) {
		calls++
		return 0, errors.New("permanent")
	})
	assert.ErrorContains(t, err, "after 2 attempts: permanent")
	assert.Equal(t, 2, calls)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = retry(ctx, 3, time.Hour, func() (int, error) { return 0, errors.New("transient") })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRoutingKey(t *testing.T) {
	assert.Equal(t, "session.abc", routingKey("abc"))
}
