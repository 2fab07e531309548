// Package similarity scores how well a candidate fits job requirements.
package similarity

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/muhammadolammi/hirematch/internal/model"
	"github.com/muhammadolammi/hirematch/internal/rank"
	"github.com/muhammadolammi/hirematch/internal/skills"
)

// Component weights of the overall score.
const (
	skillsWeight     = 0.6
	locationWeight   = 0.2
	experienceWeight = 0.2
)

const defaultWorkers = 4

// Engine scores candidates against job requirements with a Strategy.
type Engine struct {
	Strategy Strategy
	// Threshold drops results scoring below it in ScoreAll.
	Threshold float64
	// Workers bounds concurrent scoring in ScoreAll.
	Workers int
}

func NewEngine(strategy Strategy) *Engine {
	if strategy == nil {
		strategy = Lexical{}
	}
	return &Engine{Strategy: strategy, Workers: defaultWorkers}
}

// Score compares one candidate with the job. Each component is the strategy
// similarity of the matching texts: skills, location and experience level.
// TextScore compares the concatenation of all three.
func (e *Engine) Score(ctx context.Context, job model.JobRequirements, c model.Candidate) (model.MatchResult, error) {
	strategy := e.Strategy
	if strategy == nil {
		strategy = Lexical{}
	}

	jobSkills := skills.Normalize(job.RequiredSkills)
	candSkills := skills.Normalize(c.Skills)
	jobLevel := levelText(job.Experience.Level)
	candLevel := c.ExperienceLevel()

	skillScore, err := strategy.Similarity(ctx, strings.Join(jobSkills, " "), strings.Join(candSkills, " "))
	if err != nil {
		return model.MatchResult{}, fmt.Errorf("skills similarity: %w", err)
	}
	locationScore, err := strategy.Similarity(ctx, job.Location, c.Location)
	if err != nil {
		return model.MatchResult{}, fmt.Errorf("location similarity: %w", err)
	}
	experienceScore, err := strategy.Similarity(ctx, jobLevel, candLevel)
	if err != nil {
		return model.MatchResult{}, fmt.Errorf("experience similarity: %w", err)
	}
	textScore, err := strategy.Similarity(ctx,
		profileText(jobSkills, job.Location, jobLevel),
		profileText(candSkills, c.Location, candLevel))
	if err != nil {
		return model.MatchResult{}, fmt.Errorf("text similarity: %w", err)
	}

	matched, unmatched := splitSkills(jobSkills, candSkills)
	return model.MatchResult{
		CandidateID:   c.ID,
		CandidateName: c.Name,
		OverallScore:  clamp(skillsWeight*skillScore + locationWeight*locationScore + experienceWeight*experienceScore),
		ComponentScores: map[string]float64{
			model.ComponentSkills:     skillScore,
			model.ComponentLocation:   locationScore,
			model.ComponentExperience: experienceScore,
		},
		TextScore:       textScore,
		MatchedSkills:   matched,
		UnmatchedSkills: unmatched,
	}, nil
}

// ScoreAll scores every candidate concurrently, drops results below the
// threshold and returns the rest ranked by overall score. Candidates with
// equal scores keep their input order.
func (e *Engine) ScoreAll(ctx context.Context, job model.JobRequirements, candidates []model.Candidate) ([]model.MatchResult, error) {
	results := make([]model.MatchResult, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	workers := e.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	g.SetLimit(workers)
	for i := range candidates {
		g.Go(func() error {
			r, err := e.Score(gctx, job, candidates[i])
			if err != nil {
				return fmt.Errorf("candidate %q: %w", candidates[i].Name, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	kept := results[:0]
	for _, r := range results {
		if r.OverallScore >= e.Threshold {
			kept = append(kept, r)
		}
	}
	return rank.By(kept, func(r model.MatchResult) float64 { return r.OverallScore }), nil
}

// levelText treats the "Not specified" default as no level.
func levelText(level string) string {
	if strings.EqualFold(strings.TrimSpace(level), model.NotSpecified) {
		return ""
	}
	return level
}

func profileText(skillList []string, location, level string) string {
	parts := append([]string{}, skillList...)
	if location != "" {
		parts = append(parts, location)
	}
	if level != "" {
		parts = append(parts, level)
	}
	return strings.Join(parts, " ")
}

func splitSkills(jobSkills, candSkills []string) (matched, unmatched []string) {
	have := make(map[string]bool, len(candSkills))
	for _, s := range candSkills {
		have[s] = true
	}
	matched, unmatched = []string{}, []string{}
	for _, s := range jobSkills {
		if have[s] {
			matched = append(matched, s)
		} else {
			unmatched = append(unmatched, s)
		}
	}
	return matched, unmatched
}
