// Package jobspec turns free-text job descriptions into JobRequirements.
package jobspec

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/muhammadolammi/hirematch/internal/llm"
	"github.com/muhammadolammi/hirematch/internal/model"
	"github.com/muhammadolammi/hirematch/internal/skills"
)

var ErrEmptyDescription = errors.New("empty job description")

// Defaults returns the neutral requirements used when nothing better is
// known.
func Defaults() model.JobRequirements {
	return model.JobRequirements{
		RequiredSkills: []string{},
		Experience: model.ExperienceRequirement{
			Level:       model.NotSpecified,
			Description: model.NotSpecified,
		},
		Education: model.EducationRequirement{
			Degree:      model.NotSpecified,
			Field:       model.NotSpecified,
			Description: model.NotSpecified,
		},
		Responsibilities:        []string{},
		PreferredQualifications: []string{},
	}
}

// Parser structures job descriptions with a language model.
type Parser struct {
	Provider llm.Provider
	Logger   *slog.Logger
}

func NewParser(provider llm.Provider, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{Provider: provider, Logger: logger}
}

// Parse always returns fully populated requirements. The error reports a
// provider failure or a repaired answer and is informational: the returned
// requirements fall back to defaults for whatever could not be read.
func (p *Parser) Parse(ctx context.Context, description string) (model.JobRequirements, error) {
	if strings.TrimSpace(description) == "" {
		return Defaults(), ErrEmptyDescription
	}

	raw, err := p.Provider.Generate(ctx, prompt(description))
	if err != nil {
		p.logger().Warn("job requirements provider failed, using defaults", "error", err)
		return Defaults(), fmt.Errorf("job requirements: %w", err)
	}

	doc, conformErr := schema.Conform(raw)
	if conformErr != nil {
		p.logger().Warn("job requirements response repaired", "error", conformErr)
	}

	req, err := decode(doc)
	if err != nil {
		return Defaults(), fmt.Errorf("job requirements: %w", err)
	}
	return req, conformErr
}

func (p *Parser) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}

func decode(doc []byte) (model.JobRequirements, error) {
	req := Defaults()
	if err := json.Unmarshal(doc, &req); err != nil {
		return Defaults(), err
	}
	req.RequiredSkills = skills.Normalize(req.RequiredSkills)
	req.Experience.Level = NormalizeLevel(req.Experience.Level)
	req.Title = strings.TrimSpace(req.Title)
	req.Location = strings.TrimSpace(req.Location)
	if req.Responsibilities == nil {
		req.Responsibilities = []string{}
	}
	if req.PreferredQualifications == nil {
		req.PreferredQualifications = []string{}
	}
	return req, nil
}

// NormalizeLevel maps free-form seniority wording onto Entry, Mid or Senior,
// and anything else onto "Not specified".
func NormalizeLevel(level string) string {
	l := strings.ToLower(level)
	switch {
	case strings.Contains(l, "senior"), strings.Contains(l, "lead"), strings.Contains(l, "principal"), strings.Contains(l, "staff"):
		return model.LevelSenior
	case strings.Contains(l, "mid"), strings.Contains(l, "intermediate"):
		return model.LevelMid
	case strings.Contains(l, "entry"), strings.Contains(l, "junior"), strings.Contains(l, "graduate"):
		return model.LevelEntry
	}
	return model.NotSpecified
}
