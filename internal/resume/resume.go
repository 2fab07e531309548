// Package resume wires text extraction, entity extraction, skill
// normalization and experience aggregation into a Candidate.
package resume

import (
	"errors"
	"fmt"
	"time"

	"github.com/muhammadolammi/hirematch/internal/entity"
	"github.com/muhammadolammi/hirematch/internal/experience"
	"github.com/muhammadolammi/hirematch/internal/model"
	"github.com/muhammadolammi/hirematch/internal/skills"
	"github.com/muhammadolammi/hirematch/internal/textextract"
)

// ErrNoExtractableContent is returned when every extractor fell back to
// its default value.
var ErrNoExtractableContent = errors.New("no extractable content in resume")

// Parser turns documents into candidates. The zero value is ready to use
// and resolves open-ended experience against time.Now.
type Parser struct {
	// Now overrides the clock used for open-ended experience entries.
	Now func() time.Time
}

func (p *Parser) now() time.Time {
	if p != nil && p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// Parse extracts the document text and builds a Candidate from it.
func (p *Parser) Parse(doc model.RawDocument) (*model.Candidate, error) {
	text, err := textextract.Extract(doc)
	if err != nil {
		return nil, err
	}
	c, err := p.ParseText(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", doc.Name, err)
	}
	return c, nil
}

// ParseText builds a Candidate from already extracted text.
func (p *Parser) ParseText(text string) (*model.Candidate, error) {
	partial := entity.Extract(text)
	if partial.Empty() {
		return nil, ErrNoExtractableContent
	}

	raw := append([]string{}, partial.Skills...)
	for i := range partial.Experience {
		raw = append(raw, partial.Experience[i].Skills...)
		partial.Experience[i].Skills = skills.Normalize(partial.Experience[i].Skills)
	}

	return &model.Candidate{
		Name:                 partial.Name,
		Email:                partial.Email,
		Phone:                partial.Phone,
		Location:             partial.Location,
		Skills:               skills.Normalize(raw),
		Education:            orEmpty(partial.Education),
		Experience:           orEmpty(partial.Experience),
		TotalExperienceYears: experience.TotalYears(partial.Experience, p.now()),
	}, nil
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
