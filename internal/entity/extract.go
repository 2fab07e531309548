// Package entity pulls contact details, skills, education and experience
// out of resume text with regular expressions and a fixed skill lexicon.
// Every extractor degrades to a documented default instead of failing.
package entity

import (
	"github.com/muhammadolammi/hirematch/internal/model"
	"github.com/muhammadolammi/hirematch/internal/skills"
)

// Partial is what the extractors found before skill normalization and
// experience aggregation.
type Partial struct {
	Name       string
	Email      string
	Phone      string
	Location   string
	Skills     []string
	Education  []model.EducationEntry
	Experience []model.ExperienceEntry
}

// Extract runs every extractor over text.
func Extract(text string) Partial {
	return Partial{
		Name:       Name(text),
		Email:      Email(text),
		Phone:      Phone(text),
		Location:   Location(text),
		Skills:     Skills(text),
		Education:  Education(text),
		Experience: Experience(text),
	}
}

// Skills returns the lexicon skills mentioned anywhere in text.
func Skills(text string) []string {
	return skills.Scan(text)
}

// Empty reports whether every extractor fell back to its default.
func (p Partial) Empty() bool {
	return p.Name == model.UnknownName &&
		p.Email == model.NotProvided &&
		p.Phone == model.NotProvided &&
		p.Location == "" &&
		len(p.Skills) == 0 &&
		len(p.Education) == 0 &&
		len(p.Experience) == 0
}
