// Package model holds the records that flow through the parsing and
// matching pipeline.
package model

import (
	"github.com/google/uuid"
)

// Document formats accepted by the text extractor.
const (
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
	FormatTXT  = "txt"
	FormatHTML = "html"
)

// Defaults used when an extractor finds nothing.
const (
	UnknownName  = "Unknown"
	NotProvided  = "Not provided"
	NotSpecified = "Not specified"
)

// Experience levels, shared with the job requirement schema.
const (
	LevelEntry  = "Entry"
	LevelMid    = "Mid"
	LevelSenior = "Senior"
)

type RawDocument struct {
	Name   string
	Format string
	Data   []byte
}

type EducationEntry struct {
	Degree       string  `json:"degree" validate:"required"`
	FieldOfStudy string  `json:"field_of_study"`
	Institution  string  `json:"institution" validate:"required"`
	StartDate    Date    `json:"start_date"`
	EndDate      Date    `json:"end_date"`
	GPA          float64 `json:"gpa" validate:"gte=0"`
}

type ExperienceEntry struct {
	Title       string   `json:"title" validate:"required"`
	Company     string   `json:"company" validate:"required"`
	StartDate   Date     `json:"start_date"`
	EndDate     Date     `json:"end_date"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

type Candidate struct {
	ID                   uuid.UUID         `json:"id,omitzero"`
	Name                 string            `json:"name" validate:"required"`
	Email                string            `json:"email"`
	Phone                string            `json:"phone"`
	Location             string            `json:"location"`
	Skills               []string          `json:"skills" validate:"unique,dive,min=2"`
	Education            []EducationEntry  `json:"education" validate:"dive"`
	Experience           []ExperienceEntry `json:"experience" validate:"dive"`
	TotalExperienceYears float64           `json:"total_experience_years" validate:"gte=0"`
}

// ExperienceLevel buckets total years into the levels job postings use.
func (c *Candidate) ExperienceLevel() string {
	switch {
	case c.TotalExperienceYears < 2:
		return LevelEntry
	case c.TotalExperienceYears < 5:
		return LevelMid
	default:
		return LevelSenior
	}
}

type ExperienceRequirement struct {
	Years       float64 `json:"years"`
	Level       string  `json:"level"`
	Description string  `json:"description"`
}

type EducationRequirement struct {
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Description string `json:"description"`
}

type JobRequirements struct {
	Title                   string                `json:"job_title,omitempty"`
	Location                string                `json:"location,omitempty"`
	RequiredSkills          []string              `json:"required_skills"`
	Experience              ExperienceRequirement `json:"required_experience"`
	Education               EducationRequirement  `json:"required_education"`
	Responsibilities        []string              `json:"responsibilities"`
	PreferredQualifications []string              `json:"preferred_qualifications"`
}

// Similarity component names.
const (
	ComponentSkills     = "skills"
	ComponentLocation   = "location"
	ComponentExperience = "experience"
)

type MatchResult struct {
	CandidateID     uuid.UUID          `json:"candidate_id,omitzero"`
	CandidateName   string             `json:"candidate_name"`
	OverallScore    float64            `json:"overall_score"`
	ComponentScores map[string]float64 `json:"component_scores"`
	TextScore       float64            `json:"text_score"`
	MatchedSkills   []string           `json:"matched_skills"`
	UnmatchedSkills []string           `json:"unmatched_skills"`
}
