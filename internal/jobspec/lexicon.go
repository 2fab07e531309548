package jobspec

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/muhammadolammi/hirematch/internal/model"
	"github.com/muhammadolammi/hirematch/internal/skills"
)

var (
	yearsPattern    = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*\+?\s*(?:years?|yrs?)`)
	locationPattern = regexp.MustCompile(`(?im)^\s*location\s*[:\-]\s*(.+?)\s*$`)
	degreeWords     = regexp.MustCompile(`(?i)\b(bachelor(?:'s)?|master(?:'s)?|ph\.?d|doctorate|associate)\b`)
	fieldWords      = regexp.MustCompile(`(?i)\b(computer science|software engineering|engineering|information technology|data science|mathematics|statistics)\b`)
	preferredLine   = regexp.MustCompile(`(?i)\b(preferred|nice to have|bonus|plus)\b`)
	bulletPrefix    = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s+`)
	levelWords      = regexp.MustCompile(`(?i)\b(senior|lead|principal|staff|mid|intermediate|entry|junior|graduate)\b`)
)

const maxTitleLength = 80

// Lexicon builds requirements from the description with the skill lexicon
// and a few patterns, without calling a model.
func Lexicon(description string) model.JobRequirements {
	req := Defaults()
	if strings.TrimSpace(description) == "" {
		return req
	}

	req.RequiredSkills = skills.Normalize(skills.Scan(description))

	lines := strings.Split(description, "\n")
	for _, line := range lines {
		if t := strings.TrimSpace(line); t != "" {
			if len(t) <= maxTitleLength && !bulletPrefix.MatchString(line) {
				req.Title = t
			}
			break
		}
	}
	if m := locationPattern.FindStringSubmatch(description); m != nil {
		req.Location = m[1]
	}

	if m := yearsPattern.FindStringSubmatch(description); m != nil {
		if years, err := strconv.ParseFloat(m[1], 64); err == nil {
			req.Experience.Years = years
			req.Experience.Description = strings.TrimSpace(m[0])
		}
	}
	if m := levelWords.FindString(description); m != "" {
		req.Experience.Level = NormalizeLevel(m)
	}
	if req.Experience.Level == model.NotSpecified && req.Experience.Years > 0 {
		req.Experience.Level = levelForYears(req.Experience.Years)
	}

	if m := degreeWords.FindString(description); m != "" {
		req.Education.Degree = m
	}
	if m := fieldWords.FindString(description); m != "" {
		req.Education.Field = m
	}

	for _, line := range lines {
		if !bulletPrefix.MatchString(line) {
			continue
		}
		item := strings.TrimSpace(bulletPrefix.ReplaceAllString(line, ""))
		if item == "" {
			continue
		}
		if preferredLine.MatchString(item) {
			req.PreferredQualifications = append(req.PreferredQualifications, item)
		} else {
			req.Responsibilities = append(req.Responsibilities, item)
		}
	}
	return req
}

func levelForYears(years float64) string {
	c := model.Candidate{TotalExperienceYears: years}
	return c.ExperienceLevel()
}
