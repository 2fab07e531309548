package entity

import (
	"strconv"
	"strings"

	"github.com/muhammadolammi/hirematch/internal/model"
)

const maxDegreeLength = 80

// Education scans text line by line and returns every entry that ends up
// with both a degree and an institution.
func Education(text string) []model.EducationEntry {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	m := newEducationMachine()
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m.step(line)
	}
	return m.finish()
}

func newEducationMachine() *accumulator[model.EducationEntry] {
	return &accumulator[model.EducationEntry]{
		opens:    isEducationLine,
		open:     parseEducationLine,
		complete: func(e model.EducationEntry) bool { return e.Degree != "" && e.Institution != "" },
	}
}

func isEducationLine(line string) bool {
	return degreePattern.MatchString(line) ||
		institutionPattern.MatchString(line) ||
		fieldPattern.MatchString(line)
}

func parseEducationLine(line string) model.EducationEntry {
	entry := model.EducationEntry{
		FieldOfStudy: model.NotSpecified,
		StartDate:    model.Unspecified,
		EndDate:      model.Unspecified,
	}

	if loc := degreePattern.FindStringIndex(line); loc != nil {
		entry.Degree = degreePhrase(line, loc)
		if field := fieldAfterIn(line[loc[0]:]); field != "" {
			entry.FieldOfStudy = field
		}
	}
	if entry.FieldOfStudy == model.NotSpecified {
		if m := fieldPattern.FindString(line); m != "" {
			entry.FieldOfStudy = m
		}
	}

	entry.Institution = institution(line, entry.Degree != "")

	if start, end, ok := parseDateRange(line); ok {
		entry.StartDate = start
		entry.EndDate = end
	}
	if m := gpaPattern.FindStringSubmatch(line); m != nil {
		if gpa, err := strconv.ParseFloat(m[1], 64); err == nil {
			entry.GPA = gpa
		}
	}
	return entry
}

// degreePhrase widens the degree keyword match to the phrase around it,
// e.g. "Bachelor of Science" out of "Bachelor of Science in Physics, ...".
func degreePhrase(line string, loc []int) string {
	phrase := line[loc[0]:]
	if i := strings.IndexAny(phrase, ",|(;"); i >= 0 {
		phrase = phrase[:i]
	}
	lower := strings.ToLower(phrase)
	for _, sep := range []string{" in ", " from ", " at "} {
		if i := strings.Index(lower, sep); i >= 0 {
			phrase = phrase[:i]
			lower = lower[:i]
		}
	}
	if loc := dateRange.FindStringIndex(phrase); loc != nil {
		phrase = phrase[:loc[0]]
	}
	phrase = strings.TrimSpace(phrase)
	if phrase == "" || len(phrase) > maxDegreeLength {
		return line[loc[0]:loc[1]]
	}
	return phrase
}

func fieldAfterIn(phrase string) string {
	lower := strings.ToLower(phrase)
	i := strings.Index(lower, " in ")
	if i < 0 {
		return ""
	}
	field := phrase[i+len(" in "):]
	if j := strings.IndexAny(field, ",|(;"); j >= 0 {
		field = field[:j]
	}
	if loc := dateRange.FindStringIndex(field); loc != nil {
		field = field[:loc[0]]
	}
	return strings.TrimSpace(field)
}

// institution returns the comma separated segment naming a school. When no
// segment carries an institution keyword and the line names a degree, the
// first segment that is not the degree, field, dates or GPA is used,
// which catches bare acronyms such as "MIT".
func institution(line string, hasDegree bool) string {
	segments := segmentSeparator.Split(line, -1)
	for _, seg := range segments {
		if institutionPattern.MatchString(seg) {
			return strings.TrimSpace(seg)
		}
	}
	if !hasDegree {
		return ""
	}
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" || degreePattern.MatchString(seg) || fieldPattern.MatchString(seg) ||
			dateRange.MatchString(seg) || gpaPattern.MatchString(seg) || !hasUpper(seg) {
			continue
		}
		return seg
	}
	return ""
}

func hasUpper(s string) bool {
	return strings.ToLower(s) != s
}
