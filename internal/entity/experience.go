package entity

import (
	"strings"

	"github.com/muhammadolammi/hirematch/internal/model"
	"github.com/muhammadolammi/hirematch/internal/skills"
)

// Experience scans text line by line and returns every entry that ends up
// with both a title and a company. Lines between two opening lines become
// the entry description and contribute skills.
func Experience(text string) []model.ExperienceEntry {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	m := newExperienceMachine()
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m.step(line)
	}
	return m.finish()
}

func newExperienceMachine() *accumulator[model.ExperienceEntry] {
	return &accumulator[model.ExperienceEntry]{
		opens:    isExperienceLine,
		open:     parseExperienceLine,
		feed:     appendDescription,
		complete: func(e model.ExperienceEntry) bool { return e.Title != "" && e.Company != "" },
	}
}

func isExperienceLine(line string) bool {
	return experienceKeyword.MatchString(line) ||
		durationKeyword.MatchString(line) ||
		titleKeyword.MatchString(line) ||
		presentKeyword.MatchString(line)
}

func parseExperienceLine(line string) model.ExperienceEntry {
	entry := model.ExperienceEntry{
		StartDate: model.Unspecified,
		EndDate:   model.Unspecified,
	}
	entry.Title, entry.Company = titleAndCompany(line)

	if start, end, ok := parseDateRange(line); ok {
		entry.StartDate = start
		entry.EndDate = end
	}
	if presentKeyword.MatchString(line) {
		entry.EndDate = model.Present
	}
	entry.Skills = mergeSkills(nil, skills.Scan(line))
	return entry
}

func appendDescription(entry *model.ExperienceEntry, line string) {
	if entry.Description == "" {
		entry.Description = line
	} else {
		entry.Description += "\n" + line
	}
	entry.Skills = mergeSkills(entry.Skills, skills.Scan(line))
}

// titleAndCompany handles "Title at Company, dates" first, then falls back
// to the segments carrying a job title keyword and a company suffix.
func titleAndCompany(line string) (title, company string) {
	withoutDates := line
	if loc := dateRange.FindStringIndex(line); loc != nil {
		withoutDates = strings.TrimSpace(line[:loc[0]] + " " + line[loc[1]:])
	}

	if loc := atSeparator.FindStringIndex(withoutDates); loc != nil {
		left, right := withoutDates[:loc[0]], withoutDates[loc[1]:]
		if titleKeyword.MatchString(left) {
			segs := segmentSeparator.Split(left, -1)
			title = trimEntity(segs[len(segs)-1])
			company = trimEntity(segmentSeparator.Split(right, -1)[0])
			if i := strings.Index(company, "("); i > 0 {
				company = trimEntity(company[:i])
			}
			return title, company
		}
	}

	for _, seg := range segmentSeparator.Split(withoutDates, -1) {
		if title == "" && titleKeyword.MatchString(seg) {
			title = trimEntity(seg)
			continue
		}
		if company == "" && companyKeyword.MatchString(seg) {
			company = trimEntity(seg)
		}
	}
	return title, company
}

func trimEntity(s string) string {
	return strings.Trim(strings.TrimSpace(s), "-–—:;.")
}

func mergeSkills(existing, found []string) []string {
	for _, s := range found {
		dup := false
		for _, e := range existing {
			if e == s {
				dup = true
				break
			}
		}
		if !dup {
			existing = append(existing, s)
		}
	}
	return existing
}
