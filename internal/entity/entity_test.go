package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammadolammi/hirematch/internal/model"
)

const johnSmith = "John Smith\njohnsmith@email.com\n555-123-4567\nPython, Django, AWS\nBachelor of Science in Computer Science, MIT, 2015-2019"

func TestExtractJohnSmith(t *testing.T) {
	p := Extract(johnSmith)

	assert.Equal(t, "John Smith", p.Name)
	assert.Equal(t, "johnsmith@email.com", p.Email)
	assert.Equal(t, "5551234567", p.Phone)
	assert.Subset(t, p.Skills, []string{"python", "django"})
	assert.Empty(t, p.Experience)

	require.Len(t, p.Education, 1)
	edu := p.Education[0]
	assert.Contains(t, edu.Degree, "Bachelor")
	assert.Contains(t, edu.Institution, "MIT")
	assert.Equal(t, "Computer Science", edu.FieldOfStudy)
	assert.Equal(t, "2015-01-01", edu.StartDate.String())
	assert.Equal(t, "2019-12-31", edu.EndDate.String())
	assert.Zero(t, edu.GPA)
	assert.False(t, p.Empty())
}

func TestExtractEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   \n\t"} {
		p := Extract(text)
		assert.True(t, p.Empty())
		assert.Equal(t, model.UnknownName, p.Name)
		assert.Equal(t, model.NotProvided, p.Email)
		assert.Equal(t, model.NotProvided, p.Phone)
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"first line", "Jane Doe\nEngineer", "Jane Doe"},
		{"skips header", "Resume\nMary Ann Lee\n", "Mary Ann Lee"},
		{"single token", "jane\nsomething else", model.UnknownName},
		{"beyond scan window", "a\nb\nc\nd\ne\nJane Doe", model.UnknownName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Name(tt.text))
		})
	}
}

func TestEmailVariants(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"contact: John.Doe@Example.COM", "john.doe@example.com"},
		{"john [at] example.com", "john@example.com"},
		{"jane @ example.org", "jane@example.org"},
		{"no address here", model.NotProvided},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Email(tt.text))
		})
	}
}

func TestPhoneVariants(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"555-123-4567", "5551234567"},
		{"call (555) 123-4567", "5551234567"},
		{"+1 555 123 4567", "+15551234567"},
		{"555.123.4567", "5551234567"},
		{"no phone", model.NotProvided},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Phone(tt.text))
		})
	}
}

func TestLocation(t *testing.T) {
	assert.Equal(t, "Austin, TX", Location("Jane Doe\nLocation: Austin, TX\n"))
	assert.Equal(t, "Seattle, WA", Location("Jane Doe\nSeattle, WA\njane@example.com"))
	assert.Equal(t, "", Location("Jane Doe\njane@example.com"))
}

func TestEducationDiscardsIncompleteEntries(t *testing.T) {
	text := "Computer Science coursework\nMaster of Science, Stanford University, 2019 - 2021, GPA: 3.85"
	entries := Education(text)

	require.Len(t, entries, 1)
	assert.Equal(t, "Master of Science", entries[0].Degree)
	assert.Equal(t, "Stanford University", entries[0].Institution)
	assert.Equal(t, model.NotSpecified, entries[0].FieldOfStudy)
	assert.InDelta(t, 3.85, entries[0].GPA, 1e-9)
	assert.Equal(t, "2019-01-01", entries[0].StartDate.String())
	assert.Equal(t, "2021-12-31", entries[0].EndDate.String())
}

func TestEducationMissingDatesStayUnspecified(t *testing.T) {
	entries := Education("Bachelor of Arts, Harvard University")
	require.Len(t, entries, 1)
	assert.True(t, entries[0].StartDate.IsUnspecified())
	assert.True(t, entries[0].EndDate.IsUnspecified())
}

func TestExperience(t *testing.T) {
	text := "Work Experience\n" +
		"Senior Software Engineer at Acme Corp, Jan 2020 - Present\n" +
		"Built microservices in Python and Docker\n" +
		"Data Analyst | Globex Inc | 2016 - 2019\n"

	entries := Experience(text)
	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, "Senior Software Engineer", first.Title)
	assert.Equal(t, "Acme Corp", first.Company)
	assert.Equal(t, "2020-01-01", first.StartDate.String())
	assert.True(t, first.EndDate.IsPresent())
	assert.Equal(t, "Built microservices in Python and Docker", first.Description)
	assert.Equal(t, []string{"python", "docker", "microservices"}, first.Skills)

	second := entries[1]
	assert.Equal(t, "Data Analyst", second.Title)
	assert.Equal(t, "Globex Inc", second.Company)
	assert.Equal(t, "2016-01-01", second.StartDate.String())
	assert.Equal(t, "2019-12-31", second.EndDate.String())
}

func TestExperienceWithoutCompanyIsDiscarded(t *testing.T) {
	assert.Empty(t, Experience("Software Engineer\nwrote code"))
}

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		line      string
		start     string
		end       string
		ok        bool
		openEnded bool
	}{
		{line: "2015-2019", start: "2015-01-01", end: "2019-12-31", ok: true},
		{line: "Mar 2018 – Feb 2020", start: "2018-03-01", end: "2020-02-29", ok: true},
		{line: "September 2021 - current", start: "2021-09-01", ok: true, openEnded: true},
		{line: "no dates", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			start, end, ok := parseDateRange(tt.line)
			require.Equal(t, tt.ok, ok)
			if !ok {
				assert.True(t, start.IsUnspecified())
				return
			}
			assert.Equal(t, tt.start, start.String())
			if tt.openEnded {
				assert.True(t, end.IsPresent())
				return
			}
			assert.Equal(t, tt.end, end.String())
		})
	}
}

func TestPresentResolvesAtReadTime(t *testing.T) {
	entries := Experience("Backend Developer at Initech LLC, 2022 - now")
	require.Len(t, entries, 1)

	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	end, ok := entries[0].EndDate.Resolve(now)
	require.True(t, ok)
	assert.Equal(t, now, end)
}
