package jobspec

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammadolammi/hirematch/internal/llm"
	"github.com/muhammadolammi/hirematch/internal/model"
)

func reply(answer string, err error) llm.Provider {
	return llm.ProviderFunc(func(context.Context, string) (string, error) { return answer, err })
}

func TestParseWellFormed(t *testing.T) {
	answer := "```json\n" + `{
  "job_title": "Backend Engineer",
  "location": "Austin, TX",
  "required_skills": ["Go", "PostgreSQL", "K8s"],
  "required_experience": {"years": 4, "level": "Mid-level", "description": "4+ years backend"},
  "required_education": {"degree": "Bachelor", "field": "Computer Science", "description": "BS or equivalent"},
  "responsibilities": ["Build APIs"],
  "preferred_qualifications": ["AWS"]
}` + "\n```"

	req, err := NewParser(reply(answer, nil), nil).Parse(context.Background(), "We need a backend engineer")
	var malformed *llm.MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "embedded", malformed.Stage)

	assert.Equal(t, "Backend Engineer", req.Title)
	assert.Equal(t, "Austin, TX", req.Location)
	assert.Equal(t, []string{"go", "kubernetes", "postgresql"}, req.RequiredSkills)
	assert.Equal(t, 4.0, req.Experience.Years)
	assert.Equal(t, model.LevelMid, req.Experience.Level)
	assert.Equal(t, "Computer Science", req.Education.Field)
	assert.Equal(t, []string{"Build APIs"}, req.Responsibilities)
	assert.Equal(t, []string{"AWS"}, req.PreferredQualifications)
}

func TestParseDirectJSONHasNoError(t *testing.T) {
	answer := `{"required_skills":["python"],"required_experience":{"years":1,"level":"Entry","description":"x"},` +
		`"required_education":{"degree":"Not specified","field":"Not specified","description":"Not specified"},` +
		`"responsibilities":[],"preferred_qualifications":[]}`
	req, err := NewParser(reply(answer, nil), nil).Parse(context.Background(), "junior python dev")
	require.NoError(t, err)
	assert.Equal(t, []string{"python"}, req.RequiredSkills)
	assert.Equal(t, model.LevelEntry, req.Experience.Level)
}

func TestParseFillsMissingKeys(t *testing.T) {
	req, err := NewParser(reply(`{"required_skills": ["rust"]}`, nil), nil).Parse(context.Background(), "rust role")
	var malformed *llm.MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Defaulted, "required_experience")

	assert.Equal(t, []string{"rust"}, req.RequiredSkills)
	assert.Equal(t, model.NotSpecified, req.Experience.Level)
	assert.Equal(t, model.NotSpecified, req.Education.Degree)
	assert.NotNil(t, req.Responsibilities)
	assert.NotNil(t, req.PreferredQualifications)
}

func TestParseAlwaysReturnsDefaults(t *testing.T) {
	providerDown := errors.New("503")
	tests := []struct {
		name        string
		provider    llm.Provider
		description string
	}{
		{"provider error", reply("", providerDown), "a job"},
		{"non json answer", reply("I'm sorry, I can't do that.", nil), "a job"},
		{"empty description", reply("{}", nil), "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewParser(tt.provider, nil).Parse(context.Background(), tt.description)
			assert.Error(t, err)
			assert.Equal(t, Defaults(), req)
		})
	}
}

func TestNormalizeLevel(t *testing.T) {
	assert.Equal(t, model.LevelSenior, NormalizeLevel("Senior / Lead"))
	assert.Equal(t, model.LevelMid, NormalizeLevel("mid"))
	assert.Equal(t, model.LevelEntry, NormalizeLevel("Junior"))
	assert.Equal(t, model.NotSpecified, NormalizeLevel("whatever"))
}

func TestLexicon(t *testing.T) {
	desc := `Data Engineer
Location: Remote
We are looking for someone with 3+ years of experience.
- Build pipelines with Python and SQL
- Maintain Docker images
- AWS experience is a plus
Bachelor's degree in Computer Science required.`

	req := Lexicon(desc)
	assert.Equal(t, "Data Engineer", req.Title)
	assert.Equal(t, "Remote", req.Location)
	assert.Equal(t, 3.0, req.Experience.Years)
	assert.Equal(t, model.LevelMid, req.Experience.Level)
	assert.Equal(t, "Bachelor's", req.Education.Degree)
	assert.Equal(t, "Computer Science", req.Education.Field)
	assert.Subset(t, req.RequiredSkills, []string{"python", "sql", "docker", "amazon web services"})
	assert.Equal(t, []string{"Build pipelines with Python and SQL", "Maintain Docker images"}, req.Responsibilities)
	assert.Equal(t, []string{"AWS experience is a plus"}, req.PreferredQualifications)

	assert.Equal(t, Defaults(), Lexicon(""))
}
