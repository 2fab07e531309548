// Package outreach drafts recruiter emails for matched candidates.
package outreach

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/muhammadolammi/hirematch/internal/llm"
	"github.com/muhammadolammi/hirematch/internal/model"
)

const SystemPrompt = "You are a professional recruiter writing a personalized outreach email."

const maxSkills = 10

// Generator writes outreach emails with a language model.
type Generator struct {
	Provider llm.Provider
}

func NewGenerator(provider llm.Provider) *Generator {
	return &Generator{Provider: provider}
}

// Generate drafts an email inviting the candidate to apply for jobTitle.
func (g *Generator) Generate(ctx context.Context, c model.Candidate, jobTitle string) (string, error) {
	if strings.TrimSpace(jobTitle) == "" {
		return "", errors.New("outreach: empty job title")
	}
	out, err := g.Provider.Generate(ctx, Prompt(c, jobTitle))
	if err != nil {
		return "", fmt.Errorf("outreach email for %s: %w", c.Name, err)
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("outreach email for %s: empty response", c.Name)
	}
	return out, nil
}

// Prompt builds the email request from the candidate's name, leading
// skills and most recent position.
func Prompt(c model.Candidate, jobTitle string) string {
	skillList := c.Skills
	if len(skillList) > maxSkills {
		skillList = skillList[:maxSkills]
	}
	position := "Not provided"
	if len(c.Experience) > 0 {
		recent := c.Experience[0]
		position = strings.TrimSpace(recent.Title + " at " + recent.Company)
	}

	return fmt.Sprintf(`Write a personalized outreach email to %[1]s for a %[2]s position.

Candidate Information:
- Name: %[1]s
- Key Skills: %[3]s
- Current/Most Recent Position: %[4]s

The email should be personalized and mention the candidate's relevant experience and skills.
Explain why they would be a good fit for the role and end with a clear call to action.
Keep it professional but conversational, two or three paragraphs, with a greeting and signature.
`, c.Name, jobTitle, strings.Join(skillList, ", "), position)
}
