package jobspec

import "fmt"

const systemPrompt = "You are a job analysis expert. Extract and structure job requirements from descriptions. " +
	"Return a valid JSON object with the exact structure specified and nothing else."

func prompt(description string) string {
	return fmt.Sprintf(`
Analyze the following job description and extract key requirements.
Return a valid JSON object with this structure:

{
  "job_title": string,
  "location": string,
  "required_skills": [string],
  "required_experience": {
    "years": number,
    "level": "Entry" | "Mid" | "Senior",
    "description": string
  },
  "required_education": {
    "degree": string,
    "field": string,
    "description": string
  },
  "responsibilities": [string],
  "preferred_qualifications": [string]
}

Use "Not specified" for unknown text fields and 0 for unknown years.
Base everything only on the provided text.
Return only the JSON object, without markdown or text before or after it.

Job Description:
%s
`, description)
}

// SystemPrompt is the instruction given to chat providers that accept one.
func SystemPrompt() string { return systemPrompt }
