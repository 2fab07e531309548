package jobspec

import "github.com/muhammadolammi/hirematch/internal/llm"

const requirementsSchema = `{
  "type": "object",
  "required": ["required_skills", "required_experience", "required_education", "responsibilities", "preferred_qualifications"],
  "properties": {
    "job_title": {"type": "string"},
    "location": {"type": "string"},
    "required_skills": {"type": "array", "items": {"type": "string"}},
    "required_experience": {
      "type": "object",
      "required": ["years", "level", "description"],
      "properties": {
        "years": {"type": "number", "minimum": 0},
        "level": {"type": "string"},
        "description": {"type": "string"}
      }
    },
    "required_education": {
      "type": "object",
      "required": ["degree", "field", "description"],
      "properties": {
        "degree": {"type": "string"},
        "field": {"type": "string"},
        "description": {"type": "string"}
      }
    },
    "responsibilities": {"type": "array", "items": {"type": "string"}},
    "preferred_qualifications": {"type": "array", "items": {"type": "string"}}
  }
}`

const requirementsDefaults = `{
  "required_skills": [],
  "required_experience": {"years": 0, "level": "Not specified", "description": "Not specified"},
  "required_education": {"degree": "Not specified", "field": "Not specified", "description": "Not specified"},
  "responsibilities": [],
  "preferred_qualifications": []
}`

var schema = llm.MustSchema("job_requirements", requirementsSchema, []byte(requirementsDefaults))
