package llm

import "strings"

// CleanJSON strips a surrounding markdown code fence, with or without a
// language tag, from a model answer.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)
	if !strings.HasPrefix(clean, "```") {
		return clean
	}
	clean = strings.TrimPrefix(clean, "```")
	if i := strings.IndexByte(clean, '\n'); i >= 0 {
		tag := strings.TrimSpace(clean[:i])
		if !strings.ContainsAny(tag, "{[ ") {
			clean = clean[i+1:]
		}
	}
	if i := strings.LastIndex(clean, "```"); i >= 0 {
		clean = clean[:i]
	}
	return strings.TrimSpace(clean)
}

// embeddedObject returns the outermost {...} span of text, or "".
func embeddedObject(text string) string {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}
