// Package skills canonicalizes skill vocabulary and finds known skills in
// free text.
package skills

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

var (
	delimiters = regexp.MustCompile(`[,/&+]`)
	nonWord    = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)
)

const minSkillLength = 2

// Normalize maps raw skill strings onto their canonical names and returns
// them deduplicated in lexicographic order. Normalize(Normalize(x)) equals
// Normalize(x).
func Normalize(raw []string) []string {
	seen := make(map[string]struct{})
	for _, skill := range raw {
		whole := strings.ToLower(strings.TrimSpace(skill))
		if canonical, ok := aliases[whole]; ok {
			seen[canonical] = struct{}{}
			continue
		}
		for _, part := range delimiters.Split(whole, -1) {
			if canonical, ok := canonicalize(part); ok {
				seen[canonical] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Canonical returns the canonical form of a single skill, or "" when the
// skill normalizes away.
func Canonical(skill string) string {
	normalized := Normalize([]string{skill})
	if len(normalized) == 0 {
		return ""
	}
	return normalized[0]
}

func canonicalize(part string) (string, bool) {
	if canonical, ok := aliases[strings.TrimSpace(part)]; ok {
		return canonical, true
	}
	cleaned := strings.Join(strings.Fields(nonWord.ReplaceAllString(part, " ")), " ")
	if utf8.RuneCountInString(cleaned) < minSkillLength {
		return "", false
	}
	if canonical, ok := aliases[cleaned]; ok {
		cleaned = canonical
	}
	if _, stop := stopTokens[cleaned]; stop {
		return "", false
	}
	return cleaned, true
}

// Scan returns the lexicon entries that occur as substrings of text,
// ignoring case. Matching has no word boundaries, so short tokens can
// collide with longer words ("java" inside "javascript").
func Scan(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	lower := strings.ToLower(text)
	var found []string
	for _, skill := range lexicon {
		if strings.Contains(lower, skill) {
			found = append(found, skill)
		}
	}
	return found
}
