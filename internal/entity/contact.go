package entity

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/muhammadolammi/hirematch/internal/model"
)

const (
	nameScanLines     = 5
	locationScanLines = 10
)

var sectionHeaders = map[string]struct{}{
	"resume": {}, "curriculum vitae": {}, "cv": {}, "contact": {},
	"contact information": {}, "profile": {}, "summary": {},
}

// Name returns the first run of two or more capitalized tokens found in the
// first lines of text, or "Unknown".
func Name(text string) string {
	if strings.TrimSpace(text) == "" {
		return model.UnknownName
	}
	for i, line := range strings.Split(text, "\n") {
		if i >= nameScanLines {
			break
		}
		line = strings.TrimSpace(line)
		if _, header := sectionHeaders[strings.ToLower(line)]; header {
			continue
		}
		var run []string
		for _, tok := range strings.Fields(line) {
			if isNameToken(tok) {
				run = append(run, tok)
				continue
			}
			if len(run) >= 2 {
				break
			}
			run = run[:0]
		}
		if len(run) >= 2 {
			return strings.Join(run, " ")
		}
	}
	return model.UnknownName
}

func isNameToken(tok string) bool {
	first, _ := utf8.DecodeRuneInString(tok)
	if !unicode.IsUpper(first) {
		return false
	}
	for _, r := range tok {
		if !unicode.IsLetter(r) && r != '-' && r != '\'' && r != '.' {
			return false
		}
	}
	return true
}

// Email returns the first address matched by the ordered pattern variants,
// with "[at]" rewritten to "@", whitespace removed and lowercased.
func Email(text string) string {
	if strings.TrimSpace(text) == "" {
		return model.NotProvided
	}
	for _, p := range emailPatterns {
		if m := p.FindString(text); m != "" {
			m = atToken.ReplaceAllString(m, "@")
			m = strings.Join(strings.Fields(m), "")
			return strings.ToLower(m)
		}
	}
	return model.NotProvided
}

// Phone returns the first number matched by the ordered pattern variants,
// reduced to digits and '+'.
func Phone(text string) string {
	if strings.TrimSpace(text) == "" {
		return model.NotProvided
	}
	for _, p := range phonePatterns {
		if m := p.FindString(text); m != "" {
			return nonPhoneChars.ReplaceAllString(m, "")
		}
	}
	return model.NotProvided
}

// Location reads a "Location:" style label, or failing that a "City, ST"
// line near the top of the document. It returns "" when neither is found.
func Location(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	if m := locationLabel.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	for i, line := range strings.Split(text, "\n") {
		if i >= locationScanLines {
			break
		}
		if m := cityState.FindString(strings.TrimSpace(line)); m != "" {
			return m
		}
	}
	return ""
}
