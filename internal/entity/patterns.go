package entity

import "regexp"

const monthNames = `(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sept?(?:ember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`

var (
	emailPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		regexp.MustCompile(`(?i)\b[A-Za-z0-9._%+-]+\s*\[at\]\s*[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		regexp.MustCompile(`\b[A-Za-z0-9._%+-]+\s*@\s*[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
	}
	atToken = regexp.MustCompile(`(?i)\s*\[at\]\s*`)

	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:\+\d{1,3}[-.\s]?)?\(?\b\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`),
		regexp.MustCompile(`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`),
		regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.\s]?\d{4}\b`),
		regexp.MustCompile(`\+\d{1,3}\s*\d{3}\s*\d{3}\s*\d{4}\b`),
	}
	nonPhoneChars = regexp.MustCompile(`[^\d+]`)

	locationLabel = regexp.MustCompile(`(?im)^\s*(?:location|address|based in)\s*[:\-]\s*(.+?)\s*$`)
	cityState     = regexp.MustCompile(`^([A-Z][A-Za-z.'-]+(?:\s[A-Z][A-Za-z.'-]+)*),\s*([A-Z]{2}|[A-Z][a-z]+(?:\s[A-Z][a-z]+)*)(?:\s+\d{5})?$`)

	degreePattern      = regexp.MustCompile(`(?i)\b(bachelor(?:'s)?|master(?:'s)?|ph\.?\s?d|doctorate|associate degree|mba|b\.?sc|m\.?sc|b\.s\.?|m\.s\.?|b\.e\.|m\.e\.|b\.?tech|m\.?tech|bs|ms)\b`)
	institutionPattern = regexp.MustCompile(`(?i)\b(university|college|institute|school|academy|polytechnic)\b`)
	fieldPattern       = regexp.MustCompile(`(?i)\b(computer science|software engineering|computer engineering|electrical engineering|mechanical engineering|engineering|information technology|information systems|data science|mathematics|statistics|physics|economics|business administration)\b`)
	gpaPattern         = regexp.MustCompile(`(?i)\b(?:gpa|grade point average)\s*[:\s]\s*(\d+(?:\.\d+)?)`)

	// dateRange captures an optional start month, start year, optional end
	// month and an end year or word ("present", "current", ...).
	dateRange = regexp.MustCompile(`(?i)(?:\b` + monthNames + `\.?\s+)?\b(\d{4})\s*[-–—]\s*(?:` + monthNames + `\.?\s+)?(\d{4}|[a-z]+)\b`)

	experienceKeyword = regexp.MustCompile(`(?i)\b(experience|work|employment)\b`)
	durationKeyword   = regexp.MustCompile(`(?i)\b(years?|months?)\b`)
	titleKeyword      = regexp.MustCompile(`(?i)(developer|engineer|architect|consultant|manager|analyst|scientist|designer|administrator|intern)`)
	presentKeyword    = regexp.MustCompile(`(?i)\b(present|current|now)\b`)
	companyKeyword    = regexp.MustCompile(`(?i)\b(inc|ltd|llc|corp|corporation|company|co|gmbh|plc)\b\.?`)
	atSeparator       = regexp.MustCompile(`(?i)\s+(?:at|@)\s+`)
	segmentSeparator  = regexp.MustCompile(`\s*[,|]\s*`)
)
