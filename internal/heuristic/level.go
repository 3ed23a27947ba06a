package heuristic

import (
	"regexp"
	"strconv"
)

// Level rules, evaluated in order. Explicit numeric experience outranks
// title inference, which outranks bare keyword presence.
var (
	yearsOfExpRe = regexp.MustCompile(`(?i)\b(\d{1,2})\s*\+?\s*years?\s+of\s+experience\b`)
	seniorityRe  = regexp.MustCompile(`(?i)\b(senior|lead|manager|director|head)\b`)
	internshipRe = regexp.MustCompile(`(?i)\binternships?\b`)
	experienceRe = regexp.MustCompile(`(?i)\b(work\s+experience|experience)\b`)
)

// ClassifyLevel infers the seniority tier from the resume text and its page
// count. First matching rule wins.
func ClassifyLevel(text string, pageCount int) Level {
	if pageCount < 1 {
		return LevelNA
	}

	if years, ok := maxYearsOfExperience(text); ok {
		if years >= 3 {
			return LevelExperienced
		}
		if years > 0 {
			return LevelIntermediate
		}
		// "0 years of experience" carries no signal; fall through.
	}

	if seniorityRe.MatchString(text) {
		return LevelExperienced
	}
	if internshipRe.MatchString(text) {
		return LevelIntermediate
	}
	if experienceRe.MatchString(text) {
		return LevelExperienced
	}
	return LevelFresher
}

// maxYearsOfExperience returns the largest "<N> years of experience" figure
// mentioned in the text.
func maxYearsOfExperience(text string) (int, bool) {
	matches := yearsOfExpRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return 0, false
	}

	max := 0
	for _, m := range matches {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max, true
}
