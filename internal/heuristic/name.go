package heuristic

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// NameNotFound is returned when no candidate survives validation and the
// first-line fallback does not apply.
const NameNotFound = "Name not found"

const (
	// headerLines bounds the part of the document scanned for a name.
	headerLines = 10
	// maxHintOffset drops entity hints located past the document head.
	maxHintOffset = 100
	// maxFallbackTokens bounds the first-line fallback.
	maxFallbackTokens = 4
)

// candidateSource tags where a name candidate came from. Lower values
// outrank higher ones.
type candidateSource int

const (
	sourcePattern candidateSource = iota
	sourceEntityRecognizer
	sourceCustomLookup
)

type nameCandidate struct {
	text   string
	source candidateSource
}

// capitalized two-to-three-word name, e.g. "John Doe" or "Ada Byron King".
const nameWords = `[A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,2}`

// namePatterns is an ordered strategy chain: earlier patterns outrank later
// ones, and each contributes at most one candidate. The order is the
// declared priority, not an accident of iteration.
var namePatterns = []*regexp.Regexp{
	// Name alone on a line.
	regexp.MustCompile(`(?m)^(` + nameWords + `)\s*$`),
	// Labeled "Name: John Doe" form.
	regexp.MustCompile(`(?m)\b[Nn]ame\s*:\s*(` + nameWords + `)`),
	// Labeled "Name - John Doe" form.
	regexp.MustCompile(`(?m)\b[Nn]ame\s*-\s*(` + nameWords + `)`),
	// All-caps name line, common in scanned resumes.
	regexp.MustCompile(`(?m)^([A-Z]{2,}(?:\s+[A-Z]{2,}){1,2})\s*$`),
	// Name line immediately followed by a contact-info line.
	regexp.MustCompile(`(?m)^(` + nameWords + `)\s*\n[^\n]*(?:@|\d{3}|[Pp]hone|[Ee]mail)`),
}

// nameBlocklist rejects candidates that are labels rather than names.
var nameBlocklist = []string{
	"resume", "cv", "curriculum", "vitae", "address", "email",
	"phone", "tel", "contact", "www", "http", "summary",
}

// ExtractName returns the candidate name found in text, or NameNotFound.
//
// Strategies run in fixed priority order: the regex chain over the header,
// then entity hints located within the document head (longest first), then
// the custom token-lookup name. The first candidate surviving validation
// wins. A strategy that yields nothing simply contributes no candidates;
// nothing here returns an error.
func ExtractName(text string, hints []EntityHint, customName string) string {
	header := headerOf(text)

	candidates := patternCandidates(header)
	candidates = append(candidates, hintCandidates(hints)...)
	if customName != "" {
		candidates = append(candidates, nameCandidate{text: customName, source: sourceCustomLookup})
	}

	for _, c := range candidates {
		if validName(c.text) {
			return strings.TrimSpace(c.text)
		}
	}

	return fallbackName(header)
}

// headerOf returns the first headerLines non-trailing lines of text.
func headerOf(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) > headerLines {
		lines = lines[:headerLines]
	}
	return strings.Join(lines, "\n")
}

func patternCandidates(header string) []nameCandidate {
	var out []nameCandidate
	for _, re := range namePatterns {
		if m := re.FindStringSubmatch(header); m != nil {
			out = append(out, nameCandidate{text: m[1], source: sourcePattern})
		}
	}
	return out
}

// hintCandidates keeps hints within the document head and prefers longer
// spans, which are more likely to be full names.
func hintCandidates(hints []EntityHint) []nameCandidate {
	var kept []EntityHint
	for _, h := range hints {
		if h.Text != "" && h.StartOffset >= 0 && h.StartOffset < maxHintOffset {
			kept = append(kept, h)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return len(kept[i].Text) > len(kept[j].Text)
	})

	out := make([]nameCandidate, 0, len(kept))
	for _, h := range kept {
		out = append(out, nameCandidate{text: h.Text, source: sourceEntityRecognizer})
	}
	return out
}

// validName applies the candidate filter: at least two tokens, no digits,
// no @, and no blocklisted substring.
func validName(name string) bool {
	name = strings.TrimSpace(name)
	if len(strings.Fields(name)) < 2 {
		return false
	}
	if strings.ContainsRune(name, '@') || containsDigit(name) {
		return false
	}
	lower := strings.ToLower(name)
	for _, blocked := range nameBlocklist {
		if strings.Contains(lower, blocked) {
			return false
		}
	}
	return true
}

// fallbackName returns the first short, digit-free header line, or the
// sentinel when even that fails.
func fallbackName(header string) string {
	for _, line := range strings.Split(header, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(strings.Fields(line)) > maxFallbackTokens {
			continue
		}
		if containsDigit(line) || strings.ContainsRune(line, '@') {
			continue
		}
		return line
	}
	return NameNotFound
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
