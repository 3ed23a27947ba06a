package nlp

import (
	"regexp"
	"strings"
)

// skillVocabulary is the static list of technical and soft skills the
// extractor recognizes, in the canonical casing reported back to callers.
var skillVocabulary = []string{
	// Data science
	"Python", "R", "TensorFlow", "Keras", "Pytorch", "Machine Learning",
	"Deep Learning", "NLP", "Pandas", "Numpy", "Scikit-learn", "Flask",
	"Streamlit", "SQL", "Data Analysis", "Data Visualization",
	// Web
	"Javascript", "Typescript", "React", "React JS", "Angular JS", "Vue",
	"Node JS", "Django", "PHP", "Laravel", "Magento", "Wordpress", "HTML",
	"CSS", "C#", "ASP.NET", "Ruby on Rails", "Go", "Java", "Spring",
	// Mobile
	"Android", "Android Development", "Flutter", "Kotlin", "XML", "Kivy",
	"IOS", "IOS Development", "Swift", "Cocoa", "Cocoa Touch", "Xcode",
	"Objective-C", "SQLite",
	// Design
	"UI", "UX", "Adobe XD", "Figma", "Zeplin", "Balsamiq", "Prototyping",
	"Wireframes", "Adobe Photoshop", "Adobe Illustrator",
	"Adobe After Effects", "Adobe Indesign", "User Research",
	"User Experience",
	// Infrastructure
	"Docker", "Kubernetes", "AWS", "GCP", "Azure", "Git", "Linux",
	"PostgreSQL", "MySQL", "MongoDB", "Redis", "GraphQL", "REST",
	// Soft skills
	"English", "Communication", "Writing", "Microsoft Office", "Leadership",
	"Customer Management", "Social Media",
}

var skillPatterns = buildSkillPatterns()

// ExtractSkills returns every vocabulary skill mentioned in the text, in
// vocabulary order and canonical casing.
func ExtractSkills(text string) []string {
	var out []string
	for _, skill := range skillVocabulary {
		if skillPatterns[skill].MatchString(text) {
			out = append(out, skill)
		}
	}
	return out
}

func buildSkillPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(skillVocabulary))
	for _, skill := range skillVocabulary {
		patterns[skill] = regexp.MustCompile(termPattern(skill))
	}
	return patterns
}

// termPattern builds a case-insensitive whole-word pattern for a term. Word
// boundaries only apply next to word characters, so terms like "C#" or
// "ASP.NET" anchor on their alphanumeric edges only.
func termPattern(term string) string {
	quoted := regexp.QuoteMeta(strings.ToLower(term))
	pattern := "(?i)"
	if startsWithWordChar(term) {
		pattern += `\b`
	}
	pattern += quoted
	if endsWithWordChar(term) {
		pattern += `\b`
	}
	return pattern
}

func startsWithWordChar(s string) bool {
	if s == "" {
		return false
	}
	return isWordChar(rune(s[0]))
}

func endsWithWordChar(s string) bool {
	if s == "" {
		return false
	}
	return isWordChar(rune(s[len(s)-1]))
}

func isWordChar(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
