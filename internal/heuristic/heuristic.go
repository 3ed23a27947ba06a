// Package heuristic infers a structured candidate profile from raw resume
// text: the candidate's name, seniority level, best-fit technical field with
// skill recommendations, and a weighted section-completeness score.
//
// Everything in this package is deterministic and free of I/O. Soft misses
// (no name found, no matching field, missing sections) are reported as data,
// never as errors. The keyword tables in keywords.go are initialized once
// and never mutated, so the package is safe for concurrent use.
package heuristic

// Level is the inferred seniority tier of a candidate.
type Level string

const (
	LevelFresher      Level = "Fresher"
	LevelIntermediate Level = "Intermediate"
	LevelExperienced  Level = "Experienced"
	LevelNA           Level = "NA"
)

// Field is one of the technical domains a resume's skills classify into.
type Field string

const (
	FieldDataScience Field = "Data Science"
	FieldWebDev      Field = "Web Development"
	FieldAndroidDev  Field = "Android Development"
	FieldIOSDev      Field = "IOS Development"
	FieldUIUXDev     Field = "UI-UX Development"
	FieldNA          Field = "NA"
	FieldOther       Field = "Other"
)

// Section is one of the nine resume sections the scorer checks for.
type Section string

const (
	SectionObjective      Section = "Objective"
	SectionEducation      Section = "Education"
	SectionExperience     Section = "Experience"
	SectionInternship     Section = "Internship"
	SectionSkills         Section = "Skills"
	SectionHobbies        Section = "Hobbies"
	SectionAchievements   Section = "Achievements"
	SectionCertifications Section = "Certifications"
	SectionProjects       Section = "Projects"
)

// Document is the already-extracted text of a resume plus its page count.
type Document struct {
	Text      string `json:"text"`
	PageCount int    `json:"page_count"`
}

// EntityHint is a person-name span supplied by an external entity
// recognizer. StartOffset is the token index of the span's first token.
type EntityHint struct {
	Text        string `json:"text"`
	StartOffset int    `json:"start_offset"`
}

// FieldScore is the keyword-match count for one technical field.
type FieldScore struct {
	Field           Field `json:"field"`
	MatchedKeywords int   `json:"matched_keywords"`
}

// Finding is the presence verdict for one resume section: the section's
// weight under the active profile and a fixed feedback message.
type Finding struct {
	Section Section `json:"section"`
	Present bool    `json:"present"`
	Weight  int     `json:"weight"`
	Message string  `json:"message"`
}

// Profile is the full inference result for one resume.
type Profile struct {
	Name              string    `json:"name"`
	Level             Level     `json:"level"`
	Field             Field     `json:"field"`
	Skills            []string  `json:"skills"`
	RecommendedSkills []string  `json:"recommended_skills"`
	Score             int       `json:"score"`
	Findings          []Finding `json:"findings"`
}

// Analyze runs the full inference pipeline over one document. The level is
// classified first because it selects the section weight profile; name,
// field, and section scoring then run independently over the same inputs,
// and the result is normalized by Validate.
func Analyze(doc Document, skills []string, hints []EntityHint, customName string) Profile {
	level := ClassifyLevel(doc.Text, doc.PageCount)
	name := ExtractName(doc.Text, hints, customName)
	field, recommended := ClassifyField(skills)
	score, findings := ScoreSections(doc.Text, level)

	return Validate(Profile{
		Name:              name,
		Level:             level,
		Field:             field,
		Skills:            skills,
		RecommendedSkills: recommended,
		Score:             score,
		Findings:          findings,
	})
}
