package heuristic

// ScoreSections computes the weighted completeness score of a resume. The
// weight profile depends on the level: Experienced resumes are scored with
// the experience-weighted profile, every other level with the entry
// profile. Both profiles sum to 100, so 100 is the maximum score.
//
// Scoring is additive per section: a present section contributes exactly
// its weight, an absent one contributes zero and a fixed improvement
// suggestion instead.
func ScoreSections(text string, level Level) (int, []Finding) {
	weights := WeightProfile(level)

	score := 0
	findings := make([]Finding, 0, len(sectionChecks))
	for _, check := range sectionChecks {
		weight := weights[check.section]
		if check.re.MatchString(text) {
			score += weight
			findings = append(findings, Finding{
				Section: check.section,
				Present: true,
				Weight:  weight,
				Message: check.positive,
			})
			continue
		}
		findings = append(findings, Finding{
			Section: check.section,
			Present: false,
			Weight:  weight,
			Message: check.negative,
		})
	}
	return score, findings
}

// WeightProfile returns the section weight table used for a level.
func WeightProfile(level Level) map[Section]int {
	if level == LevelExperienced {
		return experiencedWeights
	}
	return entryWeights
}
