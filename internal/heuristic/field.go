package heuristic

import "strings"

// ScoreFields counts, for every technical field, how many of its keywords
// occur in the skill list, as an exact case-insensitive match or as a
// substring of a skill entry. Results follow the fixed field order.
func ScoreFields(skills []string) []FieldScore {
	lowered := make([]string, 0, len(skills))
	for _, s := range skills {
		lowered = append(lowered, strings.ToLower(strings.TrimSpace(s)))
	}

	scores := make([]FieldScore, 0, len(fieldOrder))
	for _, field := range fieldOrder {
		matched := 0
		for _, kw := range fieldKeywords[field] {
			if anySkillMatches(lowered, kw) {
				matched++
			}
		}
		scores = append(scores, FieldScore{Field: field, MatchedKeywords: matched})
	}
	return scores
}

// ClassifyField picks the field with the most keyword matches and returns
// it with the field's fixed recommended-skill list.
//
// Ties resolve to the earliest-declared field. When no technical keyword
// matches at all, a soft-skill-only resume reports FieldNA and anything
// else reports FieldOther; neither is a field guess.
func ClassifyField(skills []string) (Field, []string) {
	scores := ScoreFields(skills)

	best := scores[0]
	for _, s := range scores[1:] {
		if s.MatchedKeywords > best.MatchedKeywords {
			best = s
		}
	}

	if best.MatchedKeywords == 0 {
		if softSkillsOnly(skills) {
			return FieldNA, recommendations(FieldNA)
		}
		return FieldOther, recommendations(FieldOther)
	}
	return best.Field, recommendations(best.Field)
}

func anySkillMatches(loweredSkills []string, keyword string) bool {
	for _, s := range loweredSkills {
		if s == keyword || strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

func softSkillsOnly(skills []string) bool {
	lowered := make([]string, 0, len(skills))
	for _, s := range skills {
		lowered = append(lowered, strings.ToLower(strings.TrimSpace(s)))
	}
	for _, kw := range softSkillKeywords {
		if anySkillMatches(lowered, kw) {
			return true
		}
	}
	return false
}

// recommendations copies the fixed list so callers can't mutate the table.
func recommendations(field Field) []string {
	fixed := recommendedSkills[field]
	out := make([]string, len(fixed))
	copy(out, fixed)
	return out
}
