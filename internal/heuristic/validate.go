package heuristic

import "strings"

// namePrefixes are labels sometimes captured along with the name.
var namePrefixes = []string{
	"full name:", "full name -", "name:", "name -",
}

// nameSuffixes are academic suffixes trailing the name.
var nameSuffixes = []string{
	", ph.d", ", mba", ", m.s.", ", b.s.", ", b.a.",
}

// Validate normalizes a profile: it strips known label prefixes and
// academic suffixes from the name and deduplicates the skill list while
// preserving first-seen casing and order. Pure and idempotent — validating
// an already-validated profile returns an identical profile.
func Validate(p Profile) Profile {
	p.Name = normalizeName(p.Name)
	p.Skills = dedupeSkills(p.Skills)
	return p
}

// normalizeName strips prefixes and suffixes until none apply, so the
// result is a fixpoint and repeated validation cannot change it again.
func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	for {
		stripped := stripOnce(name)
		if stripped == name {
			return name
		}
		name = stripped
	}
}

func stripOnce(name string) string {
	lower := strings.ToLower(name)
	for _, prefix := range namePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return strings.TrimSpace(name[len(prefix):])
		}
	}
	for _, suffix := range nameSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return strings.TrimSpace(name[:len(name)-len(suffix)])
		}
	}
	return name
}

// dedupeSkills drops case-insensitive duplicates, keeping the first
// occurrence's casing and the original insertion order.
func dedupeSkills(skills []string) []string {
	if skills == nil {
		return nil
	}
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}
