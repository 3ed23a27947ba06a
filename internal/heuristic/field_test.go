package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyField(t *testing.T) {
	tests := []struct {
		name   string
		skills []string
		want   Field
	}{
		{
			name:   "data science stack",
			skills: []string{"TensorFlow", "Flask"},
			want:   FieldDataScience,
		},
		{
			name:   "web stack",
			skills: []string{"React", "Django", "Javascript"},
			want:   FieldWebDev,
		},
		{
			name:   "android stack",
			skills: []string{"Kotlin", "Flutter"},
			want:   FieldAndroidDev,
		},
		{
			name:   "ios stack",
			skills: []string{"Swift", "Xcode", "Cocoa Touch"},
			want:   FieldIOSDev,
		},
		{
			name:   "design stack",
			skills: []string{"Figma", "Adobe XD", "Prototyping"},
			want:   FieldUIUXDev,
		},
		{
			name:   "substring match inside a skill entry",
			skills: []string{"React Native"},
			want:   FieldWebDev,
		},
		{
			name:   "tie resolves to earliest field",
			skills: []string{"Flask"}, // one match for both data science and web
			want:   FieldDataScience,
		},
		{
			name:   "soft skills only",
			skills: []string{"English", "Leadership"},
			want:   FieldNA,
		},
		{
			name:   "unrecognized skills",
			skills: []string{"Gardening", "Cooking"},
			want:   FieldOther,
		},
		{
			name:   "no skills at all",
			skills: nil,
			want:   FieldOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, _ := ClassifyField(tt.skills)
			assert.Equal(t, tt.want, field)
		})
	}
}

func TestClassifyFieldRecommendations(t *testing.T) {
	_, rec := ClassifyField([]string{"TensorFlow", "Flask"})
	assert.Equal(t, recommendedSkills[FieldDataScience], rec)

	_, rec = ClassifyField([]string{"English"})
	assert.Equal(t, []string{"No Recommendations"}, rec)

	// The returned slice is a copy; mutating it must not leak into the table.
	rec[0] = "mutated"
	_, again := ClassifyField([]string{"English"})
	assert.Equal(t, []string{"No Recommendations"}, again)
}

func TestScoreFields(t *testing.T) {
	scores := ScoreFields([]string{"TensorFlow", "Flask", "Figma"})
	require.Len(t, scores, len(fieldOrder))

	// Results follow the declared field order.
	for i, field := range fieldOrder {
		assert.Equal(t, field, scores[i].Field)
	}

	byField := make(map[Field]int, len(scores))
	for _, s := range scores {
		byField[s.Field] = s.MatchedKeywords
	}
	assert.Equal(t, 2, byField[FieldDataScience]) // tensorflow, flask
	assert.Equal(t, 1, byField[FieldWebDev])      // flask
	assert.Equal(t, 1, byField[FieldUIUXDev])     // figma
	assert.Equal(t, 0, byField[FieldAndroidDev])
}

func TestClassifyFieldDeterministic(t *testing.T) {
	skills := []string{"Flask", "React", "Kotlin"}
	first, firstRec := ClassifyField(skills)
	for i := 0; i < 10; i++ {
		field, rec := ClassifyField(skills)
		require.Equal(t, first, field)
		require.Equal(t, firstRec, rec)
	}
}
