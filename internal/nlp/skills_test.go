package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkills(t *testing.T) {
	text := `SKILLS
Python, TensorFlow and Flask. Built dashboards with Streamlit.
Strong communication and leadership.`

	got := ExtractSkills(text)

	assert.Contains(t, got, "Python")
	assert.Contains(t, got, "TensorFlow")
	assert.Contains(t, got, "Flask")
	assert.Contains(t, got, "Streamlit")
	assert.Contains(t, got, "Communication")
	assert.Contains(t, got, "Leadership")
	assert.NotContains(t, got, "Java")
}

func TestExtractSkillsWholeWord(t *testing.T) {
	// "Going" must not match "Go", "Reactive" must not match "React".
	got := ExtractSkills("Going forward we need reactive dashboards")
	assert.NotContains(t, got, "Go")
	assert.NotContains(t, got, "React")

	got = ExtractSkills("Expert in Go and React")
	assert.Contains(t, got, "Go")
	assert.Contains(t, got, "React")
}

func TestExtractSkillsPunctuatedTerms(t *testing.T) {
	got := ExtractSkills("Backend in C# with ASP.NET and Objective-C bridges")
	assert.Contains(t, got, "C#")
	assert.Contains(t, got, "ASP.NET")
	assert.Contains(t, got, "Objective-C")
}

func TestExtractSkillsCaseInsensitive(t *testing.T) {
	got := ExtractSkills("python FLASK docker")
	assert.Contains(t, got, "Python")
	assert.Contains(t, got, "Flask")
	assert.Contains(t, got, "Docker")
}

func TestExtractSkillsDeterministicOrder(t *testing.T) {
	text := "Docker Python Flask"
	first := ExtractSkills(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ExtractSkills(text))
	}
}

func TestExtractSkillsEmpty(t *testing.T) {
	assert.Empty(t, ExtractSkills(""))
	assert.Empty(t, ExtractSkills("nothing relevant here"))
}
