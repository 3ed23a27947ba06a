package courses

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Antwa-sensei253/testing-resume-scoring/internal/heuristic"
)

func TestRecommend(t *testing.T) {
	got := Recommend(heuristic.FieldDataScience, 5)
	require.Len(t, got, 5)

	// Every pick comes from the catalog, without repeats.
	catalog := make(map[string]bool, len(dataScienceCourses))
	for _, c := range dataScienceCourses {
		catalog[c.Name] = true
	}
	seen := make(map[string]bool, len(got))
	for _, c := range got {
		assert.True(t, catalog[c.Name], "unknown course %q", c.Name)
		assert.False(t, seen[c.Name], "duplicate course %q", c.Name)
		assert.NotEmpty(t, c.URL)
		seen[c.Name] = true
	}
}

func TestRecommendDefaultCount(t *testing.T) {
	got := Recommend(heuristic.FieldWebDev, 0)
	assert.Len(t, got, DefaultCount)

	got = Recommend(heuristic.FieldWebDev, -3)
	assert.Len(t, got, DefaultCount)
}

func TestRecommendClampsToCatalog(t *testing.T) {
	got := Recommend(heuristic.FieldIOSDev, 100)
	assert.Len(t, got, len(iosCourses))
}

func TestRecommendNoCatalog(t *testing.T) {
	assert.Nil(t, Recommend(heuristic.FieldNA, 5))
	assert.Nil(t, Recommend(heuristic.FieldOther, 5))
}

func TestVideoPicks(t *testing.T) {
	assert.Contains(t, resumeVideos, ResumeVideo())
	assert.Contains(t, interviewVideos, InterviewVideo())
}
