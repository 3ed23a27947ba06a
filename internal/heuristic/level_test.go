package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLevel(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		pageCount int
		want      Level
	}{
		{
			name:      "unreadable document",
			text:      "Senior engineer with 10 years of experience",
			pageCount: 0,
			want:      LevelNA,
		},
		{
			name:      "three years is experienced",
			text:      "3 years of experience in backend work",
			pageCount: 1,
			want:      LevelExperienced,
		},
		{
			name:      "plus sign form",
			text:      "10+ years of experience",
			pageCount: 2,
			want:      LevelExperienced,
		},
		{
			name:      "under three years is intermediate",
			text:      "2 years of experience shipping mobile apps",
			pageCount: 1,
			want:      LevelIntermediate,
		},
		{
			name:      "numeric outranks seniority title",
			text:      "Senior engineer with 2 years of experience",
			pageCount: 1,
			want:      LevelIntermediate,
		},
		{
			name:      "largest figure wins",
			text:      "2 years of experience at Acme, 7 years of experience overall",
			pageCount: 1,
			want:      LevelExperienced,
		},
		{
			name:      "zero years falls through to keywords",
			text:      "0 years of experience",
			pageCount: 1,
			want:      LevelExperienced, // bare "experience" keyword still matches
		},
		{
			name:      "seniority title",
			text:      "Head of Design at Example Corp",
			pageCount: 1,
			want:      LevelExperienced,
		},
		{
			name:      "internship",
			text:      "Internship at Acme Labs",
			pageCount: 1,
			want:      LevelIntermediate,
		},
		{
			name:      "internship outranks bare experience keyword",
			text:      "Internship plus some work experience",
			pageCount: 1,
			want:      LevelIntermediate,
		},
		{
			name:      "bare experience keyword",
			text:      "Work Experience\nAcme Corp 2019-2023",
			pageCount: 1,
			want:      LevelExperienced,
		},
		{
			name:      "no signal at all",
			text:      "Recent graduate seeking a junior role",
			pageCount: 1,
			want:      LevelFresher,
		},
		{
			name:      "empty text",
			text:      "",
			pageCount: 1,
			want:      LevelFresher,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyLevel(tt.text, tt.pageCount))
		})
	}
}
