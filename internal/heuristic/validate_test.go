package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNormalizesName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain name untouched", "John Doe", "John Doe"},
		{"label prefix", "Name: John Doe", "John Doe"},
		{"dash prefix", "Name - Jane Smith", "Jane Smith"},
		{"full name prefix", "Full Name: Carlos Ruiz", "Carlos Ruiz"},
		{"academic suffix", "John Doe, MBA", "John Doe"},
		{"phd suffix", "Jane Smith, Ph.D", "Jane Smith"},
		{"prefix and suffix together", "Name: John Doe, MBA", "John Doe"},
		{"stacked suffixes", "John Doe, M.S., MBA", "John Doe"},
		{"whitespace trimmed", "  John Doe  ", "John Doe"},
		{"sentinel passes through", NameNotFound, NameNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(Profile{Name: tt.in})
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestValidateDedupesSkills(t *testing.T) {
	got := Validate(Profile{
		Skills: []string{"Python", "python", "Flask", "", "  ", "PYTHON", "Flask"},
	})
	assert.Equal(t, []string{"Python", "Flask"}, got.Skills)

	got = Validate(Profile{Skills: nil})
	assert.Nil(t, got.Skills)
}

func TestValidateIdempotent(t *testing.T) {
	profiles := []Profile{
		{
			Name:   "Name: John Doe, MBA",
			Level:  LevelExperienced,
			Field:  FieldDataScience,
			Skills: []string{"Python", "python", "Flask"},
			Score:  64,
		},
		{Name: NameNotFound, Field: FieldOther},
		{},
		{Name: "Full Name - Jane Roe, Ph.D", Skills: []string{"Figma"}},
	}

	for _, p := range profiles {
		once := Validate(p)
		twice := Validate(once)
		require.Equal(t, once, twice)
	}
}
