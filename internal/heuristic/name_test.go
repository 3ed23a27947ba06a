package heuristic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractNamePatterns(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "name alone on first line",
			text: "John Doe\nSoftware Engineer\njohn@example.com",
			want: "John Doe",
		},
		{
			name: "three word name",
			text: "Ada Byron King\nMathematician",
			want: "Ada Byron King",
		},
		{
			name: "labeled colon form",
			text: "Curriculum Vitae\nName: Jane Smith\njane@example.com",
			want: "Jane Smith",
		},
		{
			name: "labeled dash form",
			text: "Resume\nName - Carlos Ruiz\nLima, Peru",
			want: "Carlos Ruiz",
		},
		{
			name: "all caps header line",
			text: "JOHN DOE\n123 Main Street\njohn@example.com",
			want: "JOHN DOE",
		},
		{
			name: "name followed by contact line",
			text: "Objective first\nMary Jones\nmary@example.com",
			want: "Mary Jones",
		},
		{
			name: "blocklisted line skipped in favor of real name",
			text: "Curriculum Vitae\nJohn Smith\njohn@x.com",
			want: "John Smith",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractName(tt.text, nil, "")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractNameValidationFilter(t *testing.T) {
	// Every surviving candidate must have >= 2 tokens, no digit, no @, and
	// no blocklisted substring.
	texts := []string{
		"John Doe\nSoftware Engineer",
		"Name: Jane Smith\njane@example.com",
		"MARY ANN JONES\nContact: 555-0100",
		"Professional Summary\nRick Deckard\nrick@tyrell.example",
	}

	for _, text := range texts {
		got := ExtractName(text, nil, "")
		require.NotEqual(t, NameNotFound, got)
		assert.GreaterOrEqual(t, len(strings.Fields(got)), 2, "text: %q", text)
		assert.NotContains(t, got, "@")
		lower := strings.ToLower(got)
		for _, blocked := range nameBlocklist {
			assert.NotContains(t, lower, blocked, "text: %q", text)
		}
	}
}

func TestExtractNameEntityHints(t *testing.T) {
	// No regex pattern matches this header, so hints decide.
	text := "experienced developer portfolio\nbuilt many things"

	hints := []EntityHint{
		{Text: "Jo Li", StartOffset: 5},
		{Text: "Jonathan Livingston", StartOffset: 8},
	}
	got := ExtractName(text, hints, "")
	assert.Equal(t, "Jonathan Livingston", got, "longer hint should win")
}

func TestExtractNameHintOffsetFilter(t *testing.T) {
	text := "experienced developer portfolio\nbuilt many things"

	hints := []EntityHint{
		{Text: "Distant Person", StartOffset: 150},
	}
	got := ExtractName(text, hints, "")
	assert.NotEqual(t, "Distant Person", got, "hints past the header must be dropped")
}

func TestExtractNamePatternOutranksHint(t *testing.T) {
	text := "John Doe\nSoftware Engineer"

	hints := []EntityHint{{Text: "Someone Else", StartOffset: 3}}
	got := ExtractName(text, hints, "")
	assert.Equal(t, "John Doe", got)
}

func TestExtractNameCustomLookup(t *testing.T) {
	text := "experienced developer portfolio\nbuilt many things"

	got := ExtractName(text, nil, "Grace Hopper")
	assert.Equal(t, "Grace Hopper", got)

	// Hints outrank the custom lookup.
	hints := []EntityHint{{Text: "Alan Turing", StartOffset: 1}}
	got = ExtractName(text, hints, "Grace Hopper")
	assert.Equal(t, "Alan Turing", got)
}

func TestExtractNameFallback(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "short first line without digits",
			text: "madonna\nsinger songwriter",
			want: "madonna",
		},
		{
			name: "first line too long, second line used",
			text: "a very long line with far too many tokens to be a name\nshort line\n",
			want: "short line",
		},
		{
			name: "empty text",
			text: "",
			want: NameNotFound,
		},
		{
			name: "only digits and emails",
			text: "555-0100\nsomeone@example.com",
			want: NameNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractName(tt.text, nil, ""))
		})
	}
}
