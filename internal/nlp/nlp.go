// Package nlp wraps the prose NLP toolkit behind the small surface the
// resume pipeline needs: person-entity hints for name extraction, a
// token-level lookup for "Name" labels, and vocabulary-driven skill
// extraction.
package nlp

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"

	"github.com/Antwa-sensei253/testing-resume-scoring/internal/heuristic"
)

// PersonHints runs named-entity recognition over the text and returns every
// PERSON span together with the token index where it starts. The caller
// decides how far into the document a hint is still plausible as the
// candidate's own name.
func PersonHints(text string) ([]heuristic.EntityHint, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, fmt.Errorf("failed to tag document: %w", err)
	}

	tokens := doc.Tokens()
	var hints []heuristic.EntityHint
	for _, ent := range doc.Entities() {
		if ent.Label != "PERSON" {
			continue
		}
		words := strings.Fields(ent.Text)
		if len(words) == 0 {
			continue
		}
		idx := tokenIndex(tokens, words[0])
		if idx < 0 {
			continue
		}
		hints = append(hints, heuristic.EntityHint{
			Text:        ent.Text,
			StartOffset: idx,
		})
	}
	return hints, nil
}

// CustomNameLookup scans the token stream for a "Name" label and returns the
// proper nouns following it, e.g. the "John Doe" in "Name : John Doe". An
// empty string means the label was not found.
func CustomNameLookup(text string) string {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return ""
	}

	tokens := doc.Tokens()
	for i, tok := range tokens {
		if !strings.EqualFold(tok.Text, "name") {
			continue
		}
		var parts []string
		for j := i + 1; j < len(tokens) && len(parts) < 3; j++ {
			t := tokens[j]
			if t.Text == ":" || t.Text == "-" {
				continue
			}
			if t.Tag != "NNP" {
				break
			}
			parts = append(parts, t.Text)
		}
		if len(parts) >= 2 {
			return strings.Join(parts, " ")
		}
	}
	return ""
}

func tokenIndex(tokens []prose.Token, word string) int {
	for i, tok := range tokens {
		if tok.Text == word {
			return i
		}
	}
	return -1
}
