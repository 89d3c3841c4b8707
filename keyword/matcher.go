// Package keyword finds easter-egg words inside chat payloads with a single
// Aho-Corasick pass, whatever the number of words.
package keyword

import (
	"chat-notifier/errors"
	"slices"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

type Matcher struct {
	machine *goahocorasick.Machine
	words   []string // declaration order, lower case
}

// NewMatcher builds the automaton. Words are matched case-insensitively;
// their order is the priority used by First.
func NewMatcher(words []string) (*Matcher, error) {
	var unique []string
	for _, w := range words {
		lw := string(lower([]rune(w)))
		if lw == "" || slices.Contains(unique, lw) {
			continue
		}
		unique = append(unique, lw)
	}
	if len(unique) == 0 {
		return nil, errors.ErrEmptyWords
	}

	patterns := make([][]rune, len(unique))
	for i, w := range unique {
		patterns[i] = []rune(w)
	}
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Matcher{machine: m, words: unique}, nil
}

// Find returns the distinct words present in text, in order of first appearance.
func (m *Matcher) Find(text string) []string {
	content := lower([]rune(text))
	if len(content) == 0 {
		return nil
	}
	terms := m.machine.MultiPatternSearch(content, false)
	slices.SortStableFunc(terms, func(a, b *goahocorasick.Term) int {
		return a.Pos - b.Pos
	})

	var found []string
	for _, term := range terms {
		w := string(term.Word)
		if !slices.Contains(found, w) {
			found = append(found, w)
		}
	}
	return found
}

// First returns the highest priority word present in text.
func (m *Matcher) First(text string) (string, bool) {
	found := m.Find(text)
	for _, w := range m.words {
		if slices.Contains(found, w) {
			return w, true
		}
	}
	return "", false
}

func lower(runes []rune) []rune {
	out := make([]rune, len(runes))
	for i, r := range runes {
		out[i] = unicode.ToLower(r)
	}
	return out
}
