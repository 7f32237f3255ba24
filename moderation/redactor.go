// Package moderation masks configured words in message content before it is
// rendered. Matching tolerates leet speak, case and inserted punctuation.
package moderation

import (
	"chat-export/errors"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Redactor is safe for concurrent use once built. A nil Redactor leaves the
// content untouched.
type Redactor struct {
	matcher *goahocorasick.Machine
	mask    rune
}

// folded is the searchable form of a text, each folded rune remembering its
// index in the original text.
type folded struct {
	runes  []rune
	origin []int
}

// NewRedactor builds the automaton over the folded words. Words made only of
// punctuation or spaces are ignored.
func NewRedactor(words []string, mask rune) (*Redactor, error) {
	var patterns [][]rune
	for _, word := range words {
		if p := fold([]rune(word)).runes; len(p) > 0 {
			patterns = append(patterns, p)
		}
	}
	if len(patterns) == 0 {
		return nil, errors.ErrEmptyWords
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Redactor{matcher: m, mask: mask}, nil
}

// Redact replaces every rune of a matched span, noise included, by the mask.
func (r *Redactor) Redact(content string) string {
	if r == nil || content == "" {
		return content
	}
	original := []rune(content)
	text := fold(original)
	if len(text.runes) == 0 {
		return content
	}

	terms := r.matcher.MultiPatternSearch(text.runes, false)
	if len(terms) == 0 {
		return content
	}
	for _, term := range terms {
		start, end := term.Pos, term.Pos+len(term.Word)
		if start < 0 || end > len(text.origin) {
			continue
		}
		for i := text.origin[start]; i <= text.origin[end-1]; i++ {
			original[i] = r.mask
		}
	}
	return string(original)
}

func fold(input []rune) folded {
	out := folded{
		runes:  make([]rune, 0, len(input)),
		origin: make([]int, 0, len(input)),
	}
	for i, r := range input {
		c := unleet(r)
		if unicode.IsPunct(c) || unicode.IsSpace(c) || unicode.IsSymbol(c) {
			continue
		}
		out.runes = append(out.runes, unicode.ToLower(c))
		out.origin = append(out.origin, i)
	}
	return out
}

func unleet(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}
