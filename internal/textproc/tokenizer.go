// Package textproc splits post text into tokens and normalizes them for
// lexicon lookups.
//
// Every raw token is paired with its normalized form at the same index, so
// callers can look ahead and behind without re-tokenizing. A normalized form
// is empty when the raw token holds no letters or digits; such tokens are not
// words and are skipped by scoring, but they keep their slot in the slices.
package textproc

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokens is the tokenized view of one post.
type Tokens struct {
	Raw          []string
	Normalized   []string
	AllCaps      int // raw tokens that are shouted, see IsAllCaps
	Exclamations int // literal '!' anywhere in the text
	Questions    int // literal '?' anywhere in the text
}

// Words counts tokens with a non-empty normalized form.
func (t Tokens) Words() int {
	n := 0
	for _, tok := range t.Normalized {
		if tok != "" {
			n++
		}
	}
	return n
}

// Tokenize splits text on whitespace and normalizes every token with stem.
func Tokenize(text string, stem StemFunc) Tokens {
	fields := strings.Fields(text)
	toks := Tokens{
		Raw:          fields,
		Normalized:   make([]string, len(fields)),
		Exclamations: strings.Count(text, "!"),
		Questions:    strings.Count(text, "?"),
	}
	for i, raw := range fields {
		toks.Normalized[i] = NormalizeWord(raw, stem)
		if IsAllCaps(raw) {
			toks.AllCaps++
		}
	}
	return toks
}

// NormalizeWord strips surrounding non-alphanumeric runes, lower-cases what
// is left and stems it. It returns "" when nothing alphanumeric remains.
func NormalizeWord(raw string, stem StemFunc) string {
	word := strings.TrimFunc(raw, func(r rune) bool {
		return !isAlnum(r)
	})
	if word == "" {
		return ""
	}
	word = strings.ToLower(word)
	if stem == nil {
		return word
	}
	return stem(word)
}

// IsAllCaps reports whether raw is at least two runes long, has at least one
// letter and every letter is upper case. Single-letter tokens like "I" never
// count.
func IsAllCaps(raw string) bool {
	if utf8.RuneCountInString(raw) <= 1 {
		return false
	}
	letters := 0
	for _, r := range raw {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		letters++
	}
	return letters > 0
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
