// Package lexicon builds the read-only lookup tables used by the post scorer.
//
// Word-level keys (polarity, negators, intensifiers, downtoners) and every
// word of a phrase key are produced by textproc.NormalizeWord. The stemmer is
// kept with the tables and the scorer normalizes posts with it, so both sides
// of a lookup agree. Slang and emoji keys are lower-cased raw tokens.
//
// A Lexicons value is never modified after Build returns and is safe to share.
package lexicon

import (
	"maps"
	"slices"
	"strings"

	"github.com/spacesedan/sentiscore/internal/textproc"
)

type set map[string]struct{}

func (s set) has(key string) bool {
	_, ok := s[key]
	return ok
}

// Lexicons holds every table the scorer consults.
type Lexicons struct {
	polarity     map[string]float64
	negators     set
	intensifiers set
	downtoners   set
	phrases      map[string]float64
	posSlang     set
	negSlang     set
	stem         textproc.StemFunc
}

// Stats reports table sizes.
type Stats struct {
	Polarity      int
	Negators      int
	Intensifiers  int
	Downtoners    int
	Phrases       int
	PositiveSlang int
	NegativeSlang int
}

// Build assembles the lexicons. Positive words get +1.0 and negative words
// -1.0, applied in that order, so a word in both lists ends up negative.
// StrongWords from tables are applied last and always win. When two phrases
// normalize to the same key, the one that sorts first keeps its weight.
func Build(positive, negative []string, tables Tables, stem textproc.StemFunc) *Lexicons {
	lex := &Lexicons{
		polarity:     make(map[string]float64, len(positive)+len(negative)),
		negators:     normalizedSet(tables.Negators, stem),
		intensifiers: normalizedSet(tables.Intensifiers, stem),
		downtoners:   normalizedSet(tables.Downtoners, stem),
		phrases:      make(map[string]float64, len(tables.Phrases)),
		posSlang:     lowerSet(tables.PositiveSlang),
		negSlang:     lowerSet(tables.NegativeSlang),
		stem:         stem,
	}

	assign := func(word string, weight float64) {
		if key := textproc.NormalizeWord(word, stem); key != "" {
			lex.polarity[key] = weight
		}
	}
	for _, w := range positive {
		assign(w, 1.0)
	}
	for _, w := range negative {
		assign(w, -1.0)
	}
	for _, sw := range tables.StrongWords {
		assign(sw.Word, sw.Weight)
	}

	for _, phrase := range slices.Sorted(maps.Keys(tables.Phrases)) {
		key := PhraseKey(strings.Fields(phrase), stem)
		if key == "" {
			continue
		}
		if _, dup := lex.phrases[key]; !dup {
			lex.phrases[key] = tables.Phrases[phrase]
		}
	}

	return lex
}

// PhraseKey normalizes each word and joins them with single spaces. Words
// that normalize to nothing are dropped.
func PhraseKey(words []string, stem textproc.StemFunc) string {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		if n := textproc.NormalizeWord(w, stem); n != "" {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, " ")
}

// Stem returns the stemmer the tables were built with. Nil means no stemming.
func (l *Lexicons) Stem() textproc.StemFunc { return l.stem }

// Weight returns the polarity weight of a normalized token.
func (l *Lexicons) Weight(token string) (float64, bool) {
	w, ok := l.polarity[token]
	return w, ok
}

// PhraseWeight looks up an already normalized, space-joined n-gram.
func (l *Lexicons) PhraseWeight(key string) (float64, bool) {
	w, ok := l.phrases[key]
	return w, ok
}

func (l *Lexicons) IsNegator(token string) bool     { return l.negators.has(token) }
func (l *Lexicons) IsIntensifier(token string) bool { return l.intensifiers.has(token) }
func (l *Lexicons) IsDowntoner(token string) bool   { return l.downtoners.has(token) }

// Slang classifies a raw token against the slang/emoji sets. It returns +1
// for positive, -1 for negative and 0 when the token is in neither. The
// positive set is checked first.
func (l *Lexicons) Slang(raw string) int {
	lower := strings.ToLower(raw)
	switch {
	case l.posSlang.has(lower):
		return 1
	case l.negSlang.has(lower):
		return -1
	}
	return 0
}

func (l *Lexicons) Stats() Stats {
	return Stats{
		Polarity:      len(l.polarity),
		Negators:      len(l.negators),
		Intensifiers:  len(l.intensifiers),
		Downtoners:    len(l.downtoners),
		Phrases:       len(l.phrases),
		PositiveSlang: len(l.posSlang),
		NegativeSlang: len(l.negSlang),
	}
}

func normalizedSet(words []string, stem textproc.StemFunc) set {
	s := make(set, len(words))
	for _, w := range words {
		if key := textproc.NormalizeWord(w, stem); key != "" {
			s[key] = struct{}{}
		}
	}
	return s
}

func lowerSet(words []string) set {
	s := make(set, len(words))
	for _, w := range words {
		if w != "" {
			s[strings.ToLower(w)] = struct{}{}
		}
	}
	return s
}
