package sentiment

import (
	"strings"

	"github.com/spacesedan/sentiscore/internal/lexicon"
	"github.com/spacesedan/sentiscore/internal/models"
	"github.com/spacesedan/sentiscore/internal/textproc"
)

const (
	NegationFactor    = -0.7
	IntensifierFactor = 1.5
	DowntonerFactor   = 0.5

	// LookbackWindow is how many preceding tokens can modify a polarity word.
	LookbackWindow = 2

	// ExclamationStep is the per-'!' boost applied to the final adjusted score.
	ExclamationStep = 0.05
)

// scan is the state shared by the rules while one post is scored.
type scan struct {
	lex  *lexicon.Lexicons
	toks textproc.Tokens
	out  *models.PostAnalysis

	// adjusted accumulates token contributions before the exclamation scale.
	adjusted float64
}

// rule inspects the token at index i. It returns true when it consumed the
// token, which stops dispatch for that index.
type rule struct {
	name  string
	apply func(sc *scan, i int) bool
}

// defaultRules is the precedence order. The first rule to consume a token
// wins; "markers" only counts and never consumes.
var defaultRules = []rule{
	{name: "slang", apply: slangRule},
	{name: "trigram", apply: ngramRule(3)},
	{name: "bigram", apply: ngramRule(2)},
	{name: "markers", apply: markerRule},
	{name: "polarity", apply: polarityRule},
	{name: "neutral", apply: neutralRule},
}

func slangRule(sc *scan, i int) bool {
	switch sc.lex.Slang(sc.toks.Raw[i]) {
	case 1:
		sc.out.EmojiPositiveCount++
		sc.adjusted += 1.0
		return true
	case -1:
		sc.out.EmojiNegativeCount++
		sc.adjusted -= 1.0
		return true
	}
	return false
}

// ngramRule matches the n normalized tokens starting at i against the
// phrase lexicon.
func ngramRule(n int) func(sc *scan, i int) bool {
	return func(sc *scan, i int) bool {
		if i+n > len(sc.toks.Normalized) {
			return false
		}
		key := strings.Join(sc.toks.Normalized[i:i+n], " ")
		weight, ok := sc.lex.PhraseWeight(key)
		if !ok {
			return false
		}
		sc.adjusted += weight
		if weight > 0 {
			sc.out.NgramPositiveHits++
		} else {
			sc.out.NgramNegativeHits++
		}
		return true
	}
}

func markerRule(sc *scan, i int) bool {
	tok := sc.toks.Normalized[i]
	if sc.lex.IsNegator(tok) {
		sc.out.NegationHits++
	}
	if sc.lex.IsIntensifier(tok) {
		sc.out.IntensifierHits++
	}
	if sc.lex.IsDowntoner(tok) {
		sc.out.DowntonerHits++
	}
	return false
}

func polarityRule(sc *scan, i int) bool {
	base, ok := sc.lex.Weight(sc.toks.Normalized[i])
	if !ok {
		return false
	}

	sc.out.BaseSentimentScore += base
	sc.adjusted += ModifyWeight(base, lookback(sc.lex, sc.toks.Normalized, i))

	switch {
	case base > 0:
		sc.out.PosWordCount++
	case base < 0:
		sc.out.NegWordCount++
	}
	return true
}

func neutralRule(sc *scan, _ int) bool {
	sc.out.NeutralWordCount++
	return true
}

// Modifiers records which marker kinds appear in a polarity word's lookback
// window.
type Modifiers struct {
	Negated     bool
	Intensified bool
	Downtoned   bool
}

// ModifyWeight applies every present modifier to base. The factors multiply,
// so their order does not matter.
func ModifyWeight(base float64, m Modifiers) float64 {
	w := base
	if m.Negated {
		w *= NegationFactor
	}
	if m.Intensified {
		w *= IntensifierFactor
	}
	if m.Downtoned {
		w *= DowntonerFactor
	}
	return w
}

func lookback(lex *lexicon.Lexicons, tokens []string, i int) Modifiers {
	var m Modifiers
	for j := 1; j <= LookbackWindow && i-j >= 0; j++ {
		prev := tokens[i-j]
		if lex.IsNegator(prev) {
			m.Negated = true
		}
		if lex.IsIntensifier(prev) {
			m.Intensified = true
		}
		if lex.IsDowntoner(prev) {
			m.Downtoned = true
		}
	}
	return m
}

// ExclamationScale applies the single post-level emphasis boost.
func ExclamationScale(score float64, exclamations int) float64 {
	if exclamations <= 0 {
		return score
	}
	return score * (1.0 + ExclamationStep*float64(exclamations))
}
