// Package sentiment scores posts against the lexicons built by package lexicon.
//
// Each non-empty token is offered to an ordered list of rules (slang/emoji,
// trigram, bigram, markers, polarity, neutral) and the first rule that
// consumes it ends dispatch for that token. Contributions are summed into a
// base score (polarity words only) and an adjusted score (modified polarity
// words, phrases and slang), and the adjusted score is finally scaled by the
// number of exclamation marks in the post.
//
// A Scorer keeps no per-post state and posts never influence each other.
package sentiment

import (
	"github.com/spacesedan/sentiscore/internal/lexicon"
	"github.com/spacesedan/sentiscore/internal/models"
	"github.com/spacesedan/sentiscore/internal/textproc"
)

type Scorer struct {
	lex   *lexicon.Lexicons
	rules []rule
}

// NewScorer returns a scorer that normalizes tokens with the stemmer lex was
// built with.
func NewScorer(lex *lexicon.Lexicons) *Scorer {
	return &Scorer{
		lex:   lex,
		rules: defaultRules,
	}
}

// RuleNames lists the rules in precedence order.
func (s *Scorer) RuleNames() []string {
	names := make([]string, len(s.rules))
	for i, r := range s.rules {
		names[i] = r.name
	}
	return names
}

// Score analyzes a single post. The result references post.
func (s *Scorer) Score(post *models.Post) models.PostAnalysis {
	toks := textproc.Tokenize(post.Text, s.lex.Stem())

	out := models.PostAnalysis{
		Post:             post,
		ID:               post.ID,
		AuthorName:       post.AuthorName,
		Timestamp:        post.Timestamp,
		ExclamationCount: toks.Exclamations,
		QuestionCount:    toks.Questions,
		AllCapsWordCount: toks.AllCaps,
	}
	sc := &scan{lex: s.lex, toks: toks, out: &out}

	for i, tok := range toks.Normalized {
		if tok == "" {
			continue
		}
		out.TotalWords++
		for _, r := range s.rules {
			if r.apply(sc, i) {
				break
			}
		}
	}

	out.AdjustedSentimentScore = ExclamationScale(sc.adjusted, out.ExclamationCount)
	return out
}

// ScoreAll scores posts in order. Analyses point into the posts slice.
func (s *Scorer) ScoreAll(posts []models.Post) []models.PostAnalysis {
	out := make([]models.PostAnalysis, len(posts))
	for i := range posts {
		out[i] = s.Score(&posts[i])
	}
	return out
}
