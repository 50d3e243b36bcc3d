// Package pipeline runs the whole analysis over an in-memory corpus: lexicon
// building, per-post scoring, author summaries and the lexicon-only views.
// It does no I/O.
package pipeline

import (
	"log/slog"

	"github.com/spacesedan/sentiscore/internal/aggregation"
	"github.com/spacesedan/sentiscore/internal/lexicon"
	"github.com/spacesedan/sentiscore/internal/models"
	"github.com/spacesedan/sentiscore/internal/sentiment"
	"github.com/spacesedan/sentiscore/internal/textproc"
	"github.com/spacesedan/sentiscore/internal/wordstats"
)

type Options struct {
	// Stem normalizes words on both the lexicon and the post side. Nil
	// disables stemming.
	Stem   textproc.StemFunc
	Tables lexicon.Tables
}

// DefaultOptions uses the Snowball stemmer and the built-in tables.
func DefaultOptions() Options {
	return Options{
		Stem:   textproc.SnowballStem,
		Tables: lexicon.DefaultTables(),
	}
}

type Result struct {
	Posts     []models.Post
	Analyses  []models.PostAnalysis
	Summaries []models.AuthorSummary
	BaseStats []models.AuthorBaseStats
	TalkStats []models.TalkStats

	Positive wordstats.Set
	Negative wordstats.Set
	Stem     textproc.StemFunc
}

// Analyze scores every post and aggregates by author. Analyses point into
// posts, which must not be modified while the result is in use.
func Analyze(posts []models.Post, positive, negative []string, opts Options) Result {
	lex := lexicon.Build(positive, negative, opts.Tables, opts.Stem)
	st := lex.Stats()
	slog.Debug("[Pipeline] Built lexicons",
		slog.Int("polarity", st.Polarity),
		slog.Int("phrases", st.Phrases),
		slog.Int("slang", st.PositiveSlang+st.NegativeSlang))

	scorer := sentiment.NewScorer(lex)
	slog.Debug("[Pipeline] Scoring posts", slog.Any("rules", scorer.RuleNames()))
	analyses := scorer.ScoreAll(posts)

	pos := wordstats.BuildLexiconSet(positive, opts.Stem)
	neg := wordstats.BuildLexiconSet(negative, opts.Stem)

	res := Result{
		Posts:     posts,
		Analyses:  analyses,
		Summaries: aggregation.Summarize(analyses),
		BaseStats: wordstats.ComputeAuthorStats(posts, pos, neg, opts.Stem),
		TalkStats: wordstats.ComputeTalkStats(posts, opts.Stem),
		Positive:  pos,
		Negative:  neg,
		Stem:      opts.Stem,
	}

	slog.Info("[Pipeline] Analysis complete",
		slog.Int("posts", len(res.Analyses)),
		slog.Int("authors", len(res.Summaries)))
	return res
}

// Extremes returns the lexicon-only most positive and most negative posts of
// an author.
func (r Result) Extremes(author string) (most, least models.LexiconScore, found bool) {
	return wordstats.ExtremesForAuthor(r.Posts, author, r.Positive, r.Negative, r.Stem)
}
