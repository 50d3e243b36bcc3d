package sentiment

import (
	"math"
	"reflect"
	"testing"

	"github.com/spacesedan/sentiscore/internal/lexicon"
	"github.com/spacesedan/sentiscore/internal/models"
	"github.com/spacesedan/sentiscore/internal/textproc"
)

const epsilon = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < epsilon }

func newTestScorer(pos, neg []string) *Scorer {
	lex := lexicon.Build(pos, neg, lexicon.DefaultTables(), textproc.Identity)
	return NewScorer(lex)
}

func score(s *Scorer, text string) models.PostAnalysis {
	return s.Score(&models.Post{ID: "1", AuthorName: "a", Text: text})
}

func TestScoreIntensifierAndExclamations(t *testing.T) {
	s := newTestScorer(nil, nil)
	got := score(s, "SO much love!!!")

	if !approx(got.BaseSentimentScore, 2.0) {
		t.Errorf("BaseSentimentScore = %v, want 2.0", got.BaseSentimentScore)
	}
	// 2.0 * 1.5 (intensifier two tokens back) * 1.15 (three '!')
	if !approx(got.AdjustedSentimentScore, 3.45) {
		t.Errorf("AdjustedSentimentScore = %v, want 3.45", got.AdjustedSentimentScore)
	}
	if got.IntensifierHits != 1 || got.PosWordCount != 1 || got.AllCapsWordCount != 1 {
		t.Errorf("counters = %+v", got)
	}
}

func TestScoreModifiersOnlyLookBack(t *testing.T) {
	s := newTestScorer(nil, nil)
	got := score(s, "I love this SO MUCH!!!")

	// "so" follows "love" so it cannot intensify it.
	if !approx(got.AdjustedSentimentScore, 2.0*1.15) {
		t.Errorf("AdjustedSentimentScore = %v, want %v", got.AdjustedSentimentScore, 2.0*1.15)
	}
	if got.AllCapsWordCount != 2 {
		t.Errorf("AllCapsWordCount = %d, want 2", got.AllCapsWordCount)
	}
	if got.IntensifierHits != 1 {
		t.Errorf("IntensifierHits = %d, want 1", got.IntensifierHits)
	}
	if got.TotalWords != 5 || got.PosWordCount != 1 || got.NeutralWordCount != 4 {
		t.Errorf("word counters = total %d pos %d neutral %d, want 5/1/4",
			got.TotalWords, got.PosWordCount, got.NeutralWordCount)
	}
	if got.ExclamationCount != 3 {
		t.Errorf("ExclamationCount = %d, want 3", got.ExclamationCount)
	}
}

func TestScoreBigramBeatsNegation(t *testing.T) {
	s := newTestScorer([]string{"good"}, nil)
	got := score(s, "not good")

	// "not" starts the phrase "not good" (-1.5) and is consumed by it, so it
	// never counts as a negation hit. "good" is then scored on its own with
	// "not" in its lookback window (-0.7).
	if got.NgramNegativeHits != 1 {
		t.Errorf("NgramNegativeHits = %d, want 1", got.NgramNegativeHits)
	}
	if got.NegationHits != 0 {
		t.Errorf("NegationHits = %d, want 0", got.NegationHits)
	}
	if !approx(got.BaseSentimentScore, 1.0) {
		t.Errorf("BaseSentimentScore = %v, want 1.0", got.BaseSentimentScore)
	}
	if !approx(got.AdjustedSentimentScore, -1.5-0.7) {
		t.Errorf("AdjustedSentimentScore = %v, want -2.2", got.AdjustedSentimentScore)
	}
}

func TestScoreNegatorAtDistanceOne(t *testing.T) {
	s := newTestScorer([]string{"fun"}, nil)
	got := score(s, "never fun")

	if !approx(got.AdjustedSentimentScore, -0.7) {
		t.Errorf("AdjustedSentimentScore = %v, want -0.7", got.AdjustedSentimentScore)
	}
	if got.NegationHits != 1 || got.PosWordCount != 1 || got.NeutralWordCount != 1 {
		t.Errorf("counters = %+v", got)
	}
}

func TestScoreComposedModifiers(t *testing.T) {
	s := newTestScorer([]string{"good"}, []string{"bad"})

	tests := []struct {
		name string
		text string
		want float64
	}{
		{"negated downtoned", "not slightly good", 1.0 * NegationFactor * DowntonerFactor},
		{"intensified negative", "really bad", -1.0 * IntensifierFactor},
		{"negated intensified", "never very bad", -1.0 * NegationFactor * IntensifierFactor},
		{"outside window", "not very big good", 1.0 * IntensifierFactor},
		{"no modifiers", "good", 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := score(s, tt.text)
			if !approx(got.AdjustedSentimentScore, tt.want) {
				t.Errorf("AdjustedSentimentScore(%q) = %v, want %v", tt.text, got.AdjustedSentimentScore, tt.want)
			}
		})
	}
}

func TestScoreSlangIsExclusive(t *testing.T) {
	// "lol" is also a positive word, but the slang rule consumes it first.
	s := newTestScorer([]string{"lol"}, nil)
	got := score(s, "LOL ugh")

	if got.EmojiPositiveCount != 1 || got.EmojiNegativeCount != 1 {
		t.Errorf("emoji counts = %d/%d, want 1/1", got.EmojiPositiveCount, got.EmojiNegativeCount)
	}
	if got.PosWordCount != 0 || got.NegWordCount != 0 || got.NeutralWordCount != 0 {
		t.Errorf("word counts = %d/%d/%d, want 0/0/0", got.PosWordCount, got.NegWordCount, got.NeutralWordCount)
	}
	if got.NgramPositiveHits+got.NgramNegativeHits != 0 {
		t.Error("slang token counted as phrase hit")
	}
	if got.BaseSentimentScore != 0 || !approx(got.AdjustedSentimentScore, 0) {
		t.Errorf("scores = %v/%v, want 0/0", got.BaseSentimentScore, got.AdjustedSentimentScore)
	}
	if got.TotalWords != 2 {
		t.Errorf("TotalWords = %d, want 2", got.TotalWords)
	}
}

func TestScoreEmojiWithoutLettersIsNotAWord(t *testing.T) {
	s := newTestScorer(nil, nil)
	got := score(s, "😂 😭")
	if got.TotalWords != 0 || got.EmojiPositiveCount != 0 || got.EmojiNegativeCount != 0 {
		t.Errorf("got %+v, want emoji-only tokens skipped", got)
	}
}

func TestScoreTrigramBeforeBigram(t *testing.T) {
	tables := lexicon.Tables{
		Phrases: map[string]float64{
			"so tired of": -1.5,
			"so tired":    4.0,
		},
	}
	s := NewScorer(lexicon.Build(nil, nil, tables, textproc.Identity))
	got := score(s, "so tired of it")

	if !approx(got.AdjustedSentimentScore, -1.5) {
		t.Errorf("AdjustedSentimentScore = %v, want -1.5", got.AdjustedSentimentScore)
	}
	if got.NgramNegativeHits != 1 || got.NgramPositiveHits != 0 {
		t.Errorf("ngram hits = +%d/-%d, want +0/-1", got.NgramPositiveHits, got.NgramNegativeHits)
	}
}

func TestScorePhrases(t *testing.T) {
	s := newTestScorer(nil, nil)

	tests := []struct {
		text string
		want float64
		pos  int
		neg  int
	}{
		{"Great job, team", 1.5, 1, 0},
		{"thank you all", 1.0, 1, 0},
		{"what a waste of time", -2.0, 0, 1},
		{"so much fun", 2.0, 1, 0},
		{"I am fed up", -1.5, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := score(s, tt.text)
			if !approx(got.AdjustedSentimentScore, tt.want) {
				t.Errorf("AdjustedSentimentScore = %v, want %v", got.AdjustedSentimentScore, tt.want)
			}
			if got.NgramPositiveHits != tt.pos || got.NgramNegativeHits != tt.neg {
				t.Errorf("ngram hits = +%d/-%d, want +%d/-%d", got.NgramPositiveHits, got.NgramNegativeHits, tt.pos, tt.neg)
			}
		})
	}
}

func TestScoreEmptyPosts(t *testing.T) {
	s := newTestScorer([]string{"good"}, nil)

	for _, text := range []string{"", "   ", "--- ..."} {
		got := score(s, text)
		if got.TotalWords != 0 || got.BaseSentimentScore != 0 || got.AdjustedSentimentScore != 0 {
			t.Errorf("Score(%q) = %+v, want zero", text, got)
		}
		if got.PositivePercent() != 0 || got.NegativePercent() != 0 {
			t.Errorf("Score(%q) percentages not zero", text)
		}
	}

	got := score(s, "!!! ???")
	if got.TotalWords != 0 || got.ExclamationCount != 3 || got.QuestionCount != 3 {
		t.Errorf("punctuation-only post = %+v", got)
	}
	if got.AdjustedSentimentScore != 0 {
		t.Errorf("AdjustedSentimentScore = %v, want 0", got.AdjustedSentimentScore)
	}
}

func TestScoreTotalWordsMatchesTokenizer(t *testing.T) {
	s := newTestScorer([]string{"good"}, []string{"bad"})
	texts := []string{
		"good bad ugly",
		"lol -- not good!!! 😂",
		"so much fun, thank you ... really",
		"   ",
		"#tag @user http://x.y/z 2024",
	}
	for _, text := range texts {
		want := textproc.Tokenize(text, textproc.Identity).Words()
		got := score(s, text)
		if got.TotalWords != want {
			t.Errorf("Score(%q).TotalWords = %d, want %d", text, got.TotalWords, want)
		}
		sum := got.PosWordCount + got.NegWordCount + got.NeutralWordCount +
			got.EmojiPositiveCount + got.EmojiNegativeCount +
			got.NgramPositiveHits + got.NgramNegativeHits
		if sum != got.TotalWords {
			t.Errorf("Score(%q): rule outcomes sum to %d, TotalWords = %d", text, sum, got.TotalWords)
		}
	}
}

func TestScoreExclamationScaleIsAppliedOnce(t *testing.T) {
	s := newTestScorer([]string{"good"}, []string{"bad"})
	plain := score(s, "really good, not bad")

	for n := 1; n <= 4; n++ {
		text := "really good, not bad"
		for i := 0; i < n; i++ {
			text += "!"
		}
		got := score(s, text)
		want := plain.AdjustedSentimentScore * (1 + ExclamationStep*float64(n))
		if !approx(got.AdjustedSentimentScore, want) {
			t.Errorf("%d '!': AdjustedSentimentScore = %v, want %v", n, got.AdjustedSentimentScore, want)
		}
		if got.BaseSentimentScore != plain.BaseSentimentScore {
			t.Errorf("%d '!': base score changed", n)
		}
	}
}

func TestScoreCopiesIdentity(t *testing.T) {
	s := newTestScorer(nil, nil)
	post := &models.Post{ID: "42", AuthorID: "u1", Timestamp: "2020-01-01", AuthorName: "Sen. X", Text: "hi"}
	got := s.Score(post)

	if got.Post != post {
		t.Error("analysis does not reference the post")
	}
	if got.ID != "42" || got.AuthorName != "Sen. X" || got.Timestamp != "2020-01-01" || got.Text() != "hi" {
		t.Errorf("identity = %+v", got)
	}
}

func TestScoreAll(t *testing.T) {
	s := newTestScorer([]string{"good"}, nil)
	posts := []models.Post{
		{ID: "a", AuthorName: "x", Text: "good"},
		{ID: "b", AuthorName: "y", Text: "meh"},
	}
	got := s.ScoreAll(posts)

	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("ScoreAll order = %+v", got)
	}
	if got[0].Post != &posts[0] {
		t.Error("ScoreAll copied the post")
	}
	if len(s.ScoreAll(nil)) != 0 {
		t.Error("ScoreAll(nil) not empty")
	}
}

func TestScoreWithSnowballStemmer(t *testing.T) {
	lex := lexicon.Build(nil, nil, lexicon.DefaultTables(), textproc.SnowballStem)
	s := NewScorer(lex)
	got := score(s, "I loved it")

	if !approx(got.BaseSentimentScore, 2.0) {
		t.Errorf("BaseSentimentScore = %v, want 2.0", got.BaseSentimentScore)
	}
}

func TestScoreIsRepeatable(t *testing.T) {
	pos, neg := []string{"good", "win"}, []string{"bad", "lose"}
	a := NewScorer(lexicon.Build(pos, neg, lexicon.DefaultTables(), textproc.Identity))
	b := NewScorer(lexicon.Build(pos, neg, lexicon.DefaultTables(), textproc.Identity))

	post := &models.Post{Text: "We will not lose, we will WIN!! so much fun lol"}
	if !reflect.DeepEqual(a.Score(post), b.Score(post)) {
		t.Error("identical lexicons produced different analyses")
	}
}

func TestRuleNames(t *testing.T) {
	want := []string{"slang", "trigram", "bigram", "markers", "polarity", "neutral"}
	if got := newTestScorer(nil, nil).RuleNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("RuleNames() = %v, want %v", got, want)
	}
}
