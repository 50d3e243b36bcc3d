// Package report turns analysis results into the exported document. All
// rounding happens here; the engine keeps full precision.
package report

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/spacesedan/sentiscore/internal/models"
)

// ReferenceScorer scores a post text with an independent model.
type ReferenceScorer interface {
	Score(text string) (float64, string)
}

type Input struct {
	Analyses  []models.PostAnalysis
	Summaries []models.AuthorSummary
	BaseStats []models.AuthorBaseStats

	// Reference is optional.
	Reference ReferenceScorer

	// GeneratedAt defaults to the current time.
	GeneratedAt time.Time
}

type Report struct {
	GeneratedAt string   `json:"generatedAt"`
	Overview    Overview `json:"overview"`
	Authors     []Author `json:"authors"`
}

type Overview struct {
	PostCount               int     `json:"postCount"`
	AuthorCount             int     `json:"authorCount"`
	MeanBaseSentiment       float64 `json:"meanBaseSentiment"`
	MeanAdjustedSentiment   float64 `json:"meanAdjustedSentiment"`
	StdDevAdjustedSentiment float64 `json:"stdDevAdjustedSentiment"`
}

type Author struct {
	Name               string          `json:"name"`
	BaseStats          BaseStats       `json:"baseStats"`
	AdvancedSummary    AdvancedSummary `json:"advancedSummary"`
	MostPositivePostID string          `json:"mostPositivePostId,omitempty"`
	MostNegativePostID string          `json:"mostNegativePostId,omitempty"`
	Posts              []Post          `json:"posts"`
}

type BaseStats struct {
	TotalPosts      int     `json:"totalPosts"`
	TotalWords      int     `json:"totalWords"`
	PositivePercent float64 `json:"positivePercent"`
	NegativePercent float64 `json:"negativePercent"`
}

type AdvancedSummary struct {
	PostCount            int     `json:"postCount"`
	AvgBaseSentiment     float64 `json:"avgBaseSentiment"`
	AvgAdjustedSentiment float64 `json:"avgAdjustedSentiment"`
	AvgPosPercent        float64 `json:"avgPosPercent"`
	AvgNegPercent        float64 `json:"avgNegPercent"`
	AvgAllCaps           float64 `json:"avgAllCaps"`
	AvgExclamations      float64 `json:"avgExclamations"`
	AvgStyleScore        float64 `json:"avgStyleScore"`
}

type Post struct {
	ID                     string   `json:"postId"`
	Timestamp              string   `json:"datetime"`
	Text                   string   `json:"text"`
	TotalWords             int      `json:"totalWords"`
	PosWordCount           int      `json:"posWordCount"`
	NegWordCount           int      `json:"negWordCount"`
	NeutralWordCount       int      `json:"neutralWordCount"`
	BaseSentimentScore     float64  `json:"baseSentimentScore"`
	AdjustedSentimentScore float64  `json:"adjustedSentimentScore"`
	NegationHits           int      `json:"negationHits"`
	IntensifierHits        int      `json:"intensifierHits"`
	DowntonerHits          int      `json:"downtonerHits"`
	ExclamationCount       int      `json:"exclamationCount"`
	QuestionCount          int      `json:"questionCount"`
	AllCapsWordCount       int      `json:"allCapsWordCount"`
	EmojiPositiveCount     int      `json:"emojiPositiveCount"`
	EmojiNegativeCount     int      `json:"emojiNegativeCount"`
	NgramPositiveHits      int      `json:"ngramPositiveHits"`
	NgramNegativeHits      int      `json:"ngramNegativeHits"`
	ReferenceCompound      *float64 `json:"referenceCompound,omitempty"`
	ReferenceLabel         string   `json:"referenceLabel,omitempty"`
}

// Build assembles the report. Authors follow the order of in.Summaries and
// each author's posts keep their input order.
func Build(in Input) *Report {
	generated := in.GeneratedAt
	if generated.IsZero() {
		generated = time.Now()
	}

	base := make(map[string]models.AuthorBaseStats, len(in.BaseStats))
	for _, b := range in.BaseStats {
		base[b.Name] = b
	}

	postsByAuthor := make(map[string][]Post, len(in.Summaries))
	for i := range in.Analyses {
		a := &in.Analyses[i]
		postsByAuthor[a.AuthorName] = append(postsByAuthor[a.AuthorName], newPost(a, in.Reference))
	}

	rep := &Report{
		GeneratedAt: generated.UTC().Format(time.RFC3339),
		Overview:    overview(in.Analyses, len(in.Summaries)),
		Authors:     make([]Author, 0, len(in.Summaries)),
	}
	for _, s := range in.Summaries {
		rep.Authors = append(rep.Authors, newAuthor(s, base[s.Name], postsByAuthor[s.Name]))
	}
	return rep
}

func overview(analyses []models.PostAnalysis, authors int) Overview {
	ov := Overview{PostCount: len(analyses), AuthorCount: authors}
	if len(analyses) == 0 {
		return ov
	}

	baseScores := make([]float64, len(analyses))
	adjScores := make([]float64, len(analyses))
	for i := range analyses {
		baseScores[i] = analyses[i].BaseSentimentScore
		adjScores[i] = analyses[i].AdjustedSentimentScore
	}
	meanAdj, stdAdj := stat.PopMeanStdDev(adjScores, nil)

	ov.MeanBaseSentiment = round2(stat.Mean(baseScores, nil))
	ov.MeanAdjustedSentiment = round2(meanAdj)
	ov.StdDevAdjustedSentiment = round2(stdAdj)
	return ov
}

func newAuthor(s models.AuthorSummary, b models.AuthorBaseStats, posts []Post) Author {
	a := Author{
		Name: s.Name,
		BaseStats: BaseStats{
			TotalPosts:      b.TotalPosts,
			TotalWords:      b.TotalWords,
			PositivePercent: round2(b.PositivePercent),
			NegativePercent: round2(b.NegativePercent),
		},
		AdvancedSummary: AdvancedSummary{
			PostCount:            s.PostCount,
			AvgBaseSentiment:     round2(s.AvgBaseSentiment),
			AvgAdjustedSentiment: round2(s.AvgAdjustedSentiment),
			AvgPosPercent:        round2(s.AvgPosPercent),
			AvgNegPercent:        round2(s.AvgNegPercent),
			AvgAllCaps:           round2(s.AvgAllCaps),
			AvgExclamations:      round2(s.AvgExclamations),
			AvgStyleScore:        round2(s.StyleScore),
		},
		Posts: posts,
	}
	if s.MostPositive != nil {
		a.MostPositivePostID = s.MostPositive.ID
	}
	if s.MostNegative != nil {
		a.MostNegativePostID = s.MostNegative.ID
	}
	if a.Posts == nil {
		a.Posts = []Post{}
	}
	return a
}

func newPost(a *models.PostAnalysis, ref ReferenceScorer) Post {
	p := Post{
		ID:                     a.ID,
		Timestamp:              a.Timestamp,
		Text:                   a.Text(),
		TotalWords:             a.TotalWords,
		PosWordCount:           a.PosWordCount,
		NegWordCount:           a.NegWordCount,
		NeutralWordCount:       a.NeutralWordCount,
		BaseSentimentScore:     round2(a.BaseSentimentScore),
		AdjustedSentimentScore: round2(a.AdjustedSentimentScore),
		NegationHits:           a.NegationHits,
		IntensifierHits:        a.IntensifierHits,
		DowntonerHits:          a.DowntonerHits,
		ExclamationCount:       a.ExclamationCount,
		QuestionCount:          a.QuestionCount,
		AllCapsWordCount:       a.AllCapsWordCount,
		EmojiPositiveCount:     a.EmojiPositiveCount,
		EmojiNegativeCount:     a.EmojiNegativeCount,
		NgramPositiveHits:      a.NgramPositiveHits,
		NgramNegativeHits:      a.NgramNegativeHits,
	}
	if ref != nil {
		compound, label := ref.Score(p.Text)
		compound = round2(compound)
		p.ReferenceCompound = &compound
		p.ReferenceLabel = label
	}
	return p
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
