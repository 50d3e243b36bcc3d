package sentiment

import (
	"github.com/jonreiter/govader"
)

const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"

	referenceThreshold = 0.20
)

// ReferenceScorer computes a VADER compound score for a post. It is reported
// next to the engine's own scores as a sanity check and never feeds back into
// them.
type ReferenceScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewReferenceScorer() *ReferenceScorer {
	return &ReferenceScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the compound score in [-1, 1] and its label.
func (r *ReferenceScorer) Score(text string) (float64, string) {
	score := r.analyzer.PolarityScores(text).Compound
	return score, ReferenceLabel(score)
}

func ReferenceLabel(score float64) string {
	switch {
	case score >= referenceThreshold:
		return LabelPositive
	case score <= -referenceThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}
