// Package aggregation rolls per-post analyses up into per-author summaries.
//
// Each author group is reduced with a fold over an accumulator value. The
// most positive and most negative posts are picked with strict comparisons,
// so the first post in input order wins a tie. Feeding the same analyses in
// a different order can therefore pick a different (equally extreme) post.
package aggregation

import "github.com/spacesedan/sentiscore/internal/models"

const (
	exclamationStyleWeight = 2.0
	allCapsStyleWeight     = 1.5
)

type accumulator struct {
	count int

	sumBase        float64
	sumAdjusted    float64
	sumPosPercent  float64
	sumNegPercent  float64
	sumAllCaps     float64
	sumExclamation float64

	mostPositive *models.PostAnalysis
	mostNegative *models.PostAnalysis
}

// add folds one analysis into the accumulator and returns the result.
func (acc accumulator) add(a *models.PostAnalysis) accumulator {
	acc.count++
	acc.sumBase += a.BaseSentimentScore
	acc.sumAdjusted += a.AdjustedSentimentScore
	acc.sumPosPercent += a.PositivePercent()
	acc.sumNegPercent += a.NegativePercent()
	acc.sumAllCaps += float64(a.AllCapsWordCount)
	acc.sumExclamation += float64(a.ExclamationCount)

	if morePositive(a, acc.mostPositive) {
		acc.mostPositive = a
	}
	if moreNegative(a, acc.mostNegative) {
		acc.mostNegative = a
	}
	return acc
}

func (acc accumulator) summary(name string) models.AuthorSummary {
	s := models.AuthorSummary{
		Name:         name,
		PostCount:    acc.count,
		MostPositive: acc.mostPositive,
		MostNegative: acc.mostNegative,
	}
	if acc.count == 0 {
		return s
	}
	n := float64(acc.count)
	s.AvgBaseSentiment = acc.sumBase / n
	s.AvgAdjustedSentiment = acc.sumAdjusted / n
	s.AvgPosPercent = acc.sumPosPercent / n
	s.AvgNegPercent = acc.sumNegPercent / n
	s.AvgAllCaps = acc.sumAllCaps / n
	s.AvgExclamations = acc.sumExclamation / n
	s.StyleScore = StyleScore(s.AvgExclamations, s.AvgAllCaps)
	return s
}

// morePositive reports whether candidate beats the current maximum. Equal
// scores do not, which keeps the earliest post.
func morePositive(candidate, current *models.PostAnalysis) bool {
	return current == nil || candidate.AdjustedSentimentScore > current.AdjustedSentimentScore
}

// moreNegative is the mirror of morePositive.
func moreNegative(candidate, current *models.PostAnalysis) bool {
	return current == nil || candidate.AdjustedSentimentScore < current.AdjustedSentimentScore
}

func StyleScore(avgExclamations, avgAllCaps float64) float64 {
	return exclamationStyleWeight*avgExclamations + allCapsStyleWeight*avgAllCaps
}

// Summarize groups analyses by exact author name and summarizes each group.
// Summaries come out in order of each author's first post. The extremes
// point into analyses.
func Summarize(analyses []models.PostAnalysis) []models.AuthorSummary {
	var order []string
	groups := make(map[string]accumulator)

	for i := range analyses {
		a := &analyses[i]
		acc, seen := groups[a.AuthorName]
		if !seen {
			order = append(order, a.AuthorName)
		}
		groups[a.AuthorName] = acc.add(a)
	}

	out := make([]models.AuthorSummary, 0, len(order))
	for _, name := range order {
		out = append(out, groups[name].summary(name))
	}
	return out
}

// Find returns the summary for name.
func Find(summaries []models.AuthorSummary, name string) (models.AuthorSummary, bool) {
	for _, s := range summaries {
		if s.Name == name {
			return s, true
		}
	}
	return models.AuthorSummary{}, false
}
