package models

// PostAnalysis is the scorer's output for one post.
type PostAnalysis struct {
	Post       *Post
	ID         string
	AuthorName string
	Timestamp  string

	TotalWords       int
	PosWordCount     int
	NegWordCount     int
	NeutralWordCount int

	NegationHits    int
	IntensifierHits int
	DowntonerHits   int

	ExclamationCount int
	QuestionCount    int
	AllCapsWordCount int

	EmojiPositiveCount int
	EmojiNegativeCount int

	NgramPositiveHits int
	NgramNegativeHits int

	BaseSentimentScore     float64
	AdjustedSentimentScore float64
}

// PositivePercent is the share of words that hit a positive polarity entry.
func (a *PostAnalysis) PositivePercent() float64 {
	return percent(a.PosWordCount, a.TotalWords)
}

// NegativePercent is the share of words that hit a negative polarity entry.
func (a *PostAnalysis) NegativePercent() float64 {
	return percent(a.NegWordCount, a.TotalWords)
}

// Text returns the original post text, or "" for analyses built without a post.
func (a *PostAnalysis) Text() string {
	if a.Post == nil {
		return ""
	}
	return a.Post.Text
}

type AuthorSummary struct {
	Name                 string
	PostCount            int
	AvgBaseSentiment     float64
	AvgAdjustedSentiment float64
	AvgPosPercent        float64
	AvgNegPercent        float64
	AvgAllCaps           float64
	AvgExclamations      float64
	StyleScore           float64

	// Extremes point into the analysis slice the summary was built from.
	MostPositive *PostAnalysis
	MostNegative *PostAnalysis
}

func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100.0 * float64(count) / float64(total)
}
