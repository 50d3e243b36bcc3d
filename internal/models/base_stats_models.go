package models

// AuthorBaseStats holds lexicon-only counts pooled over all of an author's posts.
type AuthorBaseStats struct {
	Name               string
	TotalPosts         int
	TotalWords         int
	TotalPositiveWords int
	TotalNegativeWords int
	PositivePercent    float64
	NegativePercent    float64
}

type LexiconScore struct {
	Post          *Post
	PositiveCount int
	NegativeCount int
	TotalWords    int
	RawScore      int
}

type TalkStats struct {
	Name            string
	PostCount       int
	TotalWords      int
	AvgWordsPerPost float64
}
