package aggregation

import (
	"math"
	"testing"

	"github.com/spacesedan/sentiscore/internal/models"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func analysis(id, author string, adjusted float64) models.PostAnalysis {
	return models.PostAnalysis{ID: id, AuthorName: author, AdjustedSentimentScore: adjusted}
}

func TestSummarizeAveragesPercentagesPerPost(t *testing.T) {
	analyses := []models.PostAnalysis{
		{ID: "1", AuthorName: "a", TotalWords: 2, PosWordCount: 1},  // 50%
		{ID: "2", AuthorName: "a", TotalWords: 10, PosWordCount: 0}, // 0%
	}
	got := Summarize(analyses)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	// Pooled would be 1/12 = 8.33%.
	if !approx(got[0].AvgPosPercent, 25.0) {
		t.Errorf("AvgPosPercent = %v, want 25", got[0].AvgPosPercent)
	}
}

func TestSummarizeZeroWordPostCountsAsZeroPercent(t *testing.T) {
	analyses := []models.PostAnalysis{
		{ID: "1", AuthorName: "a", TotalWords: 4, NegWordCount: 2}, // 50%
		{ID: "2", AuthorName: "a"},                                 // no words
	}
	got := Summarize(analyses)[0]
	if !approx(got.AvgNegPercent, 25.0) {
		t.Errorf("AvgNegPercent = %v, want 25", got.AvgNegPercent)
	}
}

func TestSummarizeMeans(t *testing.T) {
	analyses := []models.PostAnalysis{
		{ID: "1", AuthorName: "a", BaseSentimentScore: 1, AdjustedSentimentScore: 2, AllCapsWordCount: 1, ExclamationCount: 3},
		{ID: "2", AuthorName: "a", BaseSentimentScore: -3, AdjustedSentimentScore: -1, AllCapsWordCount: 2, ExclamationCount: 0},
	}
	got := Summarize(analyses)[0]

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"AvgBaseSentiment", got.AvgBaseSentiment, -1.0},
		{"AvgAdjustedSentiment", got.AvgAdjustedSentiment, 0.5},
		{"AvgAllCaps", got.AvgAllCaps, 1.5},
		{"AvgExclamations", got.AvgExclamations, 1.5},
		{"StyleScore", got.StyleScore, 2.0*1.5 + 1.5*1.5},
	}
	for _, tt := range tests {
		if !approx(tt.got, tt.want) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
	if got.PostCount != 2 {
		t.Errorf("PostCount = %d, want 2", got.PostCount)
	}
}

func TestSummarizeExtremesTieBreak(t *testing.T) {
	analyses := []models.PostAnalysis{
		analysis("first-high", "a", 3),
		analysis("low", "a", -2),
		analysis("second-high", "a", 3),
		analysis("second-low", "a", -2),
	}
	got := Summarize(analyses)[0]

	if got.MostPositive == nil || got.MostPositive.ID != "first-high" {
		t.Errorf("MostPositive = %v, want first-high", got.MostPositive)
	}
	if got.MostNegative == nil || got.MostNegative.ID != "low" {
		t.Errorf("MostNegative = %v, want low", got.MostNegative)
	}
	if got.MostPositive != &analyses[0] {
		t.Error("MostPositive does not point into the input slice")
	}
}

func TestSummarizeSinglePostIsBothExtremes(t *testing.T) {
	analyses := []models.PostAnalysis{analysis("only", "a", 0)}
	got := Summarize(analyses)[0]
	if got.MostPositive != &analyses[0] || got.MostNegative != &analyses[0] {
		t.Error("single post should be both extremes")
	}
}

func TestSummarizeGroupsByExactName(t *testing.T) {
	analyses := []models.PostAnalysis{
		analysis("1", "Sen. Smith", 1),
		analysis("2", "sen. smith", 1),
		analysis("3", "Jones", 1),
		analysis("4", "Sen. Smith", 1),
	}
	got := Summarize(analyses)

	wantOrder := []string{"Sen. Smith", "sen. smith", "Jones"}
	if len(got) != len(wantOrder) {
		t.Fatalf("len = %d, want %d", len(got), len(wantOrder))
	}
	for i, name := range wantOrder {
		if got[i].Name != name {
			t.Errorf("got[%d].Name = %q, want %q", i, got[i].Name, name)
		}
	}
	if got[0].PostCount != 2 {
		t.Errorf("Sen. Smith PostCount = %d, want 2", got[0].PostCount)
	}

	total := 0
	for _, s := range got {
		total += s.PostCount
	}
	if total != len(analyses) {
		t.Errorf("post counts sum to %d, want %d", total, len(analyses))
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if got := Summarize(nil); len(got) != 0 {
		t.Errorf("Summarize(nil) = %v, want empty", got)
	}
}

func TestComparators(t *testing.T) {
	hi := analysis("hi", "a", 1)
	lo := analysis("lo", "a", -1)
	same := analysis("same", "a", 1)

	if !morePositive(&hi, nil) || !moreNegative(&lo, nil) {
		t.Error("nil current must always lose")
	}
	if !morePositive(&hi, &lo) || morePositive(&lo, &hi) {
		t.Error("morePositive ordering wrong")
	}
	if !moreNegative(&lo, &hi) || moreNegative(&hi, &lo) {
		t.Error("moreNegative ordering wrong")
	}
	if morePositive(&same, &hi) || moreNegative(&same, &hi) {
		t.Error("equal scores must not replace the current extreme")
	}
}

func TestFind(t *testing.T) {
	summaries := Summarize([]models.PostAnalysis{analysis("1", "a", 1)})
	if _, ok := Find(summaries, "a"); !ok {
		t.Error("Find(a) not found")
	}
	if _, ok := Find(summaries, "b"); ok {
		t.Error("Find(b) found")
	}
}
