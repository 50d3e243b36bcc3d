package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spacesedan/sentiscore/internal/aggregation"
	"github.com/spacesedan/sentiscore/internal/models"
	"github.com/spacesedan/sentiscore/internal/pipeline"
	"github.com/spacesedan/sentiscore/internal/wordstats"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
}

func printBaseStats(w io.Writer, stats []models.AuthorBaseStats) {
	tw := newTable(w)
	fmt.Fprintln(tw, "Author\tPosts\tWords\tPositive %\tNegative %\t")
	for _, s := range stats {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.5f\t%.5f\t\n",
			s.Name, s.TotalPosts, s.TotalWords, s.PositivePercent, s.NegativePercent)
	}
	tw.Flush()
}

func printTalkStats(w io.Writer, stats []models.TalkStats) {
	tw := newTable(w)
	fmt.Fprintln(tw, "Author\tPosts\tAvg words/post\t")
	for _, s := range stats {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t\n", s.Name, s.PostCount, s.AvgWordsPerPost)
	}
	tw.Flush()

	mostPosts, wordiest, ok := wordstats.MostTalkative(stats)
	if !ok {
		fmt.Fprintln(w, "\nNo posts.")
		return
	}
	fmt.Fprintf(w, "\nMost posts: %s (%d posts)\n", mostPosts.Name, mostPosts.PostCount)
	fmt.Fprintf(w, "Highest avg words/post: %s (%.2f words)\n", wordiest.Name, wordiest.AvgWordsPerPost)
}

func printAuthorExtremes(w io.Writer, res pipeline.Result, author string) {
	most, least, found := res.Extremes(author)
	if !found {
		fmt.Fprintf(w, "Author not found: %s\n", author)
		return
	}
	printLexiconScore(w, "Most positive post", most)
	printLexiconScore(w, "Most negative post", least)

	if s, ok := aggregation.Find(res.Summaries, author); ok {
		fmt.Fprintf(w, "\nAdvanced: %d posts, avg base %.2f, avg adjusted %.2f, style %.2f\n",
			s.PostCount, s.AvgBaseSentiment, s.AvgAdjustedSentiment, s.StyleScore)
	}
}

func printLexiconScore(w io.Writer, title string, s models.LexiconScore) {
	fmt.Fprintf(w, "\n%s:\n", title)
	fmt.Fprintf(w, "Text: %s\n", s.Post.Text)
	fmt.Fprintf(w, "Positive words: %d\n", s.PositiveCount)
	fmt.Fprintf(w, "Negative words: %d\n", s.NegativeCount)
	fmt.Fprintf(w, "Total words: %d\n", s.TotalWords)
	fmt.Fprintf(w, "Raw score: %d\n", s.RawScore)
}

func printAdvanced(w io.Writer, summaries []models.AuthorSummary) {
	tw := newTable(w)
	fmt.Fprintln(tw, "Author\tPosts\tAvg base\tAvg adjusted\tPos %\tNeg %\tStyle\t")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t\n",
			s.Name, s.PostCount, s.AvgBaseSentiment, s.AvgAdjustedSentiment,
			s.AvgPosPercent, s.AvgNegPercent, s.StyleScore)
	}
	tw.Flush()

	for _, s := range summaries {
		if s.MostPositive == nil {
			continue
		}
		fmt.Fprintf(w, "\n%s\n  most positive (%.2f): %s\n  most negative (%.2f): %s\n",
			s.Name,
			s.MostPositive.AdjustedSentimentScore, s.MostPositive.Text(),
			s.MostNegative.AdjustedSentimentScore, s.MostNegative.Text())
	}
}
