// Package wordstats computes plain lexicon counts with no modifiers, phrases
// or punctuation effects. It backs the base and talk views of the analyzer
// and gives a baseline to compare the advanced scores against.
package wordstats

import (
	"github.com/spacesedan/sentiscore/internal/models"
	"github.com/spacesedan/sentiscore/internal/textproc"
)

// Set is a membership set of normalized words.
type Set map[string]struct{}

func (s Set) Has(word string) bool {
	_, ok := s[word]
	return ok
}

// BuildLexiconSet normalizes words with stem and drops the ones that end up
// empty.
func BuildLexiconSet(words []string, stem textproc.StemFunc) Set {
	s := make(Set, len(words))
	for _, w := range words {
		if key := textproc.NormalizeWord(w, stem); key != "" {
			s[key] = struct{}{}
		}
	}
	return s
}

// ScoreLexiconOnly counts the positive and negative words of a post. A word in
// both sets counts on both sides.
func ScoreLexiconOnly(post *models.Post, pos, neg Set, stem textproc.StemFunc) models.LexiconScore {
	res := models.LexiconScore{Post: post}
	for _, tok := range textproc.Tokenize(post.Text, stem).Normalized {
		if tok == "" {
			continue
		}
		res.TotalWords++
		if pos.Has(tok) {
			res.PositiveCount++
		}
		if neg.Has(tok) {
			res.NegativeCount++
		}
	}
	res.RawScore = res.PositiveCount - res.NegativeCount
	return res
}

// ComputeAuthorStats pools word counts per author. Percentages are taken over
// all of the author's words, not averaged per post. Authors are returned in
// order of first appearance.
func ComputeAuthorStats(posts []models.Post, pos, neg Set, stem textproc.StemFunc) []models.AuthorBaseStats {
	var order []string
	byName := make(map[string]*models.AuthorBaseStats)

	for i := range posts {
		p := &posts[i]
		st, ok := byName[p.AuthorName]
		if !ok {
			st = &models.AuthorBaseStats{Name: p.AuthorName}
			byName[p.AuthorName] = st
			order = append(order, p.AuthorName)
		}
		score := ScoreLexiconOnly(p, pos, neg, stem)
		st.TotalPosts++
		st.TotalWords += score.TotalWords
		st.TotalPositiveWords += score.PositiveCount
		st.TotalNegativeWords += score.NegativeCount
	}

	out := make([]models.AuthorBaseStats, 0, len(order))
	for _, name := range order {
		st := byName[name]
		if st.TotalWords > 0 {
			st.PositivePercent = 100.0 * float64(st.TotalPositiveWords) / float64(st.TotalWords)
			st.NegativePercent = 100.0 * float64(st.TotalNegativeWords) / float64(st.TotalWords)
		}
		out = append(out, *st)
	}
	return out
}

// ExtremesForAuthor returns the author's posts with the highest and lowest raw
// score. The first post wins a tie. found is false when the author has no
// posts.
func ExtremesForAuthor(posts []models.Post, name string, pos, neg Set, stem textproc.StemFunc) (most, least models.LexiconScore, found bool) {
	for i := range posts {
		if posts[i].AuthorName != name {
			continue
		}
		score := ScoreLexiconOnly(&posts[i], pos, neg, stem)
		if !found {
			most, least, found = score, score, true
			continue
		}
		if score.RawScore > most.RawScore {
			most = score
		}
		if score.RawScore < least.RawScore {
			least = score
		}
	}
	return most, least, found
}

// ComputeTalkStats counts posts and words per author, in order of first
// appearance.
func ComputeTalkStats(posts []models.Post, stem textproc.StemFunc) []models.TalkStats {
	var order []string
	byName := make(map[string]*models.TalkStats)

	for i := range posts {
		p := &posts[i]
		st, ok := byName[p.AuthorName]
		if !ok {
			st = &models.TalkStats{Name: p.AuthorName}
			byName[p.AuthorName] = st
			order = append(order, p.AuthorName)
		}
		st.PostCount++
		st.TotalWords += textproc.Tokenize(p.Text, stem).Words()
	}

	out := make([]models.TalkStats, 0, len(order))
	for _, name := range order {
		st := byName[name]
		st.AvgWordsPerPost = float64(st.TotalWords) / float64(st.PostCount)
		out = append(out, *st)
	}
	return out
}

// MostTalkative picks the author with the most posts and the author with the
// highest average words per post. Ties go to the earlier entry.
func MostTalkative(stats []models.TalkStats) (mostPosts, wordiest models.TalkStats, ok bool) {
	if len(stats) == 0 {
		return models.TalkStats{}, models.TalkStats{}, false
	}
	mostPosts, wordiest = stats[0], stats[0]
	for _, s := range stats[1:] {
		if s.PostCount > mostPosts.PostCount {
			mostPosts = s
		}
		if s.AvgWordsPerPost > wordiest.AvgWordsPerPost {
			wordiest = s
		}
	}
	return mostPosts, wordiest, true
}
