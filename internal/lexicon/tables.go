package lexicon

// WeightedWord is a single fixed polarity override.
type WeightedWord struct {
	Word   string
	Weight float64
}

// Tables is the built-in data the builder folds into the lexicons. It is
// plain data so tests can hand in small fixtures.
type Tables struct {
	Negators     []string
	Intensifiers []string
	Downtoners   []string

	// Phrases maps space-separated word sequences (two or three words) to a weight.
	Phrases map[string]float64

	// Slang and emoji are matched on the lower-cased raw token, never stemmed.
	PositiveSlang []string
	NegativeSlang []string

	// StrongWords overwrite whatever the word lists assigned, in order.
	StrongWords []WeightedWord
}

// DefaultTables returns the stock English tables.
func DefaultTables() Tables {
	return Tables{
		Negators: []string{
			"not", "no", "never", "none", "nobody", "nothing",
			"neither", "nowhere", "hardly", "barely", "scarcely", "n't",
		},
		Intensifiers: []string{
			"very", "really", "extremely", "so", "super", "highly",
			"absolutely", "completely", "totally",
		},
		Downtoners: []string{
			"slightly", "somewhat", "kind", "bit", "little", "fairly",
			"rather", "quite",
		},
		Phrases: map[string]float64{
			"so much fun":     2.0,
			"great job":       1.5,
			"well done":       1.5,
			"thank you":       1.0,
			"looking forward": 1.5,

			"sick of":       -2.0,
			"waste of time": -2.0,
			"so tired of":   -1.5,
			"fed up":        -1.5,
			"not good":      -1.5,
		},
		PositiveSlang: []string{
			"lol", "lmao", "haha", "hehe", "yay", "awesome",
			"😂", "🤣", "😊", "😃", "😄", "❤️", "💙", "👍", "✨",
		},
		NegativeSlang: []string{
			"ugh", "omg", "wtf", "smh",
			"💀", "😡", "😭", "😢", "👎", "😠",
		},
		StrongWords: []WeightedWord{
			{"love", 2.0},
			{"amazing", 2.0},
			{"excellent", 2.0},
			{"hate", -2.0},
			{"terrible", -2.0},
			{"horrible", -2.0},
		},
	}
}
