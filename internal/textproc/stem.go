package textproc

import "github.com/kljensen/snowball/english"

// StemFunc maps an inflected, lower-cased word to its canonical root.
// Implementations must be deterministic and free of side effects.
type StemFunc func(word string) string

// Identity leaves words untouched.
func Identity(word string) string { return word }

// SnowballStem is the English Snowball (Porter2) stemmer. Stop words such as
// "not", "so" and "very" come back unchanged.
func SnowballStem(word string) string {
	return english.Stem(word, false)
}
