package models

// Post is a single social-media record as read from the source file.
// It is never mutated once ingested.
type Post struct {
	ID         string
	AuthorID   string
	Timestamp  string
	AuthorName string
	Text       string
}
