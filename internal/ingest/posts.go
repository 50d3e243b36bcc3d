// Package ingest loads the posts file and the word lists from disk.
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spacesedan/sentiscore/internal/models"
)

const (
	postFieldSeparator = "|"
	postFieldCount     = 5
)

// ReadPosts parses a pipe-delimited posts stream. The first line is a header
// and is skipped. Rows that do not split into exactly five fields are dropped.
func ReadPosts(r io.Reader) ([]models.Post, error) {
	var posts []models.Post
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	header := true
	dropped := 0
	for sc.Scan() {
		if header {
			header = false
			continue
		}
		p, ok := parsePost(strings.TrimSuffix(sc.Text(), "\r"))
		if !ok {
			dropped++
			continue
		}
		posts = append(posts, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("[Ingest] failed to read posts: %w", err)
	}

	if dropped > 0 {
		slog.Debug("[Ingest] Dropped malformed rows", slog.Int("dropped", dropped))
	}
	return posts, nil
}

// LoadPosts opens path and reads it with ReadPosts.
func LoadPosts(path string) ([]models.Post, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("[Ingest] failed to open posts file: %w", err)
	}
	defer f.Close()

	posts, err := ReadPosts(f)
	if err != nil {
		return nil, err
	}
	slog.Info("[Ingest] Loaded posts", slog.String("path", path), slog.Int("count", len(posts)))
	return posts, nil
}

func parsePost(line string) (models.Post, bool) {
	fields := strings.Split(line, postFieldSeparator)
	// A trailing separator does not open an extra field.
	if n := len(fields); n > 1 && fields[n-1] == "" {
		fields = fields[:n-1]
	}
	if len(fields) != postFieldCount {
		return models.Post{}, false
	}
	return models.Post{
		ID:         fields[0],
		AuthorID:   fields[1],
		Timestamp:  fields[2],
		AuthorName: fields[3],
		Text:       fields[4],
	}, true
}
