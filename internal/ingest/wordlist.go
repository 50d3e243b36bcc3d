package ingest

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ReadWordList returns one entry per non-empty line.
func ReadWordList(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("[Ingest] failed to read word list: %w", err)
	}
	return words, nil
}

// LoadWordList reads a word list file. A missing or unreadable file is not
// fatal: it is logged and an empty list is returned.
func LoadWordList(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		slog.Warn("[Ingest] Word list unavailable, continuing with an empty list",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil
	}
	defer f.Close()

	words, err := ReadWordList(f)
	if err != nil {
		slog.Warn("[Ingest] Word list unreadable, continuing with an empty list",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil
	}
	slog.Info("[Ingest] Loaded word list", slog.String("path", path), slog.Int("count", len(words)))
	return words
}
