package ingest

import (
	"html"
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"

	"github.com/spacesedan/sentiscore/internal/models"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]*>`)
)

// newRenderer skips smartypants, which would curl the apostrophe in "don't"
// and stop it matching the negators. Renderers hold state, so one per call.
func newRenderer() blackfriday.Renderer {
	return blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.UseXHTML,
	})
}

// RemoveLinks keeps the text of markdown links and drops bare URLs.
func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1")
	return urlPattern.ReplaceAllString(input, "")
}

// PlainText renders markdown, strips the resulting markup and links, and
// collapses whitespace.
func PlainText(input string) string {
	input = RemoveLinks(input)
	rendered := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions(), blackfriday.WithRenderer(newRenderer()))
	text := html.UnescapeString(tagPattern.ReplaceAllString(string(rendered), " "))
	return strings.Join(strings.Fields(text), " ")
}

// StripMarkdown rewrites every post text with PlainText in place.
func StripMarkdown(posts []models.Post) {
	for i := range posts {
		posts[i].Text = PlainText(posts[i].Text)
	}
}
