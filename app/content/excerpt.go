package content

import (
	"regexp"
	"strings"
)

const DefaultExcerptLength = 160

var (
	codeBlockRe  = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRe = regexp.MustCompile("`[^`]+`")
	headerRe     = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	boldItalicRe = regexp.MustCompile(`\*{1,2}([^*]+)\*{1,2}`)
	underscoreRe = regexp.MustCompile(`_{1,2}([^_]+)_{1,2}`)
	imageRe      = regexp.MustCompile(`!\[([^\]]*)\]\([^)]+\)`)
	linkRe       = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	listMarkerRe = regexp.MustCompile(`(?m)^[-*]\s+`)
	numListRe    = regexp.MustCompile(`(?m)^\d+\.\s+`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Excerpt derives a plain-text excerpt from a markdown body, for meta
// descriptions and feed summaries. Truncation prefers a word boundary and
// appends an ellipsis.
func Excerpt(body string, maxLength int) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	if maxLength <= 0 {
		maxLength = DefaultExcerptLength
	}

	text := codeBlockRe.ReplaceAllString(body, " ")
	text = inlineCodeRe.ReplaceAllString(text, " ")
	text = headerRe.ReplaceAllString(text, " ")
	text = boldItalicRe.ReplaceAllString(text, "$1")
	text = underscoreRe.ReplaceAllString(text, "$1")
	// Images before links: the image syntax contains the link syntax
	text = imageRe.ReplaceAllString(text, "$1")
	text = linkRe.ReplaceAllString(text, "$1")
	text = listMarkerRe.ReplaceAllString(text, " ")
	text = numListRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	if len(text) <= maxLength {
		return text
	}

	cut := strings.LastIndex(text[:maxLength-3], " ")
	end := maxLength - 3
	if cut > maxLength/2 {
		end = cut
	}
	return strings.TrimSpace(text[:end]) + "..."
}
