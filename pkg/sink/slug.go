package sink

import (
	"fmt"
	"strings"
	"unicode"
)

// titleWords is how many leading words make up a slug, title, or link text.
const titleWords = 8

// previewLen is the maximum commit-message preview length in runes.
const previewLen = 50

// Slug derives a filesystem- and URL-safe identifier from the first eight
// whitespace-separated words of text. Each word is lowercased and stripped
// to alphanumerics and hyphens; words that end up empty are dropped; the
// rest are joined with hyphens. Slug is a pure function: identical text
// always yields an identical slug.
func Slug(text string) string {
	fields := strings.Fields(text)
	if len(fields) > titleWords {
		fields = fields[:titleWords]
	}

	words := make([]string, 0, len(fields))
	for _, f := range fields {
		var b strings.Builder
		for _, r := range f {
			if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
				b.WriteRune(unicode.ToLower(r))
			}
		}
		if b.Len() > 0 {
			words = append(words, b.String())
		}
	}
	return strings.Join(words, "-")
}

// Filename returns the output file name for an item: the slug plus the node
// ID, so retried publishes overwrite rather than duplicate.
func Filename(slug, nodeID string) string {
	return fmt.Sprintf("%s-%s.md", slug, nodeID)
}

// Title returns the first eight words of text joined with single spaces,
// used for front-matter titles and neighbor link text.
func Title(text string) string {
	fields := strings.Fields(text)
	if len(fields) > titleWords {
		fields = fields[:titleWords]
	}
	return strings.Join(fields, " ")
}

// preview truncates text to previewLen runes for commit messages, appending
// an ellipsis when anything was cut.
func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLen {
		return text
	}
	return string(runes[:previewLen]) + "..."
}

// escapeYAML escapes backslashes and double quotes for double-quoted YAML
// scalar values. Backslashes go first so quote escapes are not re-escaped.
func escapeYAML(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
