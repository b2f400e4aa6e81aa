package convert

import (
	"regexp"
	"strconv"
	"strings"
)

// ParseHeadingStyle maps a style id to a markdown heading level.
// Recognizes "Heading1", "heading 2", etc., plus "Title" (level 1) and
// "Subtitle" (level 2).
func ParseHeadingStyle(style string) (int, bool) {
	lower := strings.ToLower(style)

	if rest, ok := strings.CutPrefix(lower, "heading"); ok {
		level, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil || level < 1 {
			return 0, false
		}
		return level, true
	}

	switch lower {
	case "title":
		return 1, true
	case "subtitle":
		return 2, true
	}
	return 0, false
}

// articleMarker matches Korean statute article numbering ("제1조").
// Paragraphs numbered this way are section headings, not list items.
var articleMarker = regexp.MustCompile(`^제\s*[0-9]+\s*조`)

func isArticleMarker(marker string) bool {
	return articleMarker.MatchString(marker)
}
