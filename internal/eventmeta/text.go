package eventmeta

import (
	"html"
	"regexp"
	"strings"
)

// emoji matches a single pictograph with an optional variation selector.
const emoji = `[\x{1F100}-\x{1F1FF}\x{1F300}-\x{1FAFF}\x{2600}-\x{27BF}]\x{FE0F}?`

// lineBreak matches the things that separate lines in calendar descriptions:
// <br>, paragraph and div boundaries, and newlines.
const lineBreak = `<br\s*/?>|</?(?:p|div)\b[^>]*>|\r?\n`

var (
	tagRe       = regexp.MustCompile(`(?s)<[^>]*>|<[A-Za-z/!][^<>]*$`)
	lineBreakRe = regexp.MustCompile(`(?i)` + lineBreak)
	leadEmojiRe = regexp.MustCompile(`^(?:` + emoji + `[ \t]*)+`)
)

// plainText strips tags, decodes entities and normalises non-breaking spaces.
func plainText(s string) string {
	s = tagRe.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return strings.NewReplacer("\u00a0", " ", "\u202f", " ").Replace(s)
}

// firstLine returns the trimmed first non-empty line of s.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

// annotationValue turns a raw captured annotation into its value: tags stripped,
// trimmed, first line only. Empty and the literal "null" are absent.
func annotationValue(raw string) *string {
	return presentValue(firstLine(plainText(lineBreakRe.ReplaceAllString(raw, "\n"))))
}

// presentValue returns nil for an empty or "null" value.
func presentValue(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, "null") {
		return nil
	}
	return &v
}

// bareLine is the plain-text view of one line without its leading pictographs.
func bareLine(line string) string {
	return leadEmojiRe.ReplaceAllString(strings.TrimSpace(plainText(line)), "")
}

func splitLines(s string) []string {
	return lineBreakRe.Split(s, -1)
}

func containsFold(s, substr string) bool {
	if substr == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
