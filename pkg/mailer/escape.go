package mailer

import (
	"strings"
	"unicode"
)

// markdownSpecial lists characters that markdown or inline HTML can
// interpret. Each is backslash-escaped by EscapeMarkdown.
const markdownSpecial = "\\`*_[]<>&!#|~"

// EscapeMarkdown makes user text safe to embed in a markdown template.
// The result renders as the literal input: no emphasis, links, headings,
// lists, code blocks or raw HTML. Line breaks are kept as hard breaks and
// blank lines are dropped, so the value stays inside its paragraph.
func EscapeMarkdown(s string) string {
	if s == "" {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimLeftFunc(line, unicode.IsSpace)
		if line == "" {
			continue
		}
		out = append(out, escapeLine(line))
	}
	return strings.Join(out, "\\\n")
}

func escapeLine(line string) string {
	var b strings.Builder
	b.Grow(len(line) + 8)

	// Block markers only matter at the start of a line.
	switch line[0] {
	case '-', '+', '=':
		b.WriteByte('\\')
	}
	digits := 0
	for digits < len(line) && line[digits] >= '0' && line[digits] <= '9' {
		digits++
	}
	for i, r := range line {
		if strings.ContainsRune(markdownSpecial, r) {
			b.WriteByte('\\')
		} else if digits > 0 && i == digits && (r == '.' || r == ')') {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
