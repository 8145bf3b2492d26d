package mailer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yuin/goldmark"

	"github.com/dmitrymomot/paidform/pkg/mailer"
)

func TestEscapeMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain text untouched", input: "Ana", expected: "Ana"},
		{name: "email untouched", input: "ana@x.com", expected: "ana@x.com"},
		{name: "grade label untouched", input: "Form 1–3 (JCE)", expected: "Form 1–3 (JCE)"},
		{name: "comma list untouched", input: "Math, Physics", expected: "Math, Physics"},
		{name: "emphasis", input: "*bold* _it_", expected: `\*bold\* \_it\_`},
		{name: "html", input: "<b>x</b>", expected: `\<b\>x\</b\>`},
		{name: "link", input: "[a](http://x)", expected: `\[a\](http://x)`},
		{name: "heading", input: "# Title", expected: `\# Title`},
		{name: "list marker", input: "- item", expected: `\- item`},
		{name: "ordered list", input: "1. item", expected: `1\. item`},
		{name: "entity", input: "&amp;", expected: `\&amp;`},
		{name: "indented code", input: "    code", expected: "code"},
		{name: "newlines become hard breaks", input: "a\r\n\nb", expected: "a\\\nb"},
		{name: "backslash", input: `a\b`, expected: `a\\b`},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, mailer.EscapeMarkdown(tt.input))
		})
	}
}

func TestEscapeMarkdown_RendersLiterally(t *testing.T) {
	t.Parallel()

	inputs := []string{
		`<script>alert("x")</script>`,
		`<img src=x onerror=alert(1)>`,
		"[click](javascript:alert(1))",
		"**bold** and `code`",
		"line one\n---\nline two",
	}

	for _, in := range inputs {
		var out strings.Builder
		err := goldmark.Convert([]byte("**Field:** "+mailer.EscapeMarkdown(in)), &out)
		assert.NoError(t, err)

		html := out.String()
		assert.NotContains(t, html, "<script")
		assert.NotContains(t, html, "<img")
		assert.NotContains(t, html, "<a ")
		assert.NotContains(t, html, "<code>")
		assert.NotContains(t, html, "<h2>")
		assert.Equal(t, 1, strings.Count(html, "<strong>"), html)
	}
}
