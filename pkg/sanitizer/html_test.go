package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paidform/pkg/sanitizer"
)

func TestStripHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "strips script injection", input: `<p>Hello</p><script>alert('xss')</script>`, expected: "Hello"},
		{name: "strips nested tags", input: `<div><p>nested <span>content</span></p></div>`, expected: "nested content"},
		{name: "strips event handlers", input: `<img src="x" onerror="alert('xss')">`, expected: ""},
		{name: "keeps link text", input: `<a href="javascript:alert('xss')">click</a>`, expected: "click"},
		{name: "decodes entities", input: "Tom & Jerry's", expected: "Tom & Jerry's"},
		{name: "keeps unicode", input: "Form 1–3 (JCE)", expected: "Form 1–3 (JCE)"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.StripHTML(tt.input))
		})
	}
}

func TestStringHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ana", sanitizer.Trim("  ana \n"))
	assert.Equal(t, "ana@x.com", sanitizer.Lower("Ana@X.com"))
	assert.Equal(t, "Math, Physics", sanitizer.CollapseSpaces(" Math,   Physics\t"))
	assert.Equal(t, "a\nb\nc", sanitizer.NormalizeNewlines("a\r\nb\rc"))
}

func TestSanitizeStruct(t *testing.T) {
	t.Parallel()

	type request struct {
		Name    string `sanitize:"strip,collapse"`
		Email   string `sanitize:"trim,lower"`
		Message string `sanitize:"newlines,strip,trim"`
		Count   int    `sanitize:"trim"`
		Raw     string
	}

	t.Run("applies tags in order", func(t *testing.T) {
		t.Parallel()
		req := request{
			Name:    "  <b>Ana</b>   Silva ",
			Email:   " Ana@X.COM ",
			Message: "Hi\r\n<script>x()</script>there ",
			Count:   3,
			Raw:     " <i>kept</i> ",
		}
		require.NoError(t, sanitizer.SanitizeStruct(&req))
		assert.Equal(t, "Ana Silva", req.Name)
		assert.Equal(t, "ana@x.com", req.Email)
		assert.Equal(t, "Hi\nthere", req.Message)
		assert.Equal(t, 3, req.Count)
		assert.Equal(t, " <i>kept</i> ", req.Raw)
	})

	t.Run("unknown sanitizer", func(t *testing.T) {
		t.Parallel()
		type bad struct {
			Name string `sanitize:"shout"`
		}
		err := sanitizer.SanitizeStruct(&bad{Name: "x"})
		require.ErrorIs(t, err, sanitizer.ErrUnknownSanitizer)
	})

	t.Run("requires pointer", func(t *testing.T) {
		t.Parallel()
		require.Error(t, sanitizer.SanitizeStruct(request{}))
	})
}
