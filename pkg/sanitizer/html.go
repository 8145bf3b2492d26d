package sanitizer

import (
	"html"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = sync.OnceValue(bluemonday.StrictPolicy)

// StripHTML removes all markup and returns plain text.
// Entities are decoded so the result is raw text, not HTML.
func StripHTML(s string) string {
	if s == "" {
		return s
	}
	return html.UnescapeString(strictPolicy().Sanitize(s))
}
