package sanitizer

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrUnknownSanitizer is returned for an unrecognized sanitize tag value.
var ErrUnknownSanitizer = errors.New("sanitizer: unknown sanitizer")

var funcs = map[string]func(string) string{
	"trim":     Trim,
	"lower":    Lower,
	"collapse": CollapseSpaces,
	"newlines": NormalizeNewlines,
	"strip":    StripHTML,
}

// SanitizeStruct applies comma-separated `sanitize` tags to the string
// fields of the struct pointed to by v, left to right.
//
//	Email string `sanitize:"trim,lower"`
//	Body  string `sanitize:"strip,trim"`
func SanitizeStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("sanitizer: expected non-nil pointer, got %T", v)
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("sanitizer: expected struct, got %s", rv.Kind())
	}

	rt := rv.Type()
	for i := range rt.NumField() {
		sf := rt.Field(i)
		tag := sf.Tag.Get("sanitize")
		if tag == "" || tag == "-" || !sf.IsExported() {
			continue
		}
		fv := rv.Field(i)
		if fv.Kind() != reflect.String {
			continue
		}
		s := fv.String()
		for name := range strings.SplitSeq(tag, ",") {
			fn, ok := funcs[strings.TrimSpace(name)]
			if !ok {
				return fmt.Errorf("%w: %q on %s", ErrUnknownSanitizer, name, sf.Name)
			}
			s = fn(s)
		}
		fv.SetString(s)
	}
	return nil
}
