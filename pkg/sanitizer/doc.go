// Package sanitizer cleans user input before validation.
//
// StripHTML removes all markup using bluemonday's strict policy.
// SanitizeStruct applies `sanitize` struct tags (trim, lower, collapse,
// newlines, strip) left to right.
package sanitizer
