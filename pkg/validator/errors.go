package validator

import (
	"errors"
	"strings"
)

// Error codes carried by ValidationError.Code.
const (
	CodeRequired      = "required"
	CodeInvalidFormat = "invalid_format"
	CodeInvalidChoice = "invalid_choice"
	CodeMinLength     = "min_length"
	CodeMaxLength     = "max_length"
)

// ErrInvalidRule is returned by ValidateStruct for a malformed validate tag.
var ErrInvalidRule = errors.New("validator: invalid rule")

// ValidationError describes a single failed rule for a field.
type ValidationError struct {
	TranslationValues map[string]any
	Field             string
	Code              string
	Message           string
	TranslationKey    string
}

// ValidationErrors is the field-indexed result of a failed validation.
type ValidationErrors []ValidationError

// TranslateFunc resolves a translation key into a message.
type TranslateFunc func(key string, values map[string]any) string

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e))
	for _, ve := range e {
		parts = append(parts, ve.Field+": "+ve.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// IsEmpty reports whether there are no errors.
func (e ValidationErrors) IsEmpty() bool {
	return len(e) == 0
}

// Has reports whether the field has at least one error.
func (e ValidationErrors) Has(field string) bool {
	for _, ve := range e {
		if ve.Field == field {
			return true
		}
	}
	return false
}

// Get returns all messages for the field.
func (e ValidationErrors) Get(field string) []string {
	var msgs []string
	for _, ve := range e {
		if ve.Field == field {
			msgs = append(msgs, ve.Message)
		}
	}
	return msgs
}

// GetErrors returns all errors for the field.
func (e ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, ve := range e {
		if ve.Field == field {
			errs = append(errs, ve)
		}
	}
	return errs
}

// First returns the first message for the field, or an empty string.
func (e ValidationErrors) First(field string) string {
	for _, ve := range e {
		if ve.Field == field {
			return ve.Message
		}
	}
	return ""
}

// Fields maps each failing field to its first message.
func (e ValidationErrors) Fields() map[string]string {
	out := make(map[string]string, len(e))
	for _, ve := range e {
		if _, ok := out[ve.Field]; !ok {
			out[ve.Field] = ve.Message
		}
	}
	return out
}

// Translate rewrites messages in place using fn.
// Errors without a TranslationKey keep their message. A nil fn is a no-op.
func (e ValidationErrors) Translate(fn TranslateFunc) {
	if fn == nil {
		return
	}
	for i := range e {
		if e[i].TranslationKey == "" {
			continue
		}
		e[i].Message = fn(e[i].TranslationKey, e[i].TranslationValues)
	}
}

// IsValidationError reports whether err carries ValidationErrors.
func IsValidationError(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}

// ExtractValidationErrors returns the ValidationErrors in err, or nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
