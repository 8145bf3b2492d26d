package validator

import (
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	playground "github.com/go-playground/validator/v10"
)

// Rule pairs a check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply evaluates rules in order and returns ValidationErrors for the failures.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, r := range rules {
		if r.Check != nil && !r.Check() {
			errs = append(errs, r.Error)
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

var (
	formatValidator     *playground.Validate
	formatValidatorOnce sync.Once
)

func formats() *playground.Validate {
	formatValidatorOnce.Do(func() {
		formatValidator = playground.New()
	})
	return formatValidator
}

// RequiredString fails when value is empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{
			Field:             field,
			Code:              CodeRequired,
			Message:           "is required",
			TranslationKey:    "validation.required",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// MinLenString fails when value has fewer than n characters.
func MinLenString(field, value string, n int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) >= n },
		Error: ValidationError{
			Field:             field,
			Code:              CodeMinLength,
			Message:           "is too short",
			TranslationKey:    "validation.min_length",
			TranslationValues: map[string]any{"field": field, "min": n},
		},
	}
}

// MaxLenString fails when value has more than n characters.
func MaxLenString(field, value string, n int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) <= n },
		Error: ValidationError{
			Field:             field,
			Code:              CodeMaxLength,
			Message:           "is too long",
			TranslationKey:    "validation.max_length",
			TranslationValues: map[string]any{"field": field, "max": n},
		},
	}
}

// Email fails when value is not a user@domain.tld address.
// Empty values pass; combine with RequiredString.
func Email(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return true
			}
			if err := formats().Var(value, "email"); err != nil {
				return false
			}
			// playground accepts dotless domains.
			at := strings.LastIndexByte(value, '@')
			return at > 0 && strings.Contains(value[at+1:], ".")
		},
		Error: ValidationError{
			Field:             field,
			Code:              CodeInvalidFormat,
			Message:           "is not a valid email address",
			TranslationKey:    "validation.email",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// OneOf fails when value is not exactly one of allowed.
func OneOf(field, value string, allowed ...string) Rule {
	return Rule{
		Check: func() bool { return slices.Contains(allowed, value) },
		Error: ValidationError{
			Field:             field,
			Code:              CodeInvalidChoice,
			Message:           "is not a valid choice",
			TranslationKey:    "validation.one_of",
			TranslationValues: map[string]any{"field": field, "choices": strings.Join(allowed, ", ")},
		},
	}
}
