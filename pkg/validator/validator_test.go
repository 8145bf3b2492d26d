package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paidform/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("no failures returns nil", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.RequiredString("name", "Ana"),
			validator.Email("email", "ana@x.com"),
		)
		require.NoError(t, err)
	})

	t.Run("collects every failure", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.RequiredString("name", "   "),
			validator.Email("email", "not-an-email"),
			validator.OneOf("grade", "Grade 12", "A", "B"),
		)
		require.Error(t, err)
		require.True(t, validator.IsValidationError(err))

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 3)
		assert.Equal(t, validator.CodeRequired, errs.GetErrors("name")[0].Code)
		assert.Equal(t, validator.CodeInvalidFormat, errs.GetErrors("email")[0].Code)
		assert.Equal(t, validator.CodeInvalidChoice, errs.GetErrors("grade")[0].Code)
	})
}

func TestEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		valid bool
	}{
		{"ana@x.com", true},
		{"first.last+tag@sub.example.org", true},
		{"", true},
		{"ana", false},
		{"ana@", false},
		{"@x.com", false},
		{"ana@localhost", false},
		{"ana @x.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			err := validator.Apply(validator.Email("email", tt.value))
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestOneOf(t *testing.T) {
	t.Parallel()

	allowed := []string{"Standard 1–7 (PSLE)", "Form 1–3 (JCE)"}

	require.NoError(t, validator.Apply(validator.OneOf("grade", "Form 1–3 (JCE)", allowed...)))
	require.Error(t, validator.Apply(validator.OneOf("grade", "form 1–3 (jce)", allowed...)))
	require.Error(t, validator.Apply(validator.OneOf("grade", "", allowed...)))

	rule := validator.OneOf("grade", "x", allowed...)
	assert.Equal(t, "validation.one_of", rule.Error.TranslationKey)
	assert.Equal(t, "Standard 1–7 (PSLE), Form 1–3 (JCE)", rule.Error.TranslationValues["choices"])
}

func TestLengthRules(t *testing.T) {
	t.Parallel()

	require.NoError(t, validator.Apply(validator.MinLenString("name", "Ana", 3)))
	require.Error(t, validator.Apply(validator.MinLenString("name", "An", 3)))
	require.NoError(t, validator.Apply(validator.MaxLenString("name", "Ñandú", 5)))
	require.Error(t, validator.Apply(validator.MaxLenString("name", strings.Repeat("a", 6), 5)))
}

func TestValidationErrors_Helpers(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{
		{Field: "email", Message: "is required"},
		{Field: "email", Message: "is not a valid email address"},
		{Field: "name", Message: "is required"},
	}

	assert.False(t, errs.IsEmpty())
	assert.True(t, errs.Has("email"))
	assert.False(t, errs.Has("grade"))
	assert.Equal(t, []string{"is required", "is not a valid email address"}, errs.Get("email"))
	assert.Equal(t, "is required", errs.First("email"))
	assert.Empty(t, errs.First("grade"))
	assert.Equal(t, map[string]string{"email": "is required", "name": "is required"}, errs.Fields())
	assert.Contains(t, errs.Error(), "name: is required")

	var empty validator.ValidationErrors
	assert.True(t, empty.IsEmpty())
	assert.Nil(t, validator.ExtractValidationErrors(assert.AnError))
}

func TestValidationErrors_Translate(t *testing.T) {
	t.Parallel()

	translate := func(key string, values map[string]any) string {
		if key == "validation.required" {
			return "The " + values["field"].(string) + " field is required."
		}
		return key
	}

	t.Run("rewrites messages with keys", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(validator.RequiredString("email", ""))
		errs := validator.ExtractValidationErrors(err)
		errs.Translate(translate)
		assert.Equal(t, "The email field is required.", errs[0].Message)
		assert.Equal(t, validator.CodeRequired, errs[0].Code)
	})

	t.Run("skips errors without key", func(t *testing.T) {
		t.Parallel()
		errs := validator.ValidationErrors{{Field: "name", Message: "original"}}
		errs.Translate(translate)
		assert.Equal(t, "original", errs[0].Message)
	})

	t.Run("nil fn is no-op", func(t *testing.T) {
		t.Parallel()
		errs := validator.ValidationErrors{{Field: "name", Message: "original", TranslationKey: "validation.required"}}
		errs.Translate(nil)
		assert.Equal(t, "original", errs[0].Message)
	})
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	type form struct {
		Name    string `json:"name" validate:"required;max:10"`
		Email   string `form:"email_address" validate:"required;email"`
		Grade   string `json:"grade" validate:"oneof:A|B"`
		Ignored string
	}

	t.Run("valid struct", func(t *testing.T) {
		t.Parallel()
		err := validator.ValidateStruct(&form{Name: "Ana", Email: "ana@x.com", Grade: "B"})
		require.NoError(t, err)
	})

	t.Run("field names come from tags", func(t *testing.T) {
		t.Parallel()
		err := validator.ValidateStruct(&form{Name: "", Email: "bad", Grade: "C"})
		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 3)
		assert.True(t, errs.Has("name"))
		assert.True(t, errs.Has("email_address"))
		assert.True(t, errs.Has("grade"))
	})

	t.Run("empty email reports required only", func(t *testing.T) {
		t.Parallel()
		err := validator.ValidateStruct(&form{Name: "Ana", Grade: "A"})
		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 1)
		assert.Equal(t, validator.CodeRequired, errs[0].Code)
	})

	t.Run("unknown rule", func(t *testing.T) {
		t.Parallel()
		type bad struct {
			Name string `validate:"uppercase"`
		}
		err := validator.ValidateStruct(&bad{})
		require.ErrorIs(t, err, validator.ErrInvalidRule)
		assert.False(t, validator.IsValidationError(err))
	})

	t.Run("non struct", func(t *testing.T) {
		t.Parallel()
		require.ErrorIs(t, validator.ValidateStruct("x"), validator.ErrInvalidRule)
	})
}
