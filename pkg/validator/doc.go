// Package validator provides rule-based validation with field-indexed errors.
//
// Rules are built with helpers such as RequiredString, Email and OneOf and
// evaluated together with Apply:
//
//	err := validator.Apply(
//		validator.RequiredString("name", req.Name),
//		validator.Email("email", req.Email),
//	)
//	if validator.IsValidationError(err) {
//		errs := validator.ExtractValidationErrors(err)
//		_ = errs.Get("email")
//	}
//
// Structs can declare rules with `validate` tags and be checked with
// ValidateStruct. Each error carries a Code (required, invalid_format,
// invalid_choice) and a TranslationKey so messages can be replaced with
// Translate.
package validator
