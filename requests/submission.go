package requests

import (
	"strings"

	"github.com/dmitrymomot/paidform/pkg/validator"
)

// Accepted grade labels.
const (
	GradePrimary   = "Standard 1–7 (PSLE)"
	GradeJunior    = "Form 1–3 (JCE)"
	GradeSecondary = "Form 4–5 (BGCSE)"
)

// Grades lists the accepted grade labels in display order.
func Grades() []string {
	return []string{GradePrimary, GradeJunior, GradeSecondary}
}

// Submission is the request form, accepted as JSON or form values.
// Text is kept verbatim apart from whitespace; markup is escaped where it is
// rendered. Grade must match a label exactly.
type Submission struct {
	Name     string `json:"name"     form:"name"     sanitize:"collapse"      validate:"required;max:200"`
	Email    string `json:"email"    form:"email"    sanitize:"trim,lower"    validate:"required;email;max:254"`
	Message  string `json:"message"  form:"message"  sanitize:"newlines,trim" validate:"required;max:5000"`
	Grade    string `json:"grade"    form:"grade"                             validate:"oneof:Standard 1–7 (PSLE)|Form 1–3 (JCE)|Form 4–5 (BGCSE)"`
	Subjects string `json:"subjects" form:"subjects" sanitize:"collapse"      validate:"required;max:500"`
}

// Validate checks a Submission built without the binder, e.g. in tests.
func (s Submission) Validate() error {
	return validator.ValidateStruct(&s)
}

// messages maps field and rule to the text shown next to the input.
var messages = map[string]string{
	"name." + validator.CodeRequired:       "Name is required",
	"email." + validator.CodeRequired:      "Email is required",
	"email." + validator.CodeInvalidFormat: "Invalid email address",
	"message." + validator.CodeRequired:    "Message is required",
	"grade." + validator.CodeInvalidChoice: "Please select your grade",
	"subjects." + validator.CodeRequired:   "Subjects are required",
}

// Messages rewrites validation errors into form copy. Unknown pairs keep
// a "<Field> <message>" form.
func Messages(errs validator.ValidationErrors) validator.ValidationErrors {
	for i, e := range errs {
		if msg, ok := messages[e.Field+"."+e.Code]; ok {
			errs[i].Message = msg
			continue
		}
		if e.Field != "" {
			errs[i].Message = strings.ToUpper(e.Field[:1]) + e.Field[1:] + " " + e.Message
		}
	}
	return errs
}
