package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ValidateStruct applies `validate` tags on the string fields of the struct
// pointed to by v. Rules are separated by ";" and take arguments after ":".
//
//	Name  string `json:"name" validate:"required;max:100"`
//	Email string `json:"email" validate:"required;email"`
//	Grade string `json:"grade" validate:"oneof:A|B|C"`
//
// The field name used in errors comes from the json tag, then the form tag,
// then the Go field name.
func ValidateStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return fmt.Errorf("%w: nil pointer", ErrInvalidRule)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: expected struct, got %s", ErrInvalidRule, rv.Kind())
	}

	rt := rv.Type()
	var rules []Rule
	for i := range rt.NumField() {
		sf := rt.Field(i)
		tag, ok := sf.Tag.Lookup("validate")
		if !ok || tag == "" || tag == "-" || !sf.IsExported() {
			continue
		}
		fv := rv.Field(i)
		if fv.Kind() != reflect.String {
			return fmt.Errorf("%w: field %s is not a string", ErrInvalidRule, sf.Name)
		}
		fieldRules, err := parseRules(fieldName(sf), fv.String(), tag)
		if err != nil {
			return err
		}
		rules = append(rules, fieldRules...)
	}
	return Apply(rules...)
}

func parseRules(field, value, tag string) ([]Rule, error) {
	var rules []Rule
	for raw := range strings.SplitSeq(tag, ";") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		name, arg, _ := strings.Cut(raw, ":")
		switch name {
		case "required":
			rules = append(rules, RequiredString(field, value))
		case "email":
			rules = append(rules, Email(field, value))
		case "oneof":
			rules = append(rules, OneOf(field, value, strings.Split(arg, "|")...))
		case "min", "max":
			n, err := strconv.Atoi(arg)
			if err != nil {
				return nil, fmt.Errorf("%w: %s on %s: %w", ErrInvalidRule, raw, field, err)
			}
			if name == "min" {
				rules = append(rules, MinLenString(field, value, n))
			} else {
				rules = append(rules, MaxLenString(field, value, n))
			}
		default:
			return nil, fmt.Errorf("%w: unknown rule %q on %s", ErrInvalidRule, name, field)
		}
	}
	return rules, nil
}

func fieldName(sf reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		if tag := sf.Tag.Get(key); tag != "" && tag != "-" {
			if name, _, _ := strings.Cut(tag, ","); name != "" {
				return name
			}
		}
	}
	return sf.Name
}
