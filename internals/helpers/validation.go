// file: internals/helpers/validation.go
package helper

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate runs struct validation with the shared validator instance.
func Validate(s any) error {
	return validate.Struct(s)
}

// FieldErrorMap converts validator errors into the field-keyed message map
// the clients render inline. Keys are snake_case field names; messages use
// the "The <field> field is required." phrasing of the upstream contract.
func FieldErrorMap(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{"Invalid input."}
		return out
	}
	for _, fe := range ve {
		field := toSnakeCase(fe.Field())
		label := strings.ReplaceAll(field, "_", " ")
		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("The %s field is required.", label)
		case "email":
			msg = fmt.Sprintf("The %s field must be a valid email address.", label)
		case "min":
			msg = fmt.Sprintf("The %s field must be at least %s.", label, fe.Param())
		case "max":
			msg = fmt.Sprintf("The %s field may not be greater than %s.", label, fe.Param())
		case "oneof":
			msg = fmt.Sprintf("The selected %s is invalid.", label)
		case "uuid":
			msg = fmt.Sprintf("The %s field must be a valid identifier.", label)
		default:
			msg = fmt.Sprintf("The %s field is invalid.", label)
		}
		out[field] = append(out[field], msg)
	}
	return out
}

func toSnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			// boundary: lower→Upper, or Upper followed by lower (acronym end)
			if i > 0 && (unicode.IsLower(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1]) && unicode.IsUpper(runes[i-1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
