// Package validate wraps go-playground/validator to produce field-level
// error lists keyed by the JSON wire names of the submitted payload.
package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = newValidator() //nolint:gochecknoglobals

// FieldError describes a single failing field of a submitted payload.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())

	// report errors under the json name, not the Go field name
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0] //nolint:mnd
		if name == "-" {
			return ""
		}

		return name
	})

	return val
}

// Struct validates s and returns one FieldError per failing field,
// or nil when the payload is valid.
func Struct(s any) []FieldError {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors) //nolint:errorlint
	if !ok {
		return []FieldError{{Field: "", Reason: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:  fe.Field(),
			Reason: reasonFor(fe),
		})
	}

	return out
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must contain at least one entry"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
