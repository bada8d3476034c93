package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error reporting
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Struct validates a struct against its validate tags.
func Struct(s interface{}) error {
	return validate.Struct(s)
}

// First returns the JSON field name and failed tag of the first
// validation error. Fields are checked in declaration order, so the
// first error corresponds to the first offending field.
func First(err error) (field, tag string, ok bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "", "", false
	}
	return verrs[0].Field(), verrs[0].Tag(), true
}

// Var validates a single variable
func Var(field interface{}, tag string) error {
	return validate.Var(field, tag)
}
