// file: internals/helpers/validate.go
package helper

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationErrors runs the shared validator on a request DTO and returns the
// per-field tag map, or nil when the DTO is valid. Callers render the result
// with JsonValidationError so rejections happen before any store call.
func ValidationErrors(req any) map[string][]string {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string][]string{"_": {"invalid"}}
	}
	fieldErrors := make(map[string][]string, len(ve))
	for _, fe := range ve {
		fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], fe.Tag())
	}
	return fieldErrors
}
