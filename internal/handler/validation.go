package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validationFields flattens validator errors into the field -> message map
// carried by the error envelope.
func validationFields(err error) map[string]string {
	fields := map[string]string{}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return fields
	}

	for _, fe := range vErrs {
		fields[fe.Field()] = validationMessage(fe)
	}

	return fields
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be %s or greater", fe.Param())
	case "lte":
		return fmt.Sprintf("must be %s or less", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return "is invalid"
	}
}
