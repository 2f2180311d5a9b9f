package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"blogbackend/apperrors"
)

var validate = validator.New()

// ValidateStruct checks a request payload against its validate tags and
// returns a field-level ValidationError suitable for a 400 response.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verr := &apperrors.ValidationError{}
	for _, err := range err.(validator.ValidationErrors) {
		field := strings.ToLower(err.Field())
		tag := err.Tag()
		param := err.Param()

		switch tag {
		case "required":
			verr.Add(field, field+" is required")
		case "min":
			verr.Add(field, field+" must be at least "+param+" characters")
		case "max":
			verr.Add(field, field+" must be at most "+param+" characters")
		case "email":
			verr.Add(field, field+" must be a valid email")
		case "oneof":
			verr.Add(field, field+" must be one of: "+param)
		default:
			verr.Add(field, field+" is invalid")
		}
	}

	return verr
}
