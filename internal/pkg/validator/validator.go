package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// Patterns mirror the validators the marketplace schema enforces upstream,
// so bad seed rows are rejected before they ever reach the database.
var (
	caPostalRe     = regexp.MustCompile(`^[A-Za-z]\d[A-Za-z]\s?\d[A-Za-z]\d$`)
	provinceCodeRe = regexp.MustCompile(`^[A-Z]{2}$`)
	streetNumberRe = regexp.MustCompile(`^[0-9A-Za-z]+(?:-[0-9A-Za-z]+)?$`)
)

func init() {
	validate = validator.New()

	_ = validate.RegisterValidation("ca_postal", func(fl validator.FieldLevel) bool {
		return caPostalRe.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("province_code", func(fl validator.FieldLevel) bool {
		return provinceCodeRe.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("street_number", func(fl validator.FieldLevel) bool {
		return streetNumberRe.MatchString(fl.Field().String())
	})
}

// Validate checks a struct against its validation tags
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator returns the shared validator for custom configuration
func GetValidator() *validator.Validate {
	return validate
}
