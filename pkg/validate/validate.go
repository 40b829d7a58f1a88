package validate

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Matches the loose local@domain.tld shape, nothing RFC-grade.
var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("uuid", func(fl validator.FieldLevel) bool {
		_, err := uuid.Parse(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("email", func(fl validator.FieldLevel) bool {
		return emailRe.MatchString(fl.Field().String())
	})
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// IsUUID reports whether s parses as a UUID, the check applied to
// path-supplied identifiers.
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
