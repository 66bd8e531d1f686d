// Package validate contains custom validation functions
package validate

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	passwordvalidator "github.com/wagslane/go-password-validator"
)

// PasswordMinEntropy is the configurable strength bar every new password must clear
const PasswordMinEntropy = 60

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email is a custom validation function that is used to validate normalized email addresses
func Email(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

// Password is custom validation function that is used to validate passwords
func Password(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	err := passwordvalidator.Validate(password, PasswordMinEntropy)
	return err == nil
}

// PasswordStrength reports wether the given password clears the strength policy
func PasswordStrength(password string) bool {
	return passwordvalidator.Validate(password, PasswordMinEntropy) == nil
}
