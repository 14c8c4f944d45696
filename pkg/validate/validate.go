package validate

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MinPasswordLength minimum password length for new accounts
const MinPasswordLength = 8

// Email reports whether s looks like an address: something@something.tld, no whitespace
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// StrongPassword enforces at least MinPasswordLength characters with at least one letter and one digit
func StrongPassword(s string) bool {
	if len([]rune(s)) < MinPasswordLength {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// NormalizeEmail trims and lower-cases an address for lookups
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// RegisterTags adds the custom tags to a validator instance:
//
//	swemail    Email
//	strongpwd  StrongPassword
func RegisterTags(v *validator.Validate) error {
	if err := v.RegisterValidation("swemail", func(fl validator.FieldLevel) bool {
		return Email(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("strongpwd", func(fl validator.FieldLevel) bool {
		return StrongPassword(fl.Field().String())
	})
}

// RegisterGinTags installs the custom tags on gin's default binding validator
func RegisterGinTags() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return RegisterTags(v)
}
