// Package validation holds the jellydator/validation rules shared by the request DTOs.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	validation "github.com/jellydator/validation"

	apperrors "github.com/jo4ovms/psychology-project/internal/errors"
)

// DateLayout is the calendar date format of birth dates and session dates.
const DateLayout = "2006-01-02"

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9 ()\-]{8,20}$`)
)

// WrapValidationError turns a validation.Errors value into an ErrInvalidInput so the
// HTTP layer answers 422.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

func stringRule(code, message string, valid func(string) bool) validation.StringRule {
	return validation.NewStringRuleWithError(valid, validation.NewError(code, message))
}

var (
	Email = stringRule("validation_email_format", "must be a valid email address", emailRegex.MatchString)

	Phone = stringRule("validation_phone_format", "must be a valid phone number", phoneRegex.MatchString)

	NotBlank = stringRule("validation_not_blank", "must not be blank", func(s string) bool {
		return strings.TrimSpace(s) != ""
	})

	NoWhitespace = stringRule("validation_no_whitespace", "must not contain leading or trailing whitespace",
		func(s string) bool {
			return s == strings.TrimSpace(s)
		})

	DateOnly = stringRule("validation_date_format", "must be a date in YYYY-MM-DD format", func(s string) bool {
		_, err := time.Parse(DateLayout, s)
		return err == nil
	})
)

// PasswordStrength checks a password against a minimum length and the enabled
// character classes. A nil pointer passes so the rule can guard optional fields.
type PasswordStrength struct {
	MinLength      int
	RequireUpper   bool
	RequireLower   bool
	RequireNumber  bool
	RequireSpecial bool
}

type charClass struct {
	enabled bool
	in      func(rune) bool
	code    string
	name    string
}

func (p PasswordStrength) classes() []charClass {
	return []charClass{
		{p.RequireUpper, unicode.IsUpper, "validation_password_uppercase", "uppercase letter"},
		{p.RequireLower, unicode.IsLower, "validation_password_lowercase", "lowercase letter"},
		{p.RequireNumber, unicode.IsNumber, "validation_password_number", "number"},
		{p.RequireSpecial, isSpecial, "validation_password_special", "special character"},
	}
}

func (p PasswordStrength) Validate(value any) error {
	value, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_password_strength", "password must be a string")
	}

	if len(s) < p.MinLength {
		return validation.NewError("validation_password_min_length",
			fmt.Sprintf("password must be at least %d characters", p.MinLength))
	}

	for _, class := range p.classes() {
		if class.enabled && !strings.ContainsFunc(s, class.in) {
			return validation.NewError(class.code, "password must contain at least one "+class.name)
		}
	}
	return nil
}

func isSpecial(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
