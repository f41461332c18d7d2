package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const (
	ErrRequired        = "is required"
	ErrInvalidEmail    = "must be a valid email address"
	ErrInvalidURL      = "must be a valid URL"
	ErrInvalidUsername = "must contain only letters, digits, '_', '.' or '-'"
	ErrInvalidMonth    = "must be a month in the form YYYY-MM"
	ErrInvalidPassword = "must be 8-25 characters long with an uppercase letter, a lowercase letter, a digit and one of !@#$%^&*"
	ErrInvalidValue    = "is invalid"
)

var (
	hasSpecialRgx = regexp.MustCompile(`[!@#$%^&*]`)
	usernameRgx   = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("password", validatePassword)
	validator.RegisterValidation("username", validateUsername)
	validator.RegisterValidation("yearmonth", validateYearMonth)

	return validator
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 || len(password) > 25 {
		return false
	}

	containsUpper, containsLower, containsDigit, containsSpecial := false, false, false, false

	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			containsUpper = true
		case unicode.IsLower(ch):
			containsLower = true
		case unicode.IsDigit(ch):
			containsDigit = true
		case hasSpecialRgx.MatchString(string(ch)):
			containsSpecial = true
		}
	}

	return containsUpper && containsLower && containsDigit && containsSpecial
}

func validateUsername(fl validator.FieldLevel) bool {
	return usernameRgx.MatchString(fl.Field().String())
}

// validateYearMonth accepts a calendar month such as 2024-03.
func validateYearMonth(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) != len("2006-01") {
		return false
	}

	_, err := time.Parse("2006-01", value)
	return err == nil
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "email":
		return ErrInvalidEmail
	case "url":
		return ErrInvalidURL
	case "min":
		return minMessage(err)
	case "max":
		return maxMessage(err)
	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())
	case "username":
		return ErrInvalidUsername
	case "yearmonth":
		return ErrInvalidMonth
	case "password":
		return ErrInvalidPassword
	default:
		return ErrInvalidValue
	}
}

func minMessage(err validator.FieldError) string {
	switch err.Kind() {
	case reflect.String:
		return fmt.Sprintf("must be at least %s characters long", err.Param())
	case reflect.Slice, reflect.Array, reflect.Map:
		return fmt.Sprintf("must contain at least %s items", err.Param())
	default:
		return fmt.Sprintf("must be at least %s", err.Param())
	}
}

func maxMessage(err validator.FieldError) string {
	switch err.Kind() {
	case reflect.String:
		return fmt.Sprintf("must be at most %s characters long", err.Param())
	case reflect.Slice, reflect.Array, reflect.Map:
		return fmt.Sprintf("must contain at most %s items", err.Param())
	default:
		return fmt.Sprintf("must be at most %s", err.Param())
	}
}
