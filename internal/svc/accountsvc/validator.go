package accountsvc

import (
	"fmt"
	"net/mail"
	"unicode/utf8"

	"github.com/mkrupp/catcafe-web/internal/domain"
)

// fieldValidator checks a single form value. A nil result means the value is
// valid. Validators are pure: they inspect the value only and have no side
// effects, so they can be chained and applied per field independently.
type fieldValidator func(value string) *domain.FieldError

// runValidators applies the validators in order and returns the first
// failure, or nil when the value passes the whole chain.
func runValidators(value string, validators ...fieldValidator) *domain.FieldError {
	for _, validate := range validators {
		if fieldErr := validate(value); fieldErr != nil {
			return fieldErr
		}
	}

	return nil
}

func requiredValidator(field string) fieldValidator {
	return func(value string) *domain.FieldError {
		if value == "" {
			return &domain.FieldError{Field: field, Message: "This field is required."}
		}

		return nil
	}
}

func maxLengthValidator(field string, maxLen int) fieldValidator {
	return func(value string) *domain.FieldError {
		if utf8.RuneCountInString(value) > maxLen {
			return &domain.FieldError{
				Field:   field,
				Message: fmt.Sprintf("Must be at most %d characters long.", maxLen),
			}
		}

		return nil
	}
}

func lengthRangeValidator(field string, minLen, maxLen int) fieldValidator {
	return func(value string) *domain.FieldError {
		if n := utf8.RuneCountInString(value); n < minLen || n > maxLen {
			return &domain.FieldError{
				Field:   field,
				Message: fmt.Sprintf("Must be between %d and %d characters long.", minLen, maxLen),
			}
		}

		return nil
	}
}

func emailSyntaxValidator(field string) fieldValidator {
	return func(value string) *domain.FieldError {
		if _, err := mail.ParseAddress(value); err != nil {
			return &domain.FieldError{Field: field, Message: "Invalid email address."}
		}

		return nil
	}
}
