package validator

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

const (
	maxSellerIDLength   = 64
	maxStatusTextLength = 200
)

var isValidSellerID = regexp.MustCompile(`^[A-Za-z0-9._-]+$`).MatchString

func ValidateString(value string, minLength int, maxLength int) error {
	n := utf8.RuneCountInString(value)
	if n < minLength || n > maxLength {
		return fmt.Errorf("must contain from %d to %d characters", minLength, maxLength)
	}

	return nil
}

func ValidateSellerID(value string) error {
	if err := ValidateString(value, 1, maxSellerIDLength); err != nil {
		return err
	}

	if !isValidSellerID(value) {
		return fmt.Errorf("must contain only letters, digits, dots, dashes or underscores")
	}

	return nil
}

// ValidateStatusText bounds a raw status string. Empty is allowed: an empty
// side means "no opinion".
func ValidateStatusText(value string) error {
	return ValidateString(value, 0, maxStatusTextLength)
}

func ValidateLimit(value int32, maxValue int32) error {
	if value < 1 || value > maxValue {
		return fmt.Errorf("must be between 1 and %d", maxValue)
	}

	return nil
}
