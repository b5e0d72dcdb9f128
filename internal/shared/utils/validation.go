package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// String length limits
const (
	MaxUsernameLength = 64
	MinUsernameLength = 3
	MaxPasswordLength = 128
	MinPasswordLength = 8
	MaxEmailLength    = 255
	MaxIDLength       = 128
	MaxNameLength     = 256
	MaxNotesLength    = 2048
	MaxPhoneLength    = 20
)

// Regular expressions for validation
var (
	// SafeIDPattern allows alphanumeric, hyphens, underscores
	SafeIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	// UsernamePattern allows alphanumeric, dots and underscores
	UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._]+$`)
	// EmailPattern is a basic email validation
	EmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	// PhonePattern accepts an optional leading + and digits, spaces or dashes
	PhonePattern = regexp.MustCompile(`^\+?[0-9][0-9 -]{5,}$`)
)

// ErrValidation matches every *FieldError via errors.Is.
var ErrValidation = errors.New("validation failed")

// FieldError reports one invalid input field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// Is lets callers test for ErrValidation.
func (e *FieldError) Is(target error) bool {
	return target == ErrValidation
}

func fieldError(field, format string, args ...any) error {
	return &FieldError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsBlank reports whether s is empty or only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidateString checks presence and length. Whitespace-only values count as
// empty.
func ValidateString(value, fieldName string, minLen, maxLen int, required bool) error {
	if IsBlank(value) {
		if required {
			return fieldError(fieldName, "%s is required", fieldName)
		}
		return nil
	}

	length := utf8.RuneCountInString(value)
	if length < minLen {
		return fieldError(fieldName, "%s must be at least %d characters", fieldName, minLen)
	}
	if length > maxLen {
		return fieldError(fieldName, "%s must not exceed %d characters", fieldName, maxLen)
	}

	if strings.Contains(value, "\x00") {
		return fieldError(fieldName, "%s contains invalid characters", fieldName)
	}

	return nil
}

// ValidateID validates a server-issued resource ID before it goes into a URL path.
func ValidateID(id, fieldName string) error {
	if err := ValidateString(id, fieldName, 1, MaxIDLength, true); err != nil {
		return err
	}
	if !SafeIDPattern.MatchString(id) {
		return fieldError(fieldName, "%s contains invalid characters (only alphanumeric, hyphens, and underscores allowed)", fieldName)
	}
	return nil
}

// ValidateUsername validates a username for registration
func ValidateUsername(username string) error {
	if err := ValidateString(username, "username", MinUsernameLength, MaxUsernameLength, true); err != nil {
		return err
	}
	if !UsernamePattern.MatchString(username) {
		return fieldError("username", "username contains invalid characters (only letters, digits, dots and underscores allowed)")
	}
	return nil
}

// ValidatePassword validates a password for registration
func ValidatePassword(password string) error {
	return ValidateString(password, "password", MinPasswordLength, MaxPasswordLength, true)
}

// ValidateEmail validates an email address
func ValidateEmail(email string) error {
	if err := ValidateString(email, "email", 0, MaxEmailLength, true); err != nil {
		return err
	}
	if !EmailPattern.MatchString(strings.TrimSpace(email)) {
		return fieldError("email", "invalid email format")
	}
	return nil
}

// ValidatePhone validates an optional phone number
func ValidatePhone(phone string) error {
	if err := ValidateString(phone, "phone number", 0, MaxPhoneLength, false); err != nil {
		return err
	}
	if !IsBlank(phone) && !PhonePattern.MatchString(strings.TrimSpace(phone)) {
		return fieldError("phone number", "invalid phone number format")
	}
	return nil
}

// ValidateName validates a required display name (list name, item name)
func ValidateName(name, fieldName string) error {
	return ValidateString(name, fieldName, 1, MaxNameLength, true)
}

// ValidateNotes validates optional free text
func ValidateNotes(notes string) error {
	return ValidateString(notes, "notes", 0, MaxNotesLength, false)
}
