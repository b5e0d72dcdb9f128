// Package utils holds input validation and sanitization shared by the use
// cases. Validation failures are *FieldError values that match ErrValidation.
package utils
