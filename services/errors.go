package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound covers both rows that do not exist and rows outside the
// requesting user's ownership chain. Callers cannot tell the two apart.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a problem with one submitted field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
