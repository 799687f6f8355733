package users

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField  = errors.New("missing required field")
	ErrUsernameTaken = errors.New("username taken")
	ErrNotFound      = errors.New("no user with that userId")
)

// FieldError indica qué campo requerido faltó. Matchea ErrMissingField con errors.Is.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingField, e.Field)
}

func (e *FieldError) Is(target error) bool {
	return target == ErrMissingField
}
