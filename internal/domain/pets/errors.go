package pets

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField = errors.New("missing required field")
	ErrNotFound     = errors.New("no pet with that petId")
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
