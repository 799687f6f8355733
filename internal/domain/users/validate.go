package users

import (
	"context"
	"strings"
)

// UsernameChecker es la vista de solo lectura que necesita la validación.
type UsernameChecker interface {
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// ValidateNew revisa un alta contra el estado actual del store. No muta nada.
// La comparación de username es exacta (case-sensitive).
func ValidateNew(ctx context.Context, c UsernameChecker, in CreateInput) error {
	if strings.TrimSpace(in.Username) == "" {
		return &FieldError{Field: "username"}
	}

	taken, err := c.UsernameExists(ctx, in.Username)
	if err != nil {
		return err
	}
	if taken {
		return ErrUsernameTaken
	}
	return nil
}
