package seed

import (
	"context"
	"fmt"

	"pets-api/internal/domain/pets"
	"pets-api/internal/domain/users"
)

// Target es cualquier store que pueda reemplazar su contenido completo de forma atómica.
type Target interface {
	ReplaceAll(ctx context.Context, us []users.User, ps []pets.Pet) error
}

// Seed valida f y reemplaza todo el contenido de t.
// Debe correr entre requests (arranque o setup de tests).
func Seed(ctx context.Context, t Target, f Fixture) error {
	if err := f.Validate(); err != nil {
		return fmt.Errorf("invalid fixture: %w", err)
	}

	us, ps := f.domain()
	if err := t.ReplaceAll(ctx, us, ps); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}
