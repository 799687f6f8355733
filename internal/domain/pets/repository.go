package pets

import "context"

type Repository interface {
	// List devuelve mascotas en orden de inserción, filtradas por f.
	List(ctx context.Context, f ListFilter) ([]Pet, error)
	GetByID(ctx context.Context, id string) (Pet, error)

	// Create asigna el ID y devuelve el registro guardado.
	Create(ctx context.Context, p Pet) (Pet, error)
}
