package users

import "context"

type Repository interface {
	// List devuelve los usuarios en orden de inserción.
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)

	// Create asigna el ID y devuelve el registro guardado.
	Create(ctx context.Context, u User) (User, error)
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id string) error
}
