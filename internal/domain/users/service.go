package users

import (
	"context"
	"strings"
	"sync"
)

type Service struct {
	repo Repository

	// mu serializa validar+mutar para que unicidad de username e ids se mantengan
	// con requests concurrentes.
	mu sync.Mutex
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Username string
}

// UpdateInput usa punteros para PATCH: nil = no tocar.
type UpdateInput struct {
	Username *string
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (User, error) {
	if strings.TrimSpace(id) == "" {
		return User{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ValidateNew(ctx, s.repo, in); err != nil {
		return User{}, err
	}
	return s.repo.Create(ctx, User{Username: in.Username})
}

// Update aplica solo los campos presentes.
// No vuelve a chequear unicidad del username nuevo (solo se exige al crear).
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.Get(ctx, id)
	if err != nil {
		return User{}, err
	}

	if in.Username != nil {
		if strings.TrimSpace(*in.Username) == "" {
			return User{}, &FieldError{Field: "username"}
		}
		u.Username = *in.Username
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(id) == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}
