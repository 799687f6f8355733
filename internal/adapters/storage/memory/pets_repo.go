package memory

import (
	"context"

	"pets-api/internal/domain/pets"
)

type petRepo struct {
	s *Store
}

func (r *petRepo) List(ctx context.Context, f pets.ListFilter) ([]pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, id := range r.s.petOrder {
		p := r.s.petsByID[id]
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.petsByID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p.ID = nextID(r.s.petIDs, r.s.petsByID)
	r.s.petOrder = append(r.s.petOrder, p.ID)
	r.s.petsByID[p.ID] = p
	return p, nil
}
