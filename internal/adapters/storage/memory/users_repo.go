package memory

import (
	"context"

	"pets-api/internal/domain/users"
)

type userRepo struct {
	s *Store
}

func (r *userRepo) List(ctx context.Context) ([]users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]users.User, 0, len(r.s.userOrder))
	for _, id := range r.s.userOrder {
		out = append(out, r.s.usersByID[id])
	}
	return out, nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.usersByID[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *userRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.usersByID {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *userRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u.ID = nextID(r.s.userIDs, r.s.usersByID)
	r.s.userOrder = append(r.s.userOrder, u.ID)
	r.s.usersByID[u.ID] = u
	return u, nil
}

func (r *userRepo) Update(ctx context.Context, u users.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.usersByID[u.ID]; !exists {
		return users.ErrNotFound
	}
	r.s.usersByID[u.ID] = u
	return nil
}

func (r *userRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.usersByID[id]; !exists {
		return users.ErrNotFound
	}
	delete(r.s.usersByID, id)
	r.s.userOrder = removeID(r.s.userOrder, id)
	return nil
}
