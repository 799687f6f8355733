package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pets-api/internal/domain/pets"
	"pets-api/internal/domain/users"
	"pets-api/internal/platform/ids"
)

// Store guarda ambas colecciones en memoria, en orden de inserción.
// Un solo lock cubre las dos para que ReplaceAll sea atómico frente a requests en vuelo.
type Store struct {
	mu sync.RWMutex

	userOrder []string
	usersByID map[string]users.User

	petOrder []string
	petsByID map[string]pets.Pet

	userIDs ids.Generator
	petIDs  ids.Generator
}

type Options struct {
	UserIDs ids.Generator // default: secuencia "user"
	PetIDs  ids.Generator // default: secuencia "pet"
}

func NewStore(opts Options) *Store {
	if opts.UserIDs == nil {
		opts.UserIDs = ids.NewSequence("user")
	}
	if opts.PetIDs == nil {
		opts.PetIDs = ids.NewSequence("pet")
	}
	return &Store{
		usersByID: make(map[string]users.User),
		petsByID:  make(map[string]pets.Pet),
		userIDs:   opts.UserIDs,
		petIDs:    opts.PetIDs,
	}
}

func (s *Store) Users() users.Repository { return &userRepo{s: s} }
func (s *Store) Pets() pets.Repository   { return &petRepo{s: s} }

// ReplaceAll reemplaza todo el contenido y reinicia los generadores de ids.
// No sobrevive nada del estado anterior.
func (s *Store) ReplaceAll(ctx context.Context, us []users.User, ps []pets.Pet) error {
	userOrder := make([]string, 0, len(us))
	usersByID := make(map[string]users.User, len(us))
	for _, u := range us {
		if strings.TrimSpace(u.ID) == "" {
			return errors.New("user id required")
		}
		if _, dup := usersByID[u.ID]; dup {
			return errors.New("duplicate user id " + u.ID)
		}
		userOrder = append(userOrder, u.ID)
		usersByID[u.ID] = u
	}

	petOrder := make([]string, 0, len(ps))
	petsByID := make(map[string]pets.Pet, len(ps))
	for _, p := range ps {
		if strings.TrimSpace(p.ID) == "" {
			return errors.New("pet id required")
		}
		if _, dup := petsByID[p.ID]; dup {
			return errors.New("duplicate pet id " + p.ID)
		}
		petOrder = append(petOrder, p.ID)
		petsByID[p.ID] = p
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.userOrder, s.usersByID = userOrder, usersByID
	s.petOrder, s.petsByID = petOrder, petsByID

	s.userIDs.Reset()
	for _, id := range userOrder {
		s.userIDs.Observe(id)
	}
	s.petIDs.Reset()
	for _, id := range petOrder {
		s.petIDs.Observe(id)
	}
	return nil
}

// nextID pide ids hasta encontrar uno libre. Requiere s.mu tomado.
func nextID[T any](gen ids.Generator, taken map[string]T) string {
	for {
		id := gen.Next()
		if _, exists := taken[id]; !exists {
			return id
		}
	}
}

func removeID(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i:i], order[i+1:]...)
		}
	}
	return order
}
