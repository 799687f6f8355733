package pets

import (
	"context"
	"strings"
	"sync"
)

type Service struct {
	repo Repository
	mu   sync.Mutex
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput usa punteros en numéricos para distinguir "no enviado" de cero.
type CreateInput struct {
	Name    string
	Species string
	Breed   string
	Image   string
	Lat     *float64
	Long    *float64
	Desc    string
	FunFact string
	Age     *float64
}

// Pet arma el registro a guardar. Asume que in ya pasó ValidateNew.
func (in CreateInput) Pet() Pet {
	return Pet{
		Name:    in.Name,
		Species: in.Species,
		Breed:   in.Breed,
		Image:   in.Image,
		Lat:     deref(in.Lat),
		Long:    deref(in.Long),
		Desc:    in.Desc,
		FunFact: in.FunFact,
		Age:     deref(in.Age),
	}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if err := ValidateNew(in); err != nil {
		return Pet{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.Create(ctx, in.Pet())
}

func (s *Service) Get(ctx context.Context, id string) (Pet, error) {
	if strings.TrimSpace(id) == "" {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// List nunca falla por un filtro sin coincidencias: devuelve slice vacío.
func (s *Service) List(ctx context.Context, f ListFilter) ([]Pet, error) {
	return s.repo.List(ctx, f)
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
