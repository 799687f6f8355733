package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"pets-api/internal/domain/pets"
	"pets-api/internal/domain/users"
)

//go:embed fixtures/default.yaml
var defaultFixture []byte

// Fixture describe el estado completo con el que se siembra el store.
// Las keys son las mismas que expone la API.
type Fixture struct {
	Users []UserRecord `yaml:"users" json:"users"`
	Pets  []PetRecord  `yaml:"pets" json:"pets"`
}

type UserRecord struct {
	UserID   string `yaml:"userId" json:"userId"`
	Username string `yaml:"username" json:"username"`
}

type PetRecord struct {
	PetID   string   `yaml:"petId" json:"petId"`
	Name    string   `yaml:"name" json:"name"`
	Species string   `yaml:"species" json:"species"`
	Breed   string   `yaml:"breed,omitempty" json:"breed,omitempty"`
	Image   string   `yaml:"image" json:"image"`
	Lat     *float64 `yaml:"lat" json:"lat"`
	Long    *float64 `yaml:"long" json:"long"`
	Desc    string   `yaml:"desc" json:"desc"`
	FunFact string   `yaml:"funFact,omitempty" json:"funFact,omitempty"`
	Age     *float64 `yaml:"age" json:"age"`
}

// Default devuelve el fixture embebido (5 users, 5 pets).
func Default() (Fixture, error) {
	return Parse(defaultFixture)
}

// Load lee un fixture YAML (o JSON) desde disco.
func Load(path string) (Fixture, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture: %w", err)
	}
	return Parse(b)
}

func Parse(b []byte) (Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(b, &f); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture: %w", err)
	}
	if err := f.Validate(); err != nil {
		return Fixture{}, err
	}
	return f, nil
}

// Validate aplica las mismas reglas que la API más unicidad de ids.
func (f Fixture) Validate() error {
	var errs []error

	userIDs := map[string]bool{}
	usernames := map[string]bool{}
	for i, u := range f.Users {
		switch {
		case strings.TrimSpace(u.UserID) == "":
			errs = append(errs, fmt.Errorf("users[%d]: userId required", i))
		case userIDs[u.UserID]:
			errs = append(errs, fmt.Errorf("users[%d]: duplicate userId %q", i, u.UserID))
		}
		userIDs[u.UserID] = true

		switch {
		case strings.TrimSpace(u.Username) == "":
			errs = append(errs, fmt.Errorf("users[%d]: %w", i, &users.FieldError{Field: "username"}))
		case usernames[u.Username]:
			errs = append(errs, fmt.Errorf("users[%d]: %w", i, users.ErrUsernameTaken))
		}
		usernames[u.Username] = true
	}

	petIDs := map[string]bool{}
	for i, p := range f.Pets {
		switch {
		case strings.TrimSpace(p.PetID) == "":
			errs = append(errs, fmt.Errorf("pets[%d]: petId required", i))
		case petIDs[p.PetID]:
			errs = append(errs, fmt.Errorf("pets[%d]: duplicate petId %q", i, p.PetID))
		}
		petIDs[p.PetID] = true

		if err := pets.ValidateNew(p.input()); err != nil {
			errs = append(errs, fmt.Errorf("pets[%d]: %w", i, err))
		}
	}

	return errors.Join(errs...)
}

func (f Fixture) domain() ([]users.User, []pets.Pet) {
	us := make([]users.User, 0, len(f.Users))
	for _, u := range f.Users {
		us = append(us, users.User{ID: u.UserID, Username: u.Username})
	}

	ps := make([]pets.Pet, 0, len(f.Pets))
	for _, r := range f.Pets {
		p := r.input().Pet()
		p.ID = r.PetID
		ps = append(ps, p)
	}
	return us, ps
}

func (r PetRecord) input() pets.CreateInput {
	return pets.CreateInput{
		Name:    r.Name,
		Species: r.Species,
		Breed:   r.Breed,
		Image:   r.Image,
		Lat:     r.Lat,
		Long:    r.Long,
		Desc:    r.Desc,
		FunFact: r.FunFact,
		Age:     r.Age,
	}
}
