package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pets-api/internal/domain/pets"
)

type PetsRepo struct {
	s *Store
}

const petColumns = `pet_id, name, species, breed, image, lat, long, description, fun_fact, age`

func (r *PetsRepo) List(ctx context.Context, f pets.ListFilter) ([]pets.Pet, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if f.Species == "" {
		rows, err = r.s.db.QueryContext(ctx,
			`SELECT `+petColumns+` FROM pets ORDER BY seq ASC`)
	} else {
		rows, err = r.s.db.QueryContext(ctx,
			`SELECT `+petColumns+` FROM pets WHERE species = $1 ORDER BY seq ASC`, f.Species)
	}
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	row := r.s.db.QueryRowContext(ctx,
		`SELECT `+petColumns+` FROM pets WHERE pet_id = $1`, id)

	p, err := scanPet(row)
	if errors.Is(err, sql.ErrNoRows) {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, err
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for {
		p.ID = r.s.petIDs.Next()
		if _, err := r.GetByID(ctx, p.ID); errors.Is(err, pets.ErrNotFound) {
			break
		} else if err != nil {
			return pets.Pet{}, err
		}
	}

	if err := insertPet(ctx, r.s.db, p); err != nil {
		return pets.Pet{}, err
	}
	return p, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPet(row scanner) (pets.Pet, error) {
	var p pets.Pet
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Species,
		&p.Breed,
		&p.Image,
		&p.Lat,
		&p.Long,
		&p.Desc,
		&p.FunFact,
		&p.Age,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return pets.Pet{}, err
	}
	if err != nil {
		return pets.Pet{}, fmt.Errorf("scan pet: %w", err)
	}
	return p, nil
}

func insertPet(ctx context.Context, db execer, p pets.Pet) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO pets (`+petColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		p.ID,
		p.Name,
		p.Species,
		p.Breed,
		p.Image,
		p.Lat,
		p.Long,
		p.Desc,
		p.FunFact,
		p.Age,
	)
	if err != nil {
		return fmt.Errorf("insert pet %s: %w", p.ID, err)
	}
	return nil
}
