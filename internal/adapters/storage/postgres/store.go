package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"pets-api/internal/domain/pets"
	"pets-api/internal/domain/users"
	"pets-api/internal/platform/ids"
)

// Store implementa los repositorios sobre Postgres.
// Los ids salen de los mismos generadores que el store en memoria; asume un único
// proceso escritor.
type Store struct {
	db *sql.DB

	// mu serializa la generación de ids con el insert correspondiente.
	mu      sync.Mutex
	userIDs ids.Generator
	petIDs  ids.Generator
}

func NewStore(ctx context.Context, db *sql.DB, userIDs, petIDs ids.Generator) (*Store, error) {
	if userIDs == nil {
		userIDs = ids.NewSequence("user")
	}
	if petIDs == nil {
		petIDs = ids.NewSequence("pet")
	}
	s := &Store{db: db, userIDs: userIDs, petIDs: petIDs}

	if err := s.observe(ctx, `SELECT user_id FROM users`, userIDs); err != nil {
		return nil, err
	}
	if err := s.observe(ctx, `SELECT pet_id FROM pets`, petIDs); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) Users() users.Repository { return &UsersRepo{s: s} }
func (s *Store) Pets() pets.Repository   { return &PetsRepo{s: s} }

// ReplaceAll vacía ambas tablas y reinserta en una sola transacción.
func (s *Store) ReplaceAll(ctx context.Context, us []users.User, ps []pets.Pet) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `TRUNCATE users, pets RESTART IDENTITY`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}
	for _, u := range us {
		if err = insertUser(ctx, tx, u); err != nil {
			return err
		}
	}
	for _, p := range ps {
		if err = insertPet(ctx, tx, p); err != nil {
			return err
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	s.userIDs.Reset()
	for _, u := range us {
		s.userIDs.Observe(u.ID)
	}
	s.petIDs.Reset()
	for _, p := range ps {
		s.petIDs.Observe(p.ID)
	}
	return nil
}

func (s *Store) observe(ctx context.Context, query string, gen ids.Generator) error {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("load ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("scan id: %w", err)
		}
		gen.Observe(id)
	}
	return rows.Err()
}

// execer cubre *sql.DB y *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
