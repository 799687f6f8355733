package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pets-api/internal/domain/users"
)

type UsersRepo struct {
	s *Store
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	rows, err := r.s.db.QueryContext(ctx, `SELECT user_id, username FROM users ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		var u users.User
		if err := rows.Scan(&u.ID, &u.Username); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	var u users.User
	err := r.s.db.QueryRowContext(ctx,
		`SELECT user_id, username FROM users WHERE user_id = $1`, id,
	).Scan(&u.ID, &u.Username)
	if errors.Is(err, sql.ErrNoRows) {
		return users.User{}, users.ErrNotFound
	}
	if err != nil {
		return users.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (r *UsersRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}
	return exists, nil
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for {
		u.ID = r.s.userIDs.Next()
		if _, err := r.GetByID(ctx, u.ID); errors.Is(err, users.ErrNotFound) {
			break
		} else if err != nil {
			return users.User{}, err
		}
	}

	if err := insertUser(ctx, r.s.db, u); err != nil {
		return users.User{}, err
	}
	return u, nil
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	res, err := r.s.db.ExecContext(ctx,
		`UPDATE users SET username = $2 WHERE user_id = $1`, u.ID, u.Username)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) Delete(ctx context.Context, id string) error {
	res, err := r.s.db.ExecContext(ctx, `DELETE FROM users WHERE user_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func insertUser(ctx context.Context, db execer, u users.User) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO users (user_id, username) VALUES ($1, $2)`, u.ID, u.Username)
	if err != nil {
		return fmt.Errorf("insert user %s: %w", u.ID, err)
	}
	return nil
}
