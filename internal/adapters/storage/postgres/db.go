package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre un pool a Postgres usando pgx (database/sql) y verifica la conexión.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}

// seq preserva el orden de inserción; los ids de dominio son texto.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	seq      BIGSERIAL,
	user_id  TEXT PRIMARY KEY,
	username TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS pets (
	seq         BIGSERIAL,
	pet_id      TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	species     TEXT NOT NULL,
	breed       TEXT NOT NULL DEFAULT '',
	image       TEXT NOT NULL,
	lat         DOUBLE PRECISION NOT NULL,
	long        DOUBLE PRECISION NOT NULL,
	description TEXT NOT NULL,
	fun_fact    TEXT NOT NULL DEFAULT '',
	age         DOUBLE PRECISION NOT NULL
);

CREATE INDEX IF NOT EXISTS pets_species_idx ON pets (species);
`

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
