package postgres

import (
	"embed"
	"errors"

	"user-management-api/internal/lib"
	"user-management-api/internal/lib/config"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// New opens the pool and verifies the connection.
func New(cfg config.Storage) (*sqlx.DB, error) {
	const op = "storage.postgres.New"

	db, err := sqlx.Connect("postgres", cfg.DSN)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

// Migrate brings the schema up to date. It is a no-op when nothing changed.
func Migrate(db *sqlx.DB) error {
	const op = "storage.postgres.Migrate"

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return lib.Err(op, err)
	}

	driver, err := pgmigrate.WithInstance(db.DB, &pgmigrate.Config{})
	if err != nil {
		return lib.Err(op, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return lib.Err(op, err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return lib.Err(op, err)
	}

	return nil
}
