// Package pgstore implements the destination and booking collections on PostgreSQL.
package pgstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
)

type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	MigrationsDir   string
}

// Migrate applies pending goose migrations from dir.
func Migrate(dsn, dir string) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err = goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err = goose.Up(db, dir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}

// Open runs migrations, connects the pool and wraps the master connection for sqlx.
func Open(ctx context.Context, dsn string, opts Options) (*dbpg.DB, *sqlx.DB, error) {
	if err := Migrate(dsn, opts.MigrationsDir); err != nil {
		return nil, nil, fmt.Errorf("migrations: %w", err)
	}

	db, err := dbpg.New(dsn, nil, &dbpg.Options{
		MaxOpenConns: opts.MaxOpenConns,
		MaxIdleConns: opts.MaxIdleConns,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(opts.ConnMaxLifetime)

	if err = db.Master.PingContext(ctx); err != nil {
		db.Master.Close()
		return nil, nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, sqlx.NewDb(db.Master, "postgres"), nil
}
