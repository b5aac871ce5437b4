// Package sql implements a SQL database.
package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jacobpatterson1549/selene-mahjongg/db"
)

type (
	// Database is a SQL db.Database with additional configuration
	Database struct {
		DB *sql.DB
		db.Config
	}

	// DatabaseConfig contains the properties to open a SQL database.
	DatabaseConfig struct {
		// DriverName is the name of the registered SQL driver, such as "postgres".
		DriverName string
		// DatabaseURL is the connection string of the database.
		DatabaseURL string
		// QueryPeriod is the amount of time that any database action can take before it should timeout.
		QueryPeriod time.Duration
	}

	// Query is a message that is sent to the database.
	Query interface {
		// Cmd is the injection-safe message to send to the database.
		Cmd() string
		// Args are the user-provided properties of the messages which should be escaped.
		Args() []interface{}
	}
)

// ErrNoRows is returned by Query when there are no rows to scan.
var ErrNoRows = sql.ErrNoRows

// NewDatabase opens a database for the config.
func (cfg DatabaseConfig) NewDatabase() (*Database, error) {
	dbCfg := db.Config{
		QueryPeriod: cfg.QueryPeriod,
	}
	if err := dbCfg.Validate(); err != nil {
		return nil, fmt.Errorf("creating sql database: validation: %w", err)
	}
	sqlDB, err := sql.Open(cfg.DriverName, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("opening %v database: %w", cfg.DriverName, err)
	}
	d := Database{
		DB:     sqlDB,
		Config: dbCfg,
	}
	return &d, nil
}

// Setup runs each setup file as a raw query in a single transaction.
func (db Database) Setup(ctx context.Context, files []io.Reader) error {
	queries := make([]Query, 0, len(files))
	for i, f := range files {
		b, err := io.ReadAll(f)
		if err != nil {
			return fmt.Errorf("reading sql setup file %v: %w", i, err)
		}
		queries = append(queries, RawQuery(b))
	}
	if err := db.Exec(ctx, queries...); err != nil {
		return fmt.Errorf("running setup queries: %w", err)
	}
	return nil
}

// Query reads a single row into dest.  sql.ErrNoRows is returned unwrapped.
func (db Database) Query(ctx context.Context, q Query, dest ...interface{}) error {
	ctx, cancelFunc := context.WithTimeout(ctx, db.QueryPeriod)
	defer cancelFunc()
	err := db.DB.QueryRowContext(ctx, q.Cmd(), q.Args()...).Scan(dest...)
	switch {
	case err == nil, errors.Is(err, sql.ErrNoRows):
		return err
	default:
		return fmt.Errorf("scanning row: %w", err)
	}
}

// Exec runs the queries in one transaction.  The transaction is rolled back if any query fails
// or if an ExecFunction does not change exactly one row.
func (db Database) Exec(ctx context.Context, queries ...Query) error {
	ctx, cancelFunc := context.WithTimeout(ctx, db.QueryPeriod)
	defer cancelFunc()
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	for i, q := range queries {
		if err := execTx(ctx, tx, q); err != nil {
			err = fmt.Errorf("query %v: %w", i, err)
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				return fmt.Errorf("rolling back after %v: %w", err, rollbackErr)
			}
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// execTx runs a single query in the transaction.
func execTx(ctx context.Context, tx *sql.Tx, q Query) error {
	result, err := tx.ExecContext(ctx, q.Cmd(), q.Args()...)
	if err != nil {
		return err
	}
	f, ok := q.(ExecFunction)
	if !ok {
		return nil
	}
	n, err := result.RowsAffected()
	switch {
	case err != nil:
		return fmt.Errorf("counting rows changed by %v: %w", f.name, err)
	case n != 1:
		return fmt.Errorf("%v changed %d rows, wanted 1", f.name, n)
	}
	return nil
}

// Close closes the connections to the database.
func (db Database) Close() error {
	return db.DB.Close()
}
