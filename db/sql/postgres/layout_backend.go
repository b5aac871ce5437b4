// Package postgres stores layouts on a Postgres SQL Database.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jacobpatterson1549/selene-mahjongg/db/catalog"
	"github.com/jacobpatterson1549/selene-mahjongg/db/sql"
	"github.com/jacobpatterson1549/selene-mahjongg/game/layout"
	"github.com/lib/pq"
)

// uniqueViolation is the Postgres error code for inserting a duplicate key.
const uniqueViolation pq.ErrorCode = "23505"

type (
	// LayoutBackend manages layouts on a Postgres SQL Database.
	LayoutBackend struct {
		Database
	}

	// Database contains methods to create, read, update, and delete data.
	Database interface {
		// Setup initializes the database by reading the files.
		Setup(ctx context.Context, files []io.Reader) error
		// Query reads from the database without updating it.
		Query(ctx context.Context, q sql.Query, dest ...interface{}) error
		// Exec makes a change to existing data, creating/modifying/removing it.
		Exec(ctx context.Context, queries ...sql.Query) error
	}
)

// Create inserts the layout, storing the positions as json.
func (lb *LayoutBackend) Create(ctx context.Context, l layout.Layout) error {
	positions, err := json.Marshal(l.Positions)
	if err != nil {
		return fmt.Errorf("encoding positions: %w", err)
	}
	q := sql.NewExecFunction("layout_create", l.Name, string(positions))
	if err := lb.Database.Exec(ctx, q); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return catalog.ErrExists
		}
		return fmt.Errorf("creating layout: %w", err)
	}
	return nil
}

// Read queries the database for the layout by name.
func (lb *LayoutBackend) Read(ctx context.Context, name string) (*layout.Layout, error) {
	cols := []string{
		"name",
		"positions",
	}
	q := sql.NewQueryFunction("layout_read", cols, name)
	var l layout.Layout
	var positions string
	if err := lb.Database.Query(ctx, q, &l.Name, &positions); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalog.ErrNotFound
		}
		return nil, fmt.Errorf("querying layout: %w", err)
	}
	if err := json.Unmarshal([]byte(positions), &l.Positions); err != nil {
		return nil, fmt.Errorf("decoding positions of %q: %w", name, err)
	}
	return &l, nil
}

// List gets the names of the layouts, which are sorted by the database.
func (lb *LayoutBackend) List(ctx context.Context) ([]string, error) {
	q := sql.NewQueryFunction("layout_list", []string{"names"})
	var names []string
	if err := lb.Database.Query(ctx, q, pq.Array(&names)); err != nil {
		return nil, fmt.Errorf("listing layouts: %w", err)
	}
	return names, nil
}

// Delete removes the layout.
func (lb *LayoutBackend) Delete(ctx context.Context, name string) error {
	q := sql.NewQueryFunction("layout_delete", []string{"deleted"}, name)
	var deleted bool
	if err := lb.Database.Query(ctx, q, &deleted); err != nil {
		return fmt.Errorf("deleting layout: %w", err)
	}
	if !deleted {
		return catalog.ErrNotFound
	}
	return nil
}
