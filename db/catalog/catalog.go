// Package catalog manages the layouts that boards can be dealt from.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jacobpatterson1549/selene-mahjongg/game/layout"
)

type (
	// Dao contains CRUD operations for layouts.
	// Builtin layouts are always available and cannot be replaced or deleted.
	Dao struct {
		backend Backend
		builtin map[string]layout.Layout
	}

	// Backend stores layouts by name.
	Backend interface {
		// Create adds a layout, returning ErrExists if a layout with the same name is stored.
		Create(ctx context.Context, l layout.Layout) error
		// Read gets the layout with the name, returning ErrNotFound if it is not stored.
		Read(ctx context.Context, name string) (*layout.Layout, error)
		// List gets the names of all stored layouts.
		List(ctx context.Context) ([]string, error)
		// Delete removes the layout with the name, returning ErrNotFound if it is not stored.
		Delete(ctx context.Context, name string) error
	}
)

var (
	// ErrNotFound is returned when the layout does not exist.
	ErrNotFound = errors.New("layout not found")
	// ErrExists is returned when creating a layout with a name that is already used.
	ErrExists = errors.New("layout already exists")
	// ErrBuiltin is returned when trying to delete a builtin layout.
	ErrBuiltin = errors.New("builtin layouts cannot be deleted")
	// ErrInvalid is returned when creating a layout that cannot be dealt.
	ErrInvalid = errors.New("invalid layout")
)

// NewDao creates a Dao on the specified backend.
// The builtin layouts are served ahead of the ones in the backend.
func NewDao(backend Backend, builtin ...layout.Layout) (*Dao, error) {
	if backend == nil {
		return nil, fmt.Errorf("creating layout dao: backend required")
	}
	m := make(map[string]layout.Layout, len(builtin))
	for _, l := range builtin {
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("creating layout dao: builtin layout %q: %w", l.Name, err)
		}
		m[l.Name] = l
	}
	d := Dao{
		backend: backend,
		builtin: m,
	}
	return &d, nil
}

// Create validates and stores a new layout.
func (d Dao) Create(ctx context.Context, l layout.Layout) error {
	if err := l.Validate(); err != nil {
		return fmt.Errorf("creating layout: %w: %w", ErrInvalid, err)
	}
	if _, ok := d.builtin[l.Name]; ok {
		return fmt.Errorf("creating layout %q: %w", l.Name, ErrExists)
	}
	if err := d.backend.Create(ctx, l); err != nil {
		return fmt.Errorf("creating layout %q: %w", l.Name, err)
	}
	return nil
}

// Read gets the layout with the name.
func (d Dao) Read(ctx context.Context, name string) (*layout.Layout, error) {
	if l, ok := d.builtin[name]; ok {
		return &l, nil
	}
	l, err := d.backend.Read(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("reading layout %q: %w", name, err)
	}
	return l, nil
}

// List gets the sorted names of the builtin and stored layouts.
func (d Dao) List(ctx context.Context) ([]string, error) {
	stored, err := d.backend.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing layouts: %w", err)
	}
	names := make([]string, 0, len(d.builtin)+len(stored))
	for name := range d.builtin {
		names = append(names, name)
	}
	for _, name := range stored {
		if _, ok := d.builtin[name]; !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes the stored layout with the name.
func (d Dao) Delete(ctx context.Context, name string) error {
	if _, ok := d.builtin[name]; ok {
		return fmt.Errorf("deleting layout %q: %w", name, ErrBuiltin)
	}
	if err := d.backend.Delete(ctx, name); err != nil {
		return fmt.Errorf("deleting layout %q: %w", name, err)
	}
	return nil
}
