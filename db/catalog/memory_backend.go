package catalog

import (
	"context"
	"sort"
	"sync"

	"github.com/jacobpatterson1549/selene-mahjongg/game/layout"
	"github.com/jacobpatterson1549/selene-mahjongg/game/tile"
)

// MemoryBackend keeps layouts until the server stops.
// It is used when no database is configured.
type MemoryBackend struct {
	mu      sync.RWMutex
	layouts map[string]layout.Layout
}

// NewMemoryBackend creates an empty backend.
func NewMemoryBackend() *MemoryBackend {
	b := MemoryBackend{
		layouts: make(map[string]layout.Layout),
	}
	return &b
}

// Create stores a copy of the layout.
func (b *MemoryBackend) Create(ctx context.Context, l layout.Layout) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.layouts[l.Name]; ok {
		return ErrExists
	}
	b.layouts[l.Name] = copyLayout(l)
	return nil
}

// Read gets a copy of the stored layout.
func (b *MemoryBackend) Read(ctx context.Context, name string) (*layout.Layout, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	l, ok := b.layouts[name]
	if !ok {
		return nil, ErrNotFound
	}
	l = copyLayout(l)
	return &l, nil
}

// List gets the sorted names of the stored layouts.
func (b *MemoryBackend) List(ctx context.Context) ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	names := make([]string, 0, len(b.layouts))
	for name := range b.layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes the stored layout.
func (b *MemoryBackend) Delete(ctx context.Context, name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.layouts[name]; !ok {
		return ErrNotFound
	}
	delete(b.layouts, name)
	return nil
}

func copyLayout(l layout.Layout) layout.Layout {
	positions := make([]tile.Position, len(l.Positions))
	copy(positions, l.Positions)
	l.Positions = positions
	return l
}
