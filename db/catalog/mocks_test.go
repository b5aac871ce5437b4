package catalog

import (
	"context"

	"github.com/jacobpatterson1549/selene-mahjongg/game/layout"
)

type mockBackend struct {
	createFunc func(ctx context.Context, l layout.Layout) error
	readFunc   func(ctx context.Context, name string) (*layout.Layout, error)
	listFunc   func(ctx context.Context) ([]string, error)
	deleteFunc func(ctx context.Context, name string) error
}

func (m mockBackend) Create(ctx context.Context, l layout.Layout) error {
	return m.createFunc(ctx, l)
}

func (m mockBackend) Read(ctx context.Context, name string) (*layout.Layout, error) {
	return m.readFunc(ctx, name)
}

func (m mockBackend) List(ctx context.Context) ([]string, error) {
	return m.listFunc(ctx)
}

func (m mockBackend) Delete(ctx context.Context, name string) error {
	return m.deleteFunc(ctx, name)
}
