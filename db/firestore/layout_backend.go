// Package firestore stores layouts in a google cloud firestore database.
package firestore

import (
	"context"
	"fmt"
	"sort"

	"cloud.google.com/go/firestore"
	"github.com/jacobpatterson1549/selene-mahjongg/db"
	"github.com/jacobpatterson1549/selene-mahjongg/db/catalog"
	"github.com/jacobpatterson1549/selene-mahjongg/game/layout"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LayoutBackend is a backend manager for a layouts collection.
// Layout documents are keyed by name.
type LayoutBackend struct {
	client *firestore.Client
	db.Config
}

// NewLayoutBackend creates a backend manager for layouts.
func NewLayoutBackend(ctx context.Context, cfg db.Config, projectID string) (*LayoutBackend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("creating firestore layout backend: validation: %w", err)
	}
	client, err := firestore.NewClient(ctx, projectID) // do not timeout context - the client is used by the backend
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}
	lb := LayoutBackend{
		client: client,
		Config: cfg,
	}
	return &lb, nil
}

func (lb *LayoutBackend) layoutsCollection() *firestore.CollectionRef {
	return lb.client.Collection("services").Doc("selene-mahjongg").Collection("layouts")
}

// withTimeoutContext configures the context to timeout when running the function.
func (lb *LayoutBackend) withTimeoutContext(ctx context.Context, f func(ctx context.Context) error) error {
	ctx, cancelFunc := context.WithTimeout(ctx, lb.QueryPeriod)
	defer cancelFunc()
	return f(ctx)
}

// Create adds the layout document.
func (lb *LayoutBackend) Create(ctx context.Context, l layout.Layout) error {
	if err := lb.withTimeoutContext(ctx, func(ctx context.Context) error {
		docRef := lb.layoutsCollection().Doc(l.Name)
		_, err := docRef.Create(ctx, l)
		return err
	}); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return catalog.ErrExists
		}
		return fmt.Errorf("creating layout: %w", err)
	}
	return nil
}

// Read gets the layout document.
func (lb *LayoutBackend) Read(ctx context.Context, name string) (*layout.Layout, error) {
	var l layout.Layout
	if err := lb.withTimeoutContext(ctx, func(ctx context.Context) error {
		docRef := lb.layoutsCollection().Doc(name)
		snapshot, err := docRef.Get(ctx)
		if err != nil {
			if snapshot != nil && !snapshot.Exists() {
				return catalog.ErrNotFound
			}
			return err
		}
		return snapshot.DataTo(&l)
	}); err != nil {
		if err == catalog.ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("reading layout: %w", err)
	}
	return &l, nil
}

// List gets the sorted ids of the layout documents.
func (lb *LayoutBackend) List(ctx context.Context) ([]string, error) {
	var names []string
	if err := lb.withTimeoutContext(ctx, func(ctx context.Context) error {
		docRefs, err := lb.layoutsCollection().DocumentRefs(ctx).GetAll()
		if err != nil {
			return err
		}
		names = make([]string, len(docRefs))
		for i, docRef := range docRefs {
			names[i] = docRef.ID
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("listing layouts: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes the layout document.
func (lb *LayoutBackend) Delete(ctx context.Context, name string) error {
	if err := lb.withTimeoutContext(ctx, func(ctx context.Context) error {
		docRef := lb.layoutsCollection().Doc(name)
		_, err := docRef.Delete(ctx, firestore.Exists)
		return err
	}); err != nil {
		if status.Code(err) == codes.NotFound {
			return catalog.ErrNotFound
		}
		return fmt.Errorf("deleting layout: %w", err)
	}
	return nil
}
