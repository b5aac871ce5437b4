// Package mongo stores layouts in a mongodb collection.
package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jacobpatterson1549/selene-mahjongg/db"
	"github.com/jacobpatterson1549/selene-mahjongg/db/catalog"
	"github.com/jacobpatterson1549/selene-mahjongg/game/layout"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	databaseName   = "selene-mahjongg-db"
	collectionName = "layouts"
	nameField      = "name"
)

// LayoutBackend is a backend manager for a layouts collection.
type LayoutBackend struct {
	Layouts *mongo.Collection
	db.Config
}

// NewLayoutBackend connects to the database and creates a backend manager for the layouts collection.
func NewLayoutBackend(ctx context.Context, cfg db.Config, databaseURL string) (*LayoutBackend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("creating mongo layout backend: validation: %w", err)
	}
	clientOptions := options.Client()
	clientOptions.ApplyURI(databaseURL)
	ctx, cancelFunc := context.WithTimeout(ctx, cfg.QueryPeriod)
	defer cancelFunc()
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	layouts := client.Database(databaseName).Collection(collectionName)
	lb := LayoutBackend{
		Layouts: layouts,
		Config:  cfg,
	}
	return &lb, nil
}

// Setup ensures layout names are unique.
func (lb *LayoutBackend) Setup(ctx context.Context) error {
	indexOptions := options.Index()
	indexOptions.SetUnique(true)
	model := mongo.IndexModel{
		Keys:    d(e(nameField, 1)),
		Options: indexOptions,
	}
	indexes := lb.Layouts.Indexes()
	ctx, cancelFunc := context.WithTimeout(ctx, lb.QueryPeriod)
	defer cancelFunc()
	if _, err := indexes.CreateOne(ctx, model); err != nil {
		return fmt.Errorf("creating unique layout name index: %w", err)
	}
	return nil
}

// Create inserts the layout document.
func (lb *LayoutBackend) Create(ctx context.Context, l layout.Layout) error {
	ctx, cancelFunc := context.WithTimeout(ctx, lb.QueryPeriod)
	defer cancelFunc()
	if _, err := lb.Layouts.InsertOne(ctx, l); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return catalog.ErrExists
		}
		return fmt.Errorf("creating layout: %w", err)
	}
	return nil
}

// Read finds the layout document with the name.
func (lb *LayoutBackend) Read(ctx context.Context, name string) (*layout.Layout, error) {
	filter := d(e(nameField, name))
	ctx, cancelFunc := context.WithTimeout(ctx, lb.QueryPeriod)
	defer cancelFunc()
	result := lb.Layouts.FindOne(ctx, filter)
	var l layout.Layout
	if err := result.Decode(&l); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, catalog.ErrNotFound
		}
		return nil, fmt.Errorf("reading layout: %w", err)
	}
	return &l, nil
}

// List gets the sorted names of the layout documents.
func (lb *LayoutBackend) List(ctx context.Context) ([]string, error) {
	findOptions := options.Find()
	findOptions.SetProjection(d(e(nameField, 1), e("_id", 0)))
	findOptions.SetSort(d(e(nameField, 1)))
	ctx, cancelFunc := context.WithTimeout(ctx, lb.QueryPeriod)
	defer cancelFunc()
	cursor, err := lb.Layouts.Find(ctx, d(), findOptions)
	if err != nil {
		return nil, fmt.Errorf("finding layouts: %w", err)
	}
	var docs []struct {
		Name string `bson:"name"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("reading layout names: %w", err)
	}
	names := make([]string, len(docs))
	for i, doc := range docs {
		names[i] = doc.Name
	}
	return names, nil
}

// Delete removes the layout document with the name.
func (lb *LayoutBackend) Delete(ctx context.Context, name string) error {
	filter := d(e(nameField, name))
	ctx, cancelFunc := context.WithTimeout(ctx, lb.QueryPeriod)
	defer cancelFunc()
	result, err := lb.Layouts.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("deleting layout: %w", err)
	}
	if result.DeletedCount == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

// d is a helper function to create bson.D elements.
func d(e ...bson.E) bson.D {
	return bson.D(e)
}

// e is a helper function to create bson.E elements.
func e(key string, value interface{}) bson.E {
	return bson.E{Key: key, Value: value}
}
