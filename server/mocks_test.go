package server

import (
	"context"
	"net/http"

	"github.com/jacobpatterson1549/selene-mahjongg/game"
	"github.com/jacobpatterson1549/selene-mahjongg/game/board"
	"github.com/jacobpatterson1549/selene-mahjongg/game/layout"
)

type mockTokenizer struct {
	CreateFunc func(layoutName string, seed int64) (string, error)
	ReadFunc   func(tokenString string) (string, int64, error)
}

func (m mockTokenizer) Create(layoutName string, seed int64) (string, error) {
	return m.CreateFunc(layoutName, seed)
}

func (m mockTokenizer) Read(tokenString string) (string, int64, error) {
	return m.ReadFunc(tokenString)
}

type mockLayoutDao struct {
	createFunc func(ctx context.Context, l layout.Layout) error
	readFunc   func(ctx context.Context, name string) (*layout.Layout, error)
	listFunc   func(ctx context.Context) ([]string, error)
	deleteFunc func(ctx context.Context, name string) error
}

func (m mockLayoutDao) Create(ctx context.Context, l layout.Layout) error {
	return m.createFunc(ctx, l)
}

func (m mockLayoutDao) Read(ctx context.Context, name string) (*layout.Layout, error) {
	return m.readFunc(ctx, name)
}

func (m mockLayoutDao) List(ctx context.Context) ([]string, error) {
	return m.listFunc(ctx)
}

func (m mockLayoutDao) Delete(ctx context.Context, name string) error {
	return m.deleteFunc(ctx, name)
}

type mockPasswordHandler func(hashedPassword []byte, password string) (bool, error)

func (m mockPasswordHandler) IsCorrect(hashedPassword []byte, password string) (bool, error) {
	return m(hashedPassword, password)
}

type mockPlayer func(w http.ResponseWriter, r *http.Request, deal game.Info, b *board.Board) error

func (m mockPlayer) Play(w http.ResponseWriter, r *http.Request, deal game.Info, b *board.Board) error {
	return m(w, r, deal, b)
}
