package play

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/jacobpatterson1549/selene-mahjongg/game"
	"github.com/jacobpatterson1549/selene-mahjongg/game/board"
	"github.com/jacobpatterson1549/selene-mahjongg/game/controller"
	"github.com/jacobpatterson1549/selene-mahjongg/game/message"
)

type (
	// Handler upgrades http requests to websockets and plays deals on them.
	Handler struct {
		wg       sync.WaitGroup
		upgrader Upgrader
		Config
	}

	// Config contains the properties of play sessions.
	// Sessions log the messages they send when the socket config is debugging.
	Config struct {
		// SocketConfig is used to create the sockets that sessions are played on.
		SocketConfig
	}

	// Upgrader turns http requests into websocket connections.
	Upgrader interface {
		Upgrade(w http.ResponseWriter, r *http.Request) (Conn, error)
	}
)

// NewHandler creates a Handler from the Config.
func (cfg Config) NewHandler(u Upgrader) (*Handler, error) {
	if err := cfg.validate(u); err != nil {
		return nil, fmt.Errorf("creating play handler: validation: %w", err)
	}
	h := Handler{
		upgrader: u,
		Config:   cfg,
	}
	return &h, nil
}

// validate ensures the configuration has no errors.
func (cfg Config) validate(u Upgrader) error {
	switch {
	case u == nil:
		return fmt.Errorf("upgrader required")
	case cfg.Log == nil:
		return fmt.Errorf("log required")
	}
	return nil
}

// Play upgrades the request and plays the board on the connection.
// The deal describes the layout and seed of the board.
// Play blocks until the session ends, which happens when the connection is closed or the request context is done.
func (h *Handler) Play(w http.ResponseWriter, r *http.Request, deal game.Info, b *board.Board) error {
	conn, err := h.upgrader.Upgrade(w, r)
	if err != nil {
		return fmt.Errorf("upgrading to websocket connection: %w", err)
	}
	s, err := h.SocketConfig.NewSocket(conn)
	if err != nil {
		conn.Close()
		return fmt.Errorf("creating play socket: %w", err)
	}
	h.wg.Add(1)
	defer h.wg.Done()
	ctx, cancelFunc := context.WithCancel(r.Context())
	defer cancelFunc()
	toPlayer := make(chan message.Message)
	fromPlayer := make(chan message.Message)
	var socketWG sync.WaitGroup
	if err := s.Run(ctx, &socketWG, toPlayer, fromPlayer); err != nil {
		conn.Close()
		return err
	}
	sess := session{
		game:  controller.New(b),
		deal:  deal,
		log:   h.Log,
		debug: h.Debug,
	}
	sess.run(ctx, fromPlayer, toPlayer)
	cancelFunc()
	socketWG.Wait()
	return nil
}

// Wait blocks until all sessions are done.
func (h *Handler) Wait() {
	h.wg.Wait()
}
