// Package server runs the http server that deals boards and plays them over websockets.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
	"unicode"

	"github.com/jacobpatterson1549/selene-mahjongg/game"
	"github.com/jacobpatterson1549/selene-mahjongg/game/board"
	"github.com/jacobpatterson1549/selene-mahjongg/game/generator"
	"github.com/jacobpatterson1549/selene-mahjongg/game/layout"
	"github.com/jacobpatterson1549/selene-mahjongg/server/log"
)

type (
	// Server runs the site.
	Server struct {
		wg         sync.WaitGroup
		sessions   atomic.Int64
		log        log.Logger
		httpServer *http.Server
		Config
	}

	// Config contains fields which describe the server.
	Config struct {
		// Port is the TCP port for server http requests.
		Port int
		// StopDur is the maximum duration the server should take to shutdown gracefully.
		StopDur time.Duration
		// Version is sent as the body of requests to the root of the site.
		Version string
		// DealConfig limits the search when dealing boards.
		DealConfig generator.DealConfig
		// MaxLayoutBytes is the largest request body that can be sent when creating layouts.
		MaxLayoutBytes int64
	}

	// Parameters contains the interfaces needed to create a new server.
	Parameters struct {
		log.Logger
		Tokenizer
		LayoutDao
		PasswordHandler
		Player
		// AdminPasswordHash is the hash of the password needed to change layouts.  Layouts cannot be changed if it is empty.
		AdminPasswordHash []byte
		// SeedFunc picks the seed of deals that do not request one.
		SeedFunc func() int64
	}

	// Tokenizer creates and reads tokens that name deals.
	Tokenizer interface {
		// Create signs a token for the deal of the layout with the seed.
		Create(layoutName string, seed int64) (string, error)
		// Read gets the layout name and seed from the token.
		Read(tokenString string) (layoutName string, seed int64, err error)
	}

	// LayoutDao stores layouts.
	LayoutDao interface {
		// Create validates and stores a new layout.
		Create(ctx context.Context, l layout.Layout) error
		// Read gets the layout with the name.
		Read(ctx context.Context, name string) (*layout.Layout, error)
		// List gets the sorted names of the layouts.
		List(ctx context.Context) ([]string, error)
		// Delete removes the layout with the name.
		Delete(ctx context.Context, name string) error
	}

	// PasswordHandler checks passwords.
	PasswordHandler interface {
		// IsCorrect determines if the hashed password matches the supplied password.
		IsCorrect(hashedPassword []byte, password string) (bool, error)
	}

	// Player plays boards over websocket connections.
	Player interface {
		// Play upgrades the request and plays the board, blocking until the player leaves.
		Play(w http.ResponseWriter, r *http.Request, deal game.Info, b *board.Board) error
	}
)

const (
	// HeaderContentType is used to set the document type header on http responses.
	HeaderContentType = "Content-Type"
	// HeaderAcceptEncoding is specified by the browser to tell the server what types of document encoding it can handle.
	HeaderAcceptEncoding = "Accept-Encoding"
	// HeaderContentEncoding is used to tell browsers how the document is encoded.
	HeaderContentEncoding = "Content-Encoding"
	// HeaderVary tells caches which request headers change the response.
	HeaderVary = "Vary"
	// HeaderAuthorization carries the administrator password.
	HeaderAuthorization = "Authorization"
)

// NewServer creates a Server from the Config
func (cfg Config) NewServer(p Parameters) (*Server, error) {
	if err := cfg.validate(p); err != nil {
		return nil, fmt.Errorf("creating server: validation: %w", err)
	}
	s := Server{
		log:    p.Logger,
		Config: cfg,
	}
	monitor := runtimeMonitor{
		sessions: &s.sessions,
	}
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           p.router(cfg, monitor, &s.wg, &s.sessions),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return &s, nil
}

// validate ensures the configuration and parameters have no errors.
func (cfg Config) validate(p Parameters) error {
	if err := p.validate(); err != nil {
		return err
	}
	if err := cfg.DealConfig.Validate(); err != nil {
		return err
	}
	switch {
	case cfg.Port <= 0:
		return fmt.Errorf("positive port required")
	case cfg.StopDur <= 0:
		return fmt.Errorf("stop timeout duration required")
	case cfg.MaxLayoutBytes <= 0:
		return fmt.Errorf("positive max layout bytes required")
	case len(cfg.Version) == 0:
		return fmt.Errorf("version required")
	}
	for i, r := range cfg.Version {
		if !unicode.In(r, unicode.Letter, unicode.Digit) {
			return fmt.Errorf("only letters and digits are allowed in version: invalid rune at index %v of '%v': '%v'", i, cfg.Version, string(r))
		}
	}
	return nil
}

// validate ensures that all of the parameters are present.
func (p Parameters) validate() error {
	switch {
	case p.Logger == nil:
		return fmt.Errorf("log required")
	case p.Tokenizer == nil:
		return fmt.Errorf("tokenizer required")
	case p.LayoutDao == nil:
		return fmt.Errorf("layout dao required")
	case p.PasswordHandler == nil:
		return fmt.Errorf("password handler required")
	case p.Player == nil:
		return fmt.Errorf("player required")
	case p.SeedFunc == nil:
		return fmt.Errorf("seed func required")
	}
	return nil
}

// Run the server asynchronously until it receives a shutdown signal.
// Play sessions last until the context is done.
// When the server stops, its error is sent on the returned channel.
func (s *Server) Run(ctx context.Context) <-chan error {
	errC := make(chan error, 1)
	s.httpServer.BaseContext = func(net.Listener) context.Context {
		return ctx
	}
	s.log.Printf("starting http server at http://127.0.0.1%v", s.httpServer.Addr)
	go func() {
		err := s.httpServer.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		errC <- err
	}()
	return errC
}

// Stop asks the server to shutdown and waits for the shutdown and open play sessions to complete.
// An error is returned if the context times out.
func (s *Server) Stop(ctx context.Context) error {
	ctx, cancelFunc := context.WithTimeout(ctx, s.StopDur)
	defer cancelFunc()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-ctx.Done():
		return fmt.Errorf("waiting for play sessions to stop: %w", ctx.Err())
	case <-done:
	}
	return nil
}
