// Package play runs sessions where a player clears a dealt board over a websocket connection.
package play

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jacobpatterson1549/selene-mahjongg/game/message"
	"github.com/jacobpatterson1549/selene-mahjongg/server/log"
	"github.com/jacobpatterson1549/selene-mahjongg/server/runner"
)

type (
	// Socket reads and writes messages to the browsers
	Socket struct {
		runner.Runner
		Conn
		active atomic.Bool
		SocketConfig
	}

	// SocketConfig contains commonly shared Socket properties
	SocketConfig struct {
		// Debug is a flag that causes the socket to log the types non-ping/pong messages that are read/written
		Debug bool
		// Log is used to log errors and other information
		Log log.Logger
		// ReadWait is the amout of time that can pass between receiving client messages before timing out.
		ReadWait time.Duration
		// WriteWait is the amout of time that the socket can take to write a message.
		WriteWait time.Duration
		// PingPeriod is how often ping messages should be sent.  Should be less than ReadWait.
		PingPeriod time.Duration
		// IdlePeriod is the amount of time that can pass between handling messages that are not pings before the connection is idle and will be disconnected
		IdlePeriod time.Duration
		// HTTPPingPeriod is the amount of time between sending requests for the connection to send a http ping on a different socket
		// Some hosts shut down servers if too much time passes between HTTP requests
		HTTPPingPeriod time.Duration
	}

	// Conn is the connection than backs the socket
	Conn interface {
		// ReadMessage reads the next message from the connection.
		ReadMessage(m *message.Message) error
		// WriteMessage writes the message to the connection.
		WriteMessage(m message.Message) error
		// WritePing writes a ping message on the connection.
		WritePing() error
		// WriteClose writes a close message on the connection.  The connection is NOT closed.
		WriteClose(reason string) error
		// Close closes the connection.
		Close() error
		// IsNormalClose determines if the error message is not an unexpected close error.
		IsNormalClose(err error) bool
		// RemoteAddr gets the remote network address of the connection.
		RemoteAddr() net.Addr
	}
)

var errSocketClosed = errors.New("socket closed")

// NewSocket creates a socket
func (cfg SocketConfig) NewSocket(conn Conn) (*Socket, error) {
	if err := cfg.validate(conn); err != nil {
		return nil, fmt.Errorf("creating socket: validation: %w", err)
	}
	s := Socket{
		Conn:         conn,
		SocketConfig: cfg,
	}
	return &s, nil
}

// validate ensures the configuration has no errors.
func (cfg SocketConfig) validate(conn Conn) error {
	switch {
	case cfg.Log == nil:
		return fmt.Errorf("log required")
	case conn == nil:
		return fmt.Errorf("websocket connection required")
	case cfg.ReadWait <= 0:
		return fmt.Errorf("positive read wait period required")
	case cfg.WriteWait <= 0:
		return fmt.Errorf("positive write wait period required")
	case cfg.PingPeriod <= 0:
		return fmt.Errorf("positive ping period required")
	case cfg.IdlePeriod <= 0:
		return fmt.Errorf("positive idle period required")
	case cfg.HTTPPingPeriod <= 0:
		return fmt.Errorf("positive http ping period required")
	case cfg.PingPeriod >= cfg.ReadWait:
		return fmt.Errorf("ping period should be less than read wait")
	}
	return nil
}

// Run reads messages from the connection onto the fromPlayer channel and writes messages from the toPlayer channel to the connection on separate goroutines.
// The fromPlayer channel is closed when the connection stops being read.
// The Socket runs until the connection fails or the context is cancelled.
func (s *Socket) Run(ctx context.Context, wg *sync.WaitGroup, toPlayer <-chan message.Message, fromPlayer chan<- message.Message) error {
	if err := s.Runner.Start(); err != nil {
		return fmt.Errorf("running socket: %v", err)
	}
	pingTicker := time.NewTicker(s.PingPeriod)
	httpPingTicker := time.NewTicker(s.HTTPPingPeriod)
	idleTicker := time.NewTicker(s.IdlePeriod)
	var socketWG sync.WaitGroup
	socketWG.Add(2)
	wg.Add(1)
	go func() {
		socketWG.Wait()
		pingTicker.Stop()
		httpPingTicker.Stop()
		idleTicker.Stop()
		s.Runner.Finish()
		wg.Done()
	}()
	go s.readMessages(ctx, fromPlayer, &socketWG)
	go s.writeMessages(ctx, toPlayer, &socketWG, pingTicker, httpPingTicker, idleTicker)
	return nil
}

// readMessages receives messages from the connected socket and writes them to the fromPlayer channel.
// Reading stops when the connection is closed or the context is done.
func (s *Socket) readMessages(ctx context.Context, fromPlayer chan<- message.Message, wg *sync.WaitGroup) {
	defer wg.Done()
	defer close(fromPlayer)
	for { // BLOCKING
		m, err := s.readMessage()
		if err != nil {
			if !errors.Is(err, errSocketClosed) {
				s.Log.Printf("reading socket messages stopped for %v: %v", s.RemoteAddr(), err)
			}
			return
		}
		s.active.Store(true)
		select {
		case <-ctx.Done():
			return
		case fromPlayer <- *m:
		}
	}
}

// writeMessages sends messages from the toPlayer channel to the connected socket.
// The tickers are used to periodically write messages or check for read activity.
// The connection is closed when writing stops.
func (s *Socket) writeMessages(ctx context.Context, toPlayer <-chan message.Message, wg *sync.WaitGroup,
	pingTicker, httpPingTicker, idleTicker *time.Ticker) {
	s.active.Store(false)
	var closeReason string
	defer func() {
		s.Conn.WriteClose(closeReason)
		s.Conn.Close()
		if len(closeReason) != 0 {
			s.Log.Printf("closing socket for %v: %v", s.RemoteAddr(), closeReason)
		}
		wg.Done()
	}()
	var err error
	for { // BLOCKING
		select {
		case <-ctx.Done():
			return
		case m := <-toPlayer:
			err = s.writeMessage(m)
		case <-pingTicker.C:
			err = s.Conn.WritePing()
		case <-httpPingTicker.C:
			err = s.writeMessage(message.Message{
				Type: message.SocketHTTPPing,
			})
		case <-idleTicker.C:
			if !s.active.Load() {
				closeReason = "closing socket due to inactivity"
				return
			}
			s.active.Store(false)
		}
		if err != nil {
			closeReason = fmt.Sprintf("writing socket messages stopped: %v", err)
			return
		}
	}
}

// readMessage reads the next message from the connection.
func (s *Socket) readMessage() (*message.Message, error) {
	var m message.Message
	if err := s.Conn.ReadMessage(&m); err != nil { // BLOCKING
		if s.Conn.IsNormalClose(err) {
			return nil, errSocketClosed
		}
		return nil, fmt.Errorf("unexpected socket closure: %v", err)
	}
	if s.Debug {
		s.Log.Printf("socket reading message with type %v", m.Type)
	}
	return &m, nil
}

// writeMessage writes a message to the connection.
func (s *Socket) writeMessage(m message.Message) error {
	if s.Debug {
		s.Log.Printf("socket writing message with type %v", m.Type)
	}
	if err := s.Conn.WriteMessage(m); err != nil {
		return fmt.Errorf("writing socket message: %v", err)
	}
	return nil
}
