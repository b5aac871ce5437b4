package play

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jacobpatterson1549/selene-mahjongg/game/message"
)

type (
	// GorillaUpgrader creates websocket connections by wrapping a gorilla/websocket Upgrader.
	GorillaUpgrader struct {
		upgrader  *websocket.Upgrader
		readWait  time.Duration
		writeWait time.Duration
	}

	// gorillaConn implements the Conn interface by wrapping a gorilla/websocket connection.
	// Reads and writes time out after the waits.
	gorillaConn struct {
		*websocket.Conn
		readWait  time.Duration
		writeWait time.Duration
	}
)

// NewGorillaUpgrader returns an upgrader that creates gorilla websocket connections with the socket waits.
func (cfg SocketConfig) NewGorillaUpgrader() *GorillaUpgrader {
	u := GorillaUpgrader{
		upgrader:  new(websocket.Upgrader),
		readWait:  cfg.ReadWait,
		writeWait: cfg.WriteWait,
	}
	return &u
}

// Upgrade creates a Conn from the http request.
// Pong messages from the player extend the read deadline.
func (u *GorillaUpgrader) Upgrade(w http.ResponseWriter, r *http.Request) (Conn, error) {
	c, err := u.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return nil, err
	}
	conn := gorillaConn{
		Conn:      c,
		readWait:  u.readWait,
		writeWait: u.writeWait,
	}
	if err := conn.extendReadDeadline(""); err != nil {
		c.Close()
		return nil, err
	}
	c.SetPongHandler(conn.extendReadDeadline)
	return &conn, nil
}

func (c *gorillaConn) extendReadDeadline(appData string) error {
	return c.Conn.SetReadDeadline(time.Now().Add(c.readWait))
}

// ReadMessage reads the next json message from the connection.
func (c *gorillaConn) ReadMessage(m *message.Message) error {
	return c.Conn.ReadJSON(m)
}

// WriteMessage writes the message as json to the connection.
func (c *gorillaConn) WriteMessage(m message.Message) error {
	if err := c.Conn.SetWriteDeadline(time.Now().Add(c.writeWait)); err != nil {
		return err
	}
	return c.Conn.WriteJSON(m)
}

// WritePing writes a ping message on the connection.
func (c *gorillaConn) WritePing() error {
	return c.Conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(c.writeWait))
}

// WriteClose writes a close message on the connection.  The connection is NOT closed.
func (c *gorillaConn) WriteClose(reason string) error {
	data := websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason)
	return c.Conn.WriteControl(websocket.CloseMessage, data, time.Now().Add(c.writeWait))
}

// IsNormalClose determines if the error message is not an unexpected close error.
func (*gorillaConn) IsNormalClose(err error) bool {
	var closeErr *websocket.CloseError // only errors from gorilla can be normal close errors
	return errors.As(err, &closeErr) && !websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived)
}
