package play

import (
	"net"
	"net/http"

	"github.com/jacobpatterson1549/selene-mahjongg/game/message"
)

// mockAddr implements the net.Addr interface
type mockAddr string

func (m mockAddr) Network() string {
	return string(m) + "_NETWORK"
}

func (m mockAddr) String() string {
	return string(m)
}

type mockConn struct {
	ReadMessageFunc   func(m *message.Message) error
	WriteMessageFunc  func(m message.Message) error
	WritePingFunc     func() error
	WriteCloseFunc    func(reason string) error
	CloseFunc         func() error
	IsNormalCloseFunc func(err error) bool
	RemoteAddrFunc    func() net.Addr
}

func (m *mockConn) ReadMessage(msg *message.Message) error {
	return m.ReadMessageFunc(msg)
}

func (m *mockConn) WriteMessage(msg message.Message) error {
	return m.WriteMessageFunc(msg)
}

func (m *mockConn) WritePing() error {
	return m.WritePingFunc()
}

func (m *mockConn) WriteClose(reason string) error {
	return m.WriteCloseFunc(reason)
}

func (m *mockConn) Close() error {
	return m.CloseFunc()
}

func (m *mockConn) IsNormalClose(err error) bool {
	return m.IsNormalCloseFunc(err)
}

func (m *mockConn) RemoteAddr() net.Addr {
	return m.RemoteAddrFunc()
}

type mockUpgrader func(w http.ResponseWriter, r *http.Request) (Conn, error)

func (m mockUpgrader) Upgrade(w http.ResponseWriter, r *http.Request) (Conn, error) {
	return m(w, r)
}
