// Package message contains structures to pass between players and the server.
package message

import (
	"math/rand"

	"github.com/jacobpatterson1549/selene-mahjongg/game"
	"github.com/jacobpatterson1549/selene-mahjongg/game/board"
	"github.com/jacobpatterson1549/selene-mahjongg/server/log"
)

type (
	// Type represents what the purpose of a message.
	Type int

	// Message contains information to or from a socket for a game.
	Message struct {
		// Type is the purpose of the message.
		Type Type `json:"type"`
		// Info is a message to show to the player.
		Info string `json:"info,omitempty"`
		// Tile is the index of the tile the message is about.
		Tile *int `json:"tile,omitempty"`
		// Tiles are the indexes of tiles that can be removed with the selected tile.
		Tiles []int `json:"tiles,omitempty"`
		// Pair is a pair of tiles that was removed, restored, or can be removed.
		Pair *board.Match `json:"pair,omitempty"`
		// Game is the summary of the game the player is in.
		Game *game.Info `json:"game,omitempty"`
		// Board is the full state of the board.
		Board *board.Board `json:"board,omitempty"`
	}
)

const (
	_ Type = iota
	// SelectTile is a Type that players send to pick a tile.  The server responds with the effect of the selection.
	SelectTile
	// UndoPair is a Type that players send to put the last removed pair back.  The server sends it with the restored pair.
	UndoPair
	// HintPair is a Type that players send to ask for a pair that can be removed.  The server sends it with the pair.
	HintPair
	// GameBoard is a Type that the server sends with the full board when a player starts playing.
	GameBoard
	// TileSelected is a Type that the server sends when a tile becomes selected.
	TileSelected
	// TileDeselected is a Type that the server sends when the selection is cleared.
	TileDeselected
	// PairRemoved is a Type that the server sends when a pair of tiles is removed.
	PairRemoved
	// SocketWarning is a Type that servers send to inform players that a request is invalid.
	SocketWarning
	// SocketError is a Type that servers send to players to report an unexpected state.
	SocketError
	// SocketHTTPPing is a Type the server sends to the player to request a http request to the site to keep it active.  Some environments shut down after a period of HTTP inactivity has passed.
	SocketHTTPPing // keep last for tests
)

// TileIndex creates a pointer to the tile index for a message.
func TileIndex(i int) *int {
	return &i
}

// Send is a utility function for sending messages on out.
// When debugging, it prints a message before and after the message is sent to help identify deadlocks
func Send(m Message, out chan<- Message, debug bool, log log.Logger) {
	if debug {
		id := rand.Int()
		log.Printf("[id: %v] sending message: %v", id, m)
		defer log.Printf("[id: %v] message sent", id)
	}
	out <- m
}
