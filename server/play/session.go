package play

import (
	"context"

	"github.com/jacobpatterson1549/selene-mahjongg/game"
	"github.com/jacobpatterson1549/selene-mahjongg/game/controller"
	"github.com/jacobpatterson1549/selene-mahjongg/game/message"
	"github.com/jacobpatterson1549/selene-mahjongg/server/log"
)

// session plays a single deal for a player.
type session struct {
	game  *controller.Game
	deal  game.Info
	log   log.Logger
	debug bool
}

// info summarizes the game with the layout and seed of the deal.
func (s *session) info() *game.Info {
	i := s.game.Info()
	i.Layout = s.deal.Layout
	i.Seed = s.deal.Seed
	return &i
}

// run sends the board to the player and then responds to messages from the player until the fromPlayer channel is closed or the context is done.
func (s *session) run(ctx context.Context, fromPlayer <-chan message.Message, toPlayer chan<- message.Message) {
	start := message.Message{
		Type:  message.GameBoard,
		Board: s.game.Board(),
		Game:  s.info(),
	}
	if !s.send(ctx, toPlayer, start) {
		return
	}
	for { // BLOCKING
		select {
		case <-ctx.Done():
			return
		case m, ok := <-fromPlayer:
			if !ok {
				return
			}
			for _, m2 := range s.handle(m) {
				if !s.send(ctx, toPlayer, m2) {
					return
				}
			}
		}
	}
}

// send writes the message to the player, returning false if the context is done first.
func (s *session) send(ctx context.Context, toPlayer chan<- message.Message, m message.Message) bool {
	if s.debug {
		s.log.Printf("session sending message with type %v", m.Type)
	}
	select {
	case <-ctx.Done():
		return false
	case toPlayer <- m:
		return true
	}
}

// handle changes the game for the message and returns the messages to send back to the player.
func (s *session) handle(m message.Message) []message.Message {
	switch m.Type {
	case message.SelectTile:
		return s.handleSelect(m)
	case message.UndoPair:
		pair, err := s.game.Undo()
		if err != nil {
			return s.handleError(err)
		}
		return []message.Message{{Type: message.UndoPair, Pair: pair, Game: s.info()}}
	case message.HintPair:
		pair, err := s.game.Hint()
		if err != nil {
			return s.handleError(err)
		}
		return []message.Message{{Type: message.HintPair, Pair: pair}}
	}
	return []message.Message{{Type: message.SocketWarning, Info: "unknown message type"}}
}

// handleSelect selects the tile in the message.
func (s *session) handleSelect(m message.Message) []message.Message {
	if m.Tile == nil {
		return []message.Message{{Type: message.SocketWarning, Info: "tile required"}}
	}
	i := *m.Tile
	outcome, err := s.game.Select(i)
	if err != nil {
		return s.handleError(err)
	}
	switch outcome {
	case controller.Selected, controller.Reselected:
		tiles, err := s.game.Candidates()
		if err != nil {
			return s.handleError(err)
		}
		return []message.Message{{Type: message.TileSelected, Tile: message.TileIndex(i), Tiles: tiles}}
	case controller.Cancelled:
		return []message.Message{{Type: message.TileDeselected, Tile: message.TileIndex(i)}}
	}
	history := s.game.History()
	pair := history[len(history)-1]
	info := s.info()
	removed := message.Message{
		Type: message.PairRemoved,
		Pair: &pair,
		Game: info,
	}
	switch info.Status {
	case game.Finished:
		removed.Info = "board cleared"
	case game.Stuck:
		removed.Info = "no more pairs can be removed, undo to continue"
	}
	return []message.Message{removed}
}

// handleError creates a warning message for invalid moves and an error message otherwise.
func (s *session) handleError(err error) []message.Message {
	if controller.IsWarning(err) {
		return []message.Message{{Type: message.SocketWarning, Info: err.Error()}}
	}
	s.log.Printf("play session error: %v", err)
	return []message.Message{{Type: message.SocketError, Info: err.Error()}}
}
