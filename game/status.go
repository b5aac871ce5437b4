// Package game contains structures shared by the game controller, the play sessions, and the server.
package game

// Status is the state of the game.
type Status int

const (
	_ Status = iota
	// InProgress is the status of a game that has tiles that can be removed.
	InProgress
	// Finished is the status of a game that has had all of its tiles removed.
	Finished
	// Stuck is the status of a game that has tiles left, but no exposed tiles that match.
	// Moves can be undone to get out of a stuck game.
	Stuck
)

// String returns the display value for the status.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "In Progress"
	case Finished:
		return "Finished"
	case Stuck:
		return "Stuck"
	}
	return "?"
}
