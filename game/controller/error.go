package controller

// gameWarning is an error that represents a user error.
type gameWarning string

const (
	warningNoTile      gameWarning = "no tile there"
	warningNotExposed  gameWarning = "tile cannot be removed yet"
	warningNoHistory   gameWarning = "no moves to undo"
	warningNoMatches   gameWarning = "no matching tiles can be removed"
	warningNoSelection gameWarning = "no tile selected"
)

// Error returns the string of the error.
func (w gameWarning) Error() string {
	return string(w)
}

// IsWarning determines if the error is caused by an invalid move in the game.
func IsWarning(err error) bool {
	_, ok := err.(gameWarning)
	return ok
}
