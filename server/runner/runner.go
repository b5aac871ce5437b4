// Package runner guards parts of the server that can only be run once.
package runner

import (
	"errors"
	"sync"
)

// State is the stage of a runner.
type State int

const (
	// Idle runners have not been started.
	Idle State = iota
	// Running runners have been started, but not finished.
	Running
	// Finished runners cannot be started again.
	Finished
)

// ErrStarted is returned when starting a runner that is running or has finished.
var ErrStarted = errors.New("runner already started, it can only be started once")

// Runner tracks the state of something that is run once.  It is safe for concurrent use.
type Runner struct {
	mu    sync.Mutex
	state State
}

// Start moves an idle runner to running.
func (r *Runner) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != Idle {
		return ErrStarted
	}
	r.state = Running
	return nil
}

// Finish marks the runner as finished, even if it was never started.
func (r *Runner) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = Finished
}

// State is the current stage of the runner.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// IsRunning determines if the runner has been started and has not finished.
func (r *Runner) IsRunning() bool {
	return r.State() == Running
}

// String returns the display value for the state.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Finished:
		return "finished"
	}
	return "?"
}
