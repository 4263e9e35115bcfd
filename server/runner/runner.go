// Package runner is used to ensure the server is run once and only once.
package runner

import (
	"errors"
	"sync"
)

var (
	// ErrRunning is returned when the runner is run while it is already running.
	ErrRunning = errors.New("already running")
	// ErrFinished is returned when the runner is run after it has finished.
	ErrFinished = errors.New("finished running, it can only be run once")
)

// Runner is a thread-safe structure that can be run, finished, and queried.
type Runner struct {
	mu       sync.Mutex
	running  bool
	finished bool
}

// Run marks the runner as running.  An error is returned if it is running or has finished running.
func (r *Runner) Run() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch {
	case r.running:
		return ErrRunning
	case r.finished:
		return ErrFinished
	}
	r.running = true
	return nil
}

// Finish marks the runner as done, regardless if it ran.
func (r *Runner) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.running = false
	r.finished = true
}

// IsRunning determines if the runner is running
func (r *Runner) IsRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}
