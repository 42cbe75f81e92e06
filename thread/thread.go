// Package thread runs a parameterised start routine on its own goroutine.
//
package thread // import "github.com/nickng/handoff/thread"

import (
	"sync"
	"sync/atomic"
)

// ParameterizedStart is the entry point of a Thread.
// The argument is the data passed to Start.
type ParameterizedStart func(data interface{})

// Thread is a single unit of execution. A Thread can be started once.
type Thread struct {
	Name string // Name of thread, set before Start.

	start     ParameterizedStart
	startOnce sync.Once
	started   int32
	managedID int64
}

// New creates a new Thread which will run start.
func New(start ParameterizedStart) *Thread {
	return &Thread{start: start}
}

// Start runs the thread entry point with data on a new goroutine.
// It returns immediately and does not wait for the entry point to run.
func (t *Thread) Start(data interface{}) error {
	if t.start == nil {
		return ErrNilStart
	}
	err := ErrAlreadyStarted
	t.startOnce.Do(func() {
		atomic.StoreInt32(&t.started, 1)
		err = nil
		go func() {
			atomic.StoreInt64(&t.managedID, CurrentID())
			t.start(data)
		}()
	})
	return err
}

// Started returns true if Start has been called successfully.
func (t *Thread) Started() bool {
	return atomic.LoadInt32(&t.started) == 1
}

// ManagedID returns the goroutine ID of the thread,
// or 0 if the thread is not running yet.
func (t *Thread) ManagedID() int64 {
	return atomic.LoadInt64(&t.managedID)
}
