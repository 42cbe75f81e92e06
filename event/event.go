// Package event provides a binary auto-reset event for one-shot handoff
// between goroutines.
//
package event // import "github.com/nickng/handoff/event"

import "context"

// AutoReset is a binary event which resets itself when a waiter is released.
//
// The zero value is not usable, create one with NewAutoReset.
type AutoReset struct {
	signal chan struct{} // Holds a token iff the event is signaled.
}

// NewAutoReset creates a new event, signaled if initial is true.
func NewAutoReset(initial bool) *AutoReset {
	e := &AutoReset{signal: make(chan struct{}, 1)}
	if initial {
		e.signal <- struct{}{}
	}
	return e
}

// Set moves the event to the signaled state.
// Setting a signaled event is a no-op, Set never blocks.
func (e *AutoReset) Set() {
	select {
	case e.signal <- struct{}{}:
	default:
	}
}

// Wait blocks until the event is signaled and resets it.
// There is no timeout.
func (e *AutoReset) Wait() {
	<-e.signal
}

// WaitContext is like Wait but gives up when ctx is done, returning
// ctx.Err(). The event is not reset if the wait is abandoned.
func (e *AutoReset) WaitContext(ctx context.Context) error {
	select {
	case <-e.signal:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsSet reports whether the event is signaled without consuming it.
func (e *AutoReset) IsSet() bool {
	return len(e.signal) == 1
}
