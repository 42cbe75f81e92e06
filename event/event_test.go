package event

import (
	"context"
	"testing"
	"time"
)

func TestNewAutoReset(t *testing.T) {
	if e := NewAutoReset(false); e.IsSet() {
		t.Errorf("new: failed (IsSet=true, expects=false)")
	}
	if e := NewAutoReset(true); !e.IsSet() {
		t.Errorf("new: failed (IsSet=false, expects=true)")
	}
}

func TestSetWaitResets(t *testing.T) {
	e := NewAutoReset(false)
	e.Set()
	if !e.IsSet() {
		t.Fatal("set: event not signaled")
	}
	e.Wait()
	if e.IsSet() {
		t.Error("wait: expects event to be reset after waiter is released")
	}
}

func TestSetIsNotCounted(t *testing.T) {
	e := NewAutoReset(false)
	e.Set()
	e.Set()
	e.Wait()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := e.WaitContext(ctx); err != context.DeadlineExceeded {
		t.Errorf("wait: failed (err=%v, expects=%v)", err, context.DeadlineExceeded)
	}
}

func TestWaitReleasedByOtherGoroutine(t *testing.T) {
	e := NewAutoReset(false)
	released := make(chan struct{})
	go func() {
		e.Wait()
		close(released)
	}()

	select {
	case <-released:
		t.Fatal("wait: released before Set")
	case <-time.After(20 * time.Millisecond):
	}

	e.Set()
	select {
	case <-released:
	case <-time.After(time.Second):
		t.Fatal("wait: not released after Set")
	}
}

func TestWaitContextCancelled(t *testing.T) {
	e := NewAutoReset(false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := e.WaitContext(ctx); err != context.Canceled {
		t.Errorf("wait: failed (err=%v, expects=%v)", err, context.Canceled)
	}

	// An abandoned wait must not consume a later signal.
	e.Set()
	if err := e.WaitContext(context.Background()); err != nil {
		t.Errorf("wait: unexpected error %v", err)
	}
}
