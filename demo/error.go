package demo

import "errors"

// ErrWaitTimeout is returned when the worker did not signal within Timeout.
var ErrWaitTimeout = errors.New("timed out waiting for worker thread")
