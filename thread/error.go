package thread

import "errors"

var (
	ErrNilStart       = errors.New("thread: nil start routine")
	ErrAlreadyStarted = errors.New("thread: already started")
)
