// Command handoff starts a worker thread with an argument and waits for the
// worker to signal completion through an auto-reset event.
//
// The main thread prints its goroutine ID, starts the Add worker with the
// operands 10 and 10, then blocks until the worker has printed the sum and set
// the event.
package main
