// Package demo is the main flow of handoff: it starts one worker thread
// with an argument and waits for the worker to signal completion.
//
package demo // import "github.com/nickng/handoff/demo"

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"time"

	"github.com/fatih/color"
	"github.com/nickng/handoff/adder"
	"github.com/nickng/handoff/event"
	"github.com/nickng/handoff/thread"
)

// Lines printed by the main thread before starting and after the worker is done.
const (
	Banner       = "***** Adding with Thread objects *****"
	Confirmation = "Other thread is done!"
)

// Config is the configuration of a Demo.
type Config struct {
	A, B    int           // Operands given to the worker.
	Timeout time.Duration // Bound on the wait, 0 waits forever.
}

// DefaultConfig returns the configuration 10 + 10 with an unbounded wait.
func DefaultConfig() Config {
	return Config{A: 10, B: 10}
}

// Demo contains the metadata for a run.
type Demo struct {
	Config
	Payload interface{} // Data passed to the worker thread.

	out    io.Writer
	logger *log.Logger
}

// New creates a new Demo writing its console output to out.
func New(out io.Writer, logger *log.Logger, conf Config) *Demo {
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	return &Demo{
		Config:  conf,
		Payload: adder.NewParams(conf.A, conf.B),
		out:     out,
		logger:  logger,
	}
}

// Run starts the worker thread and blocks until it signals completion.
//
// If the worker never signals (e.g. Payload is not adder.Params) Run blocks
// until ctx is done, or until Timeout elapses if it is set.
func (d *Demo) Run(ctx context.Context) error {
	color.New(color.FgCyan, color.Bold).Fprintln(d.out, Banner)
	fmt.Fprintf(d.out, "ID of thread in Main(): %d\n", thread.CurrentID())

	done := event.NewAutoReset(false)
	t := thread.New(adder.Add(d.out, done, d.logger))
	t.Name = "Add"
	if err := t.Start(d.Payload); err != nil {
		return fmt.Errorf("start %s: %w", t.Name, err)
	}
	d.logger.Printf("main: started thread %s with %#v", t.Name, d.Payload)

	if err := d.wait(ctx, done); err != nil {
		return err
	}
	color.New(color.FgGreen).Fprintln(d.out, Confirmation)
	d.logger.Printf("main: thread %s (goroutine %d) is done", t.Name, t.ManagedID())
	return nil
}

func (d *Demo) wait(ctx context.Context, done *event.AutoReset) error {
	if d.Timeout <= 0 {
		if ctx.Done() == nil { // Never cancelled, e.g. context.Background().
			done.Wait()
			return nil
		}
		return done.WaitContext(ctx)
	}
	ctx, cancel := context.WithTimeout(ctx, d.Timeout)
	defer cancel()
	err := done.WaitContext(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w after %s", ErrWaitTimeout, d.Timeout)
	}
	return err
}
