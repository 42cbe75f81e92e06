// Package adder contains the worker which adds two numbers on its own
// thread and signals the waiting thread when it is done.
//
package adder // import "github.com/nickng/handoff/adder"

import (
	"fmt"
	"io"
	"log"

	"github.com/nickng/handoff/event"
	"github.com/nickng/handoff/thread"
)

// Params is the argument of the Add worker.
type Params struct {
	A, B int
}

// NewParams creates a new Params.
func NewParams(a, b int) Params {
	return Params{A: a, B: b}
}

// Sum returns A + B.
func (p Params) Sum() int { return p.A + p.B }

func (p Params) String() string {
	return fmt.Sprintf("%d + %d is %d", p.A, p.B, p.Sum())
}

// Add returns the worker entry point. The worker writes its goroutine ID and
// the sum of its Params to out and logs, then sets done. Nothing is written
// after done is set.
//
// Data which is not a Params (or a non-nil *Params) is ignored: nothing is
// written and done is never set.
func Add(out io.Writer, done *event.AutoReset, logger *log.Logger) thread.ParameterizedStart {
	return func(data interface{}) {
		var p Params
		switch data := data.(type) {
		case Params:
			p = data
		case *Params:
			if data == nil {
				return
			}
			p = *data
		default:
			return
		}

		fmt.Fprintf(out, "ID of thread in Add(): %d\n", thread.CurrentID())
		fmt.Fprintln(out, p)

		if logger != nil {
			logger.Printf("add: signalling completion (%s)", p)
		}
		done.Set() // Must be the last action of the worker.
	}
}
