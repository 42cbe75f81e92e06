// Package model describes the handoff between the main thread and the Add
// worker as communicating processes, in the formats understood by the
// session type toolchain (MiGo, CFSMs and graphviz dot).
//
// The completion event is modelled as a channel with buffer size 1: Set is a
// send, Wait is a receive which empties the buffer again.
//
package model // import "github.com/nickng/handoff/model"

import (
	"fmt"
	"io"
	"strings"
)

// Names used in the model.
const (
	MainFn  = "main.main" // Initiator.
	AddFn   = "main.Add"  // Worker.
	DoneCh  = "done"      // Completion event.
	Message = "struct{}"  // Payload of a Set.
)

// Format is an output format of the model.
type Format string

const (
	MiGo Format = "migo"
	CFSM Format = "cfsm"
	Dot  Format = "dot"
)

// Formats lists all supported formats.
var Formats = []Format{MiGo, CFSM, Dot}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// New returns the model in the given format.
func New(f Format) (io.WriterTo, error) {
	switch f {
	case MiGo:
		return NewMigo(), nil
	case CFSM:
		return NewCFSMs(), nil
	case Dot:
		return NewGraphvizDot()
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}
