// Package logwriter chooses where handoff writes its log, and whether the
// console output is coloured.
//
package logwriter // import "github.com/nickng/handoff/logwriter"

import (
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/fatih/color"
)

// Writer is a log destination and its configurations.
type Writer struct {
	io.Writer

	LogFile       string // Path to log file, empty for stderr.
	EnableLogging bool
	EnableColour  bool
	Cleanup       func() // Flushes and closes the destination.
}

// NewFile creates a new Writer logging to logfile.
func NewFile(logfile string, enableLogging, enableColour bool) *Writer {
	return &Writer{
		LogFile:       logfile,
		EnableLogging: enableLogging,
		EnableColour:  enableColour,
	}
}

// New creates a new Writer logging to w.
func New(w io.Writer, enableLogging, enableColour bool) *Writer {
	return &Writer{
		Writer:        w,
		EnableLogging: enableLogging,
		EnableColour:  enableColour,
	}
}

// Create opens the log destination and applies the colour setting.
// Cleanup must be called when the Writer is no longer used.
func (w *Writer) Create() error {
	color.NoColor = !w.EnableColour
	w.Cleanup = func() {}
	switch {
	case !w.EnableLogging:
		w.Writer = ioutil.Discard
	case w.Writer != nil:
	case w.LogFile != "":
		f, err := os.Create(w.LogFile)
		if err != nil {
			return fmt.Errorf("failed to create log file: %w", err)
		}
		bufWriter := bufio.NewWriter(f)
		w.Writer = bufWriter
		w.Cleanup = func() {
			if err := bufWriter.Flush(); err != nil {
				log.Printf("flush: %s", err)
			}
			if err := f.Close(); err != nil {
				log.Printf("close: %s", err)
			}
		}
	default:
		w.Writer = os.Stderr
	}
	return nil
}

// Logger returns a logger writing to w with the given prefix.
func (w *Writer) Logger(prefix string) *log.Logger {
	return log.New(w, prefix, log.LstdFlags)
}
