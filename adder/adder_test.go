package adder

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"testing"

	"github.com/nickng/handoff/event"
	"github.com/nickng/handoff/thread"
)

func TestSum(t *testing.T) {
	p := NewParams(10, 10)
	if p.Sum() != 20 {
		t.Errorf("sum: failed (Sum=%d, expects=20)", p.Sum())
	}
	if s := p.String(); s != "10 + 10 is 20" {
		t.Errorf("string: failed (got=%q, expects=%q)", s, "10 + 10 is 20")
	}
}

func TestAddSignals(t *testing.T) {
	var out bytes.Buffer
	done := event.NewAutoReset(false)
	Add(&out, done, nil)(NewParams(10, 10))

	if !done.IsSet() {
		t.Fatal("add: done not set")
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("add: failed (lines=%d, expects=2)\n%s", len(lines), out.String())
	}
	if want := fmt.Sprintf("ID of thread in Add(): %d", thread.CurrentID()); lines[0] != want {
		t.Errorf("add: failed (got=%q, expects=%q)", lines[0], want)
	}
	if lines[1] != "10 + 10 is 20" {
		t.Errorf("add: failed (got=%q, expects=%q)", lines[1], "10 + 10 is 20")
	}
}

func TestAddPointerParams(t *testing.T) {
	var out bytes.Buffer
	done := event.NewAutoReset(false)
	p := NewParams(2, 3)
	Add(&out, done, nil)(&p)
	if !done.IsSet() {
		t.Error("add: done not set for *Params")
	}
	if !strings.Contains(out.String(), "2 + 3 is 5") {
		t.Errorf("add: unexpected output %q", out.String())
	}
}

func TestAddIgnoresMalformed(t *testing.T) {
	for _, data := range []interface{}{nil, "10,10", 20, struct{ A, B int }{10, 10}, (*Params)(nil)} {
		var out bytes.Buffer
		done := event.NewAutoReset(false)
		Add(&out, done, nil)(data)
		if done.IsSet() {
			t.Errorf("add %#v: done should not be set", data)
		}
		if out.Len() != 0 {
			t.Errorf("add %#v: expects no output, got %q", data, out.String())
		}
	}
}

// Everything the worker writes, its log included, must be visible to the
// waiter once done is set.
func TestAddLogsBeforeSignal(t *testing.T) {
	var out, logs bytes.Buffer
	done := event.NewAutoReset(false)
	th := thread.New(Add(&out, done, log.New(&logs, "", 0)))
	if err := th.Start(NewParams(10, 10)); err != nil {
		t.Fatal(err)
	}
	done.Wait()

	if !strings.Contains(logs.String(), "10 + 10 is 20") {
		t.Errorf("add: failed (log=%q, expects completion line before signal)", logs.String())
	}
	if !strings.Contains(out.String(), "10 + 10 is 20") {
		t.Errorf("add: failed (out=%q, expects sum before signal)", out.String())
	}
}
