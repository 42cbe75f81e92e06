package model

import (
	"fmt"
	"io"
	"sort"

	"github.com/nickng/cfsm"
)

// CFSMs is the handoff as a system of communicating finite state machines,
// one machine per thread.
type CFSMs struct {
	Sys   *cfsm.System
	Main  *cfsm.CFSM
	Add   *cfsm.CFSM
	Roles map[string]*cfsm.CFSM // Machines by thread name.
}

// NewCFSMs builds the CFSM system. The worker sends a completion message to
// the main thread, which receives it exactly once.
func NewCFSMs() *CFSMs {
	sys := &CFSMs{
		Sys:   cfsm.NewSystem(),
		Roles: make(map[string]*cfsm.CFSM),
	}
	sys.Main = sys.newMachine(MainFn)
	sys.Add = sys.newMachine(AddFn)

	// main: q0 -- Add ? done --> q1
	q0 := sys.Main.NewState()
	q1 := sys.Main.NewState()
	recv := cfsm.NewRecv(sys.Add, Message)
	recv.SetNext(q1)
	q0.AddTransition(recv)
	sys.Main.Start = q0

	// Add: q0 -- main ! done --> q1
	p0 := sys.Add.NewState()
	p1 := sys.Add.NewState()
	send := cfsm.NewSend(sys.Main, Message)
	send.SetNext(p1)
	p0.AddTransition(send)
	sys.Add.Start = p0

	return sys
}

func (sys *CFSMs) newMachine(role string) *cfsm.CFSM {
	m := sys.Sys.NewMachine()
	m.Comment = role
	sys.Roles[role] = m
	return m
}

// WriteTo implements io.WriterTo interface.
func (sys *CFSMs) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write([]byte(sys.Sys.String()))
	return int64(n), err
}

// PrintSummary writes the machine IDs of the system to w.
func (sys *CFSMs) PrintSummary(w io.Writer) {
	roles := make([]string, 0, len(sys.Roles))
	for r := range sys.Roles {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool { return sys.Roles[roles[i]].ID < sys.Roles[roles[j]].ID })

	fmt.Fprintf(w, "Total of %d CFSMs\n", len(roles))
	for _, r := range roles {
		fmt.Fprintf(w, "\t%d\t= %s\n", sys.Roles[r].ID, r)
	}
}
