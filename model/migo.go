package model

import (
	"io"

	"github.com/nickng/migo/v3"
	"github.com/nickng/migo/v3/migoutil"
)

// name is a plain MiGo variable name.
type name string

func (n name) Name() string   { return string(n) }
func (n name) String() string { return string(n) }

// Migo is the MiGo type of the handoff.
type Migo struct {
	Prog *migo.Program
}

// NewMigo builds the MiGo program
//
//   def main.main():
//       let done = newchan done, 1;
//       spawn main.Add(done);
//       recv done;
//   def main.Add(done):
//       send done;
//
func NewMigo() *Migo {
	mainFn := migo.NewFunction(MainFn)
	mainFn.AddStmts(&migo.NewChanStatement{Name: name(DoneCh), Chan: DoneCh, Size: 1})
	mainFn.AddStmts(&migo.SpawnStatement{
		Name:   AddFn,
		Params: []*migo.Parameter{{Caller: name(DoneCh), Callee: name(DoneCh)}},
	})
	mainFn.AddStmts(&migo.RecvStatement{Chan: DoneCh})

	addFn := migo.NewFunction(AddFn)
	addFn.AddParams(&migo.Parameter{Caller: name(DoneCh), Callee: name(DoneCh)})
	addFn.AddStmts(&migo.SendStatement{Chan: DoneCh})

	prog := migo.NewProgram()
	prog.AddFunction(mainFn)
	prog.AddFunction(addFn)
	return &Migo{Prog: prog}
}

// Simplify removes functions without communication from the program.
func (m *Migo) Simplify() {
	migoutil.SimplifyProgram(m.Prog)
}

// WriteTo implements io.WriterTo interface.
func (m *Migo) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write([]byte(m.Prog.String()))
	return int64(n), err
}
