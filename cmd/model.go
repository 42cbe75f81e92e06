// Copyright © 2016 Nicholas Ng <nickng@projectfate.org>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"io"
	"log"
	"os"

	"github.com/nickng/handoff/model"
	"github.com/spf13/cobra"
)

var (
	outfile  string // Path to output file
	format   string // Output format
	simplify bool   // Simplify MiGo output
)

// modelCmd represents the model command
var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Print the handoff protocol",
	Long: `Print the handoff between the main thread and the worker thread

Formats:
  migo  MiGo types, input of the deadlock checkers
  cfsm  communicating finite state machines
  dot   state machine of the completion event in graphviz dot`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printModel()
	},
}

func init() {
	modelCmd.Flags().StringVar(&outfile, "output", "", "output file (default is stdout)")
	modelCmd.Flags().StringVar(&format, "format", string(model.MiGo), "output format (migo, cfsm or dot)")
	modelCmd.Flags().BoolVar(&simplify, "simplify", true, "simplify MiGo output")

	RootCmd.AddCommand(modelCmd)
}

func printModel() {
	l := newLogWriter()
	defer l.Cleanup()
	logger := l.Logger("model: ")

	f, err := model.ParseFormat(format)
	if err != nil {
		log.Fatal(err)
	}
	m, err := model.New(f)
	if err != nil {
		log.Fatal(err)
	}
	switch m := m.(type) {
	case *model.Migo:
		if simplify {
			m.Simplify()
		}
	case *model.CFSMs:
		m.PrintSummary(l)
	}

	var w io.Writer = os.Stdout
	if outfile != "" {
		file, err := os.Create(outfile)
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()
		w = file
	}
	if _, err := m.WriteTo(w); err != nil {
		log.Fatal(err)
	}
	logger.Printf("wrote %s model", f)
}
