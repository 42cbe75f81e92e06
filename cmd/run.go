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
	"bufio"
	"context"
	"io"
	"log"
	"os"

	"github.com/nickng/handoff/demo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	stdout io.Writer = os.Stdout // Console output of run.
	stdin  io.Reader = os.Stdin  // Read by the pause before exit.
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Add two numbers on a worker thread",
	Long: `Add two numbers on a worker thread

The main thread starts one worker thread with the operands, then waits until
the worker signals that it is done. By default the wait has no timeout.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runHandoff(cmd)
	},
}

func init() {
	addRunFlags(runCmd)

	RootCmd.AddCommand(runCmd)
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Int("a", 10, "first operand")
	cmd.Flags().Int("b", 10, "second operand")
	cmd.Flags().Duration("timeout", 0, "stop waiting for the worker after this duration (0 waits forever)")
	cmd.Flags().Bool("pause", true, "wait for a line on stdin before exiting")
}

func runHandoff(cmd *cobra.Command) {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		log.Fatal(err)
	}
	l := newLogWriter()
	defer l.Cleanup()
	logger := l.Logger("handoff: ")

	conf := demo.Config{
		A:       viper.GetInt("a"),
		B:       viper.GetInt("b"),
		Timeout: viper.GetDuration("timeout"),
	}
	logger.Printf("config: a=%d b=%d timeout=%s", conf.A, conf.B, conf.Timeout)
	if err := demo.New(stdout, logger, conf).Run(context.Background()); err != nil {
		log.Fatal(err)
	}

	if viper.GetBool("pause") {
		// Any line or EOF ends the pause, the read error is not used.
		_, _ = bufio.NewReader(stdin).ReadString('\n')
	}
}
