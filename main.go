package main

import "github.com/nickng/handoff/cmd"

func main() {
	cmd.Execute()
}
