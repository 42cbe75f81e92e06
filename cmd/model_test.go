package cmd

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestModelCommand(t *testing.T) {
	dir, err := ioutil.TempDir("", "handoff")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	out := filepath.Join(dir, "event.dot")

	RootCmd.SetArgs([]string{"model", "--format", "dot", "--output", out, "--no-logging", "--no-colour"})
	if err := RootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	b, err := ioutil.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "Signaled") {
		t.Errorf("model: unexpected output\n%s", string(b))
	}
}
