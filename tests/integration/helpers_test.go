// Package integration exercises the yardstick CLI and the units/catalog
// packages end to end.
package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mesh-intelligence/yardstick/internal/cli"
	"github.com/mesh-intelligence/yardstick/internal/paths"
)

// runYardstick executes the CLI in process against the given config
// directory and returns captured output.
func runYardstick(t *testing.T, configDir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv(paths.EnvConfigDir, configDir)

	root := cli.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// writeFile writes content under dir and returns the full path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
