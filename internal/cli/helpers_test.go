package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// executeCommand runs a fresh root command with args and captures its
// output. HOME points at an empty directory so no user config is read.
func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")

	root := NewRootCommand("dev", "none", "unknown")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--no-emoji"}, args...))

	err = root.Execute()
	return out.String(), errOut.String(), err
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
