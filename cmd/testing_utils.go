package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// cliResult holds the captured streams of one CLI run.
type cliResult struct {
	Stdout string
	Stderr string
	Err    error
}

// runCLI executes the real command tree with args, feeding stdin and
// capturing output. Global flag state is reset before and after.
func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()

	ResetGlobalState()
	t.Cleanup(ResetGlobalState)

	var stdout, stderr bytes.Buffer
	RootCmd.SetOut(&stdout)
	RootCmd.SetErr(&stderr)
	RootCmd.SetIn(strings.NewReader(stdin))
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetIn(nil)
		RootCmd.SetArgs(nil)
	})

	err := Execute()
	return cliResult{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}

// setupTestEnvironment isolates a test from the user's environment and
// returns a config path inside a temporary directory.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	t.Setenv("SEALPOST_PASSWORD", "")
	return filepath.Join(t.TempDir(), "config", "config.toml")
}

// writePost writes a post into a temp dir and returns its path.
// #nosec G306 -- Test files are temporary and don't contain sensitive data.
func writePost(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "secret-post.md")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { // #nosec G306
		t.Fatalf("Failed to create test post: %v", err)
	}
	return path
}

func readPost(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read post: %v", err)
	}
	return string(data)
}
