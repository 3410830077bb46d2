package workflows

import (
	"os"
	"path/filepath"
	"testing"
)

// countingSource records how often a password was requested.
type countingSource struct {
	password string
	calls    int
}

func (c *countingSource) Obtain() (string, error) {
	c.calls++
	return c.password, nil
}

func (c *countingSource) String() string { return "prompt" }

// counterReader yields 0, 1, 2, ... so salts and nonces are predictable.
type counterReader struct {
	next byte
}

func (r *counterReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.next
		r.next++
	}
	return len(p), nil
}

// writePost writes a post into a temp dir and returns its path.
// #nosec G306 -- Test files are temporary and don't contain sensitive data.
func writePost(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "2026-02-14-secret.md")
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
