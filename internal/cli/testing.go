package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CLI drives the clarity binary in tests. Every run executes against a
// private temp directory, so tests can run in parallel without sharing
// plan or config files.
type CLI struct {
	t   *testing.T
	Dir string
	Env map[string]string
}

// NewCLI returns a harness rooted in a fresh temp directory.
func NewCLI(t *testing.T) *CLI {
	t.Helper()

	return &CLI{
		t:   t,
		Dir: t.TempDir(),
		Env: map[string]string{},
	}
}

// Run invokes clarity with the given args and empty stdin. The binary
// name and "--cwd <tempdir>" are prepended automatically. Returns
// stdout, stderr, and the exit code.
func (r *CLI) Run(args ...string) (string, string, int) {
	return r.RunWithInput("", args...)
}

// RunWithInput is Run with stdin supplied as a string or io.Reader.
func (r *CLI) RunWithInput(stdin any, args ...string) (string, string, int) {
	var in io.Reader

	switch v := stdin.(type) {
	case string:
		in = strings.NewReader(v)
	case io.Reader:
		in = v
	default:
		panic(fmt.Sprintf("stdin must be string or io.Reader, got %T", stdin))
	}

	var stdout, stderr bytes.Buffer

	argv := append([]string{"clarity", "--cwd", r.Dir}, args...)
	code := Run(in, &stdout, &stderr, argv, r.Env, nil)

	return stdout.String(), stderr.String(), code
}

// MustRun runs the command and fails the test on a non-zero exit.
// Returns trimmed stdout.
func (r *CLI) MustRun(args ...string) string {
	r.t.Helper()

	stdout, stderr, code := r.Run(args...)
	if code != 0 {
		r.t.Fatalf("command %v failed with exit code %d\nstderr: %s", args, code, stderr)
	}

	return strings.TrimSpace(stdout)
}

// MustFail runs the command and fails the test if it exits zero.
// Returns trimmed stderr.
func (r *CLI) MustFail(args ...string) string {
	r.t.Helper()

	stdout, stderr, code := r.Run(args...)
	if code == 0 {
		r.t.Fatalf("command %v should have failed but succeeded\nstdout: %s", args, stdout)
	}

	return strings.TrimSpace(stderr)
}

// PlanPath is the default plan file location inside the temp directory.
func (r *CLI) PlanPath() string {
	return filepath.Join(r.Dir, "plan.json")
}

// ReadPlanFile returns the default plan file's content.
func (r *CLI) ReadPlanFile() string {
	r.t.Helper()

	content, err := os.ReadFile(r.PlanPath())
	if err != nil {
		r.t.Fatalf("failed to read plan file: %v", err)
	}

	return string(content)
}

// WritePlanFile writes a file with the given name into the temp
// directory and returns its path.
func (r *CLI) WritePlanFile(name, content string) string {
	r.t.Helper()

	path := filepath.Join(r.Dir, name)

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		r.t.Fatalf("failed to write plan file %s: %v", name, err)
	}

	return path
}

// WriteConfig writes the project config file into the temp directory.
func (r *CLI) WriteConfig(content string) {
	r.t.Helper()

	path := filepath.Join(r.Dir, ConfigFileName)

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		r.t.Fatalf("failed to write config: %v", err)
	}
}

// SeedPlan creates a three-task plan through the CLI itself: a depends
// on b, b depends on c, all todo/P2.
func (r *CLI) SeedPlan() {
	r.t.Helper()

	r.MustRun("new",
		"-t", "Test Plan",
		"--task", "a:Task A",
		"--task", "b:Task B",
		"--task", "c:Task C",
		"--dep", "a:b",
		"--dep", "b:c",
	)
}

// AssertContains fails the test if content doesn't contain substr.
func AssertContains(t *testing.T, content, substr string) {
	t.Helper()

	if !strings.Contains(content, substr) {
		t.Errorf("content should contain %q\ncontent:\n%s", substr, content)
	}
}

// AssertNotContains fails the test if content contains substr.
func AssertNotContains(t *testing.T, content, substr string) {
	t.Helper()

	if strings.Contains(content, substr) {
		t.Errorf("content should NOT contain %q\ncontent:\n%s", substr, content)
	}
}
