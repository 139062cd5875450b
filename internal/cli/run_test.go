package cli_test

import (
	"strings"
	"testing"

	"github.com/clarityhq/clarity/internal/cli"
)

func TestNoCommandPrintsUsage(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stdout, _, code := c.Run()
	if code != 0 {
		t.Fatalf("exitCode=%d", code)
	}

	if !strings.Contains(stdout, "clarity - plan dependency tracking") {
		t.Errorf("stdout=%q, want usage header", stdout)
	}

	for _, name := range []string{"new", "show", "validate", "order", "ready", "blocked",
		"overdue", "start", "done", "block", "unblock", "progress", "diff", "print-config"} {
		if !strings.Contains(stdout, name) {
			t.Errorf("usage missing command %q", name)
		}
	}
}

func TestHelpFlag(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stdout, _, code := c.Run("--help")
	if code != 0 {
		t.Fatalf("exitCode=%d", code)
	}

	if !strings.Contains(stdout, "Usage: clarity [options] <command> [args]") {
		t.Errorf("stdout=%q", stdout)
	}
}

func TestCommandHelp(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stdout, _, code := c.Run("ready", "--help")
	if code != 0 {
		t.Fatalf("exitCode=%d", code)
	}

	for _, want := range []string{"Usage: clarity ready [flags]", "Flags:", "--limit"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestUnknownCommand(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	_, stderr, code := c.Run("frobnicate")
	if code != 1 {
		t.Fatalf("exitCode=%d, want 1", code)
	}

	if !strings.Contains(stderr, "unknown command: frobnicate") {
		t.Errorf("stderr=%q", stderr)
	}
}

func TestUnknownGlobalFlag(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	_, stderr, code := c.Run("--verbose", "ready")
	if code != 1 {
		t.Fatalf("exitCode=%d, want 1", code)
	}

	if !strings.Contains(stderr, "unknown flag: --verbose") {
		t.Errorf("stderr=%q", stderr)
	}
}

func TestUnknownCommandFlag(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.SeedPlan()

	_, stderr, code := c.Run("ready", "--frobnicate")
	if code != 1 {
		t.Fatalf("exitCode=%d, want 1", code)
	}

	if !strings.Contains(stderr, "unknown flag") {
		t.Errorf("stderr=%q", stderr)
	}
}

func TestGlobalFlagRequiresArgument(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	_, stderr, code := c.Run("-p")
	if code != 1 {
		t.Fatalf("exitCode=%d, want 1", code)
	}

	if !strings.Contains(stderr, "flag requires an argument: -p") {
		t.Errorf("stderr=%q", stderr)
	}
}

func TestDebugLogsToStderr(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.SeedPlan()

	stdout, stderr, code := c.Run("--debug", "validate")
	if code != 0 {
		t.Fatalf("exitCode=%d, stderr=%s", code, stderr)
	}

	if !strings.Contains(stderr, "cli: loading plan") {
		t.Errorf("stderr=%q, want debug log line", stderr)
	}

	if !strings.Contains(stdout, "plan is valid") {
		t.Errorf("stdout=%q", stdout)
	}
}
