package cli_test

import (
	"strings"
	"testing"

	"github.com/clarityhq/clarity/internal/cli"
)

func TestNewCreatesPlanFile(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stdout := c.MustRun("new", "-t", "Sprint 12", "--task", "api:Build API", "--task", "db:Design schema", "--dep", "api:db")

	if !strings.Contains(stdout, `created plan "Sprint 12" with 2 tasks`) {
		t.Errorf("stdout=%q, want creation message", stdout)
	}

	content := c.ReadPlanFile()

	for _, want := range []string{`"Sprint 12"`, `"api"`, `"db"`, `"depends_on": "db"`, `"todo"`} {
		if !strings.Contains(content, want) {
			t.Errorf("plan file missing %s:\n%s", want, content)
		}
	}
}

func TestNewRequiresTitle(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stderr := c.MustFail("new")

	if !strings.Contains(stderr, "plan title is required") {
		t.Errorf("stderr=%q, want title error", stderr)
	}
}

func TestNewRejectsBadSpecs(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name       string
		args       []string
		wantStderr string
	}{
		{
			name:       "task without title",
			args:       []string{"new", "-t", "P", "--task", "api"},
			wantStderr: "invalid task spec",
		},
		{
			name:       "task with empty id",
			args:       []string{"new", "-t", "P", "--task", ":Title"},
			wantStderr: "invalid task spec",
		},
		{
			name:       "dep without target",
			args:       []string{"new", "-t", "P", "--task", "a:A", "--dep", "a"},
			wantStderr: "invalid dependency spec",
		},
		{
			name:       "self dependency",
			args:       []string{"new", "-t", "P", "--task", "a:A", "--dep", "a:a"},
			wantStderr: "cannot depend on itself",
		},
		{
			name:       "dangling dependency",
			args:       []string{"new", "-t", "P", "--task", "a:A", "--dep", "a:ghost"},
			wantStderr: "depends on missing task ghost",
		},
		{
			name:       "duplicate task ids",
			args:       []string{"new", "-t", "P", "--task", "a:A", "--task", "a:Again"},
			wantStderr: "duplicate task id: a",
		},
		{
			name: "cyclic dependencies",
			args: []string{
				"new", "-t", "P",
				"--task", "a:A", "--task", "b:B",
				"--dep", "a:b", "--dep", "b:a",
			},
			wantStderr: "cyclic dependency detected",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := cli.NewCLI(t)

			stderr := c.MustFail(tt.args...)

			if !strings.Contains(stderr, tt.wantStderr) {
				t.Errorf("stderr=%q, want to contain %q", stderr, tt.wantStderr)
			}
		})
	}
}

func TestNewWritesToOutputFlag(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stdout := c.MustRun("new", "-t", "Hotfix", "--task", "fix:Fix it", "-o", "hotfix.json")

	if !strings.Contains(stdout, "hotfix.json") {
		t.Errorf("stdout=%q, want output path", stdout)
	}

	// The default plan file location stays untouched.
	if _, _, code := c.Run("show"); code == 0 {
		t.Error("show should fail: default plan file should not exist")
	}
}

func TestNewInteractive(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	input := strings.Join([]string{
		"Sprint X",    // title
		"Spike week",  // description
		"t1: First",   // tasks
		"t2: Second",
		"",
		"t1: t2", // dependencies
		"",
	}, "\n") + "\n"

	stdout, stderr, code := c.RunWithInput(input, "new", "--interactive")
	if code != 0 {
		t.Fatalf("exitCode=%d, stderr=%s", code, stderr)
	}

	if !strings.Contains(stdout, "Plan title: ") {
		t.Errorf("stdout=%q, want title prompt", stdout)
	}

	if !strings.Contains(stdout, `created plan "Sprint X" with 2 tasks`) {
		t.Errorf("stdout=%q, want creation message", stdout)
	}

	content := c.ReadPlanFile()

	for _, want := range []string{`"Sprint X"`, `"Spike week"`, `"t1"`, `"t2"`} {
		if !strings.Contains(content, want) {
			t.Errorf("plan file missing %s:\n%s", want, content)
		}
	}
}

func TestNewInteractiveRepromptsRequiredTitle(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	// First title line is blank; the prompt repeats until it gets one.
	input := "\nSprint Y\n\n\n\n"

	_, stderr, code := c.RunWithInput(input, "new", "-i")
	if code != 0 {
		t.Fatalf("exitCode=%d, stderr=%s", code, stderr)
	}

	if !strings.Contains(c.ReadPlanFile(), `"Sprint Y"`) {
		t.Error("plan file should carry the re-prompted title")
	}
}

func TestNewInteractiveCancelledOnEOF(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	// Input ends before the required title is answered.
	stdout, stderr, code := c.RunWithInput("", "new", "-i")
	if code == 0 {
		t.Fatalf("interview should fail on EOF\nstdout: %s", stdout)
	}

	if !strings.Contains(stderr, "interview cancelled") {
		t.Errorf("stderr=%q, want cancellation", stderr)
	}
}
