package cli_test

import (
	"strings"
	"testing"

	"github.com/clarityhq/clarity/internal/cli"
)

func TestDiffIdenticalPlans(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.SeedPlan()

	if got := c.MustRun("diff", "plan.json", "plan.json"); got != "plans are identical" {
		t.Errorf("diff = %q", got)
	}
}

func TestDiffDifferingPlans(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.SeedPlan()

	c.MustRun("new", "-t", "Test Plan",
		"--task", "a:Task A",
		"--task", "b:Task B renamed",
		"--task", "c:Task C",
		"--dep", "a:b",
		"--dep", "b:c",
		"-o", "after.json",
	)

	stdout, stderr, code := c.Run("diff", "plan.json", "after.json")
	if code != 1 {
		t.Fatalf("exitCode=%d, want 1", code)
	}

	if !strings.Contains(stderr, "plans differ") {
		t.Errorf("stderr=%q", stderr)
	}

	if !strings.Contains(stdout, `-      "title": "Task B",`) {
		t.Errorf("stdout missing removed line:\n%s", stdout)
	}

	if !strings.Contains(stdout, `+      "title": "Task B renamed",`) {
		t.Errorf("stdout missing added line:\n%s", stdout)
	}
}

func TestDiffComparesCanonicalForm(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.SeedPlan()

	// Same plan with different whitespace still compares equal.
	content := c.ReadPlanFile()
	c.WritePlanFile("copy.json", strings.ReplaceAll(content, "  ", "\t"))

	if got := c.MustRun("diff", "plan.json", "copy.json"); got != "plans are identical" {
		t.Errorf("diff = %q", got)
	}
}

func TestDiffArgumentCount(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.SeedPlan()

	stderr := c.MustFail("diff", "plan.json")

	if !strings.Contains(stderr, "diff requires exactly two plan files") {
		t.Errorf("stderr=%q", stderr)
	}
}

func TestDiffValidatesBothSides(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.SeedPlan()
	c.WritePlanFile("broken.json", `{"title": ""}`)

	stderr := c.MustFail("diff", "plan.json", "broken.json")

	if !strings.Contains(stderr, `validation failed for field "title"`) {
		t.Errorf("stderr=%q", stderr)
	}
}
