package cli_test

import (
	"strings"
	"testing"

	"github.com/clarityhq/clarity/internal/cli"
)

func TestShowPlanSummary(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.SeedPlan()

	c.MustRun("start", "c")

	stdout := c.MustRun("show")

	for _, want := range []string{
		"Plan: Test Plan",
		"Tasks: 3 (todo 2, in progress 1, blocked 0, done 0)",
		"Completion: 0.0%",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout=%q, want %q", stdout, want)
		}
	}
}

func TestShowTaskCard(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WritePlanFile("plan.json", `{
  "title": "Release",
  "tasks": [
    {"id": "ship", "title": "Ship it", "description": "Cut the release.", "status": "todo", "priority": "P0", "due_date": "2020-01-01T00:00:00Z", "estimate_hours": 2.5, "tags": ["release", "ops"]},
    {"id": "qa", "title": "QA pass", "status": "done", "priority": "P1"}
  ],
  "dependencies": [{"task_id": "ship", "depends_on": "qa"}]
}`)

	stdout := c.MustRun("show", "ship")

	for _, want := range []string{
		"ID:       ship",
		"Title:    Ship it",
		"Status:   todo",
		"Priority: P0",
		"2020-01-01T00:00:00Z  OVERDUE",
		"Estimate: 2.5h",
		"Tags:     release, ops",
		"Depends:  qa",
		"Cut the release.",
	} {
		cli.AssertContains(t, stdout, want)
	}
}

func TestShowTaskCardOmitsEmptySections(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.SeedPlan()

	stdout := c.MustRun("show", "c")

	cli.AssertContains(t, stdout, "ID:       c")
	cli.AssertNotContains(t, stdout, "Due:")
	cli.AssertNotContains(t, stdout, "Estimate:")
	cli.AssertNotContains(t, stdout, "Tags:")
	cli.AssertNotContains(t, stdout, "Depends:")
}

func TestShowUnknownTask(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.SeedPlan()

	stderr := c.MustFail("show", "ghost")

	if !strings.Contains(stderr, "no task with id: ghost") {
		t.Errorf("stderr=%q", stderr)
	}
}

func TestShowJSONIsCanonicalPlan(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.SeedPlan()

	stdout := c.MustRun("show", "--json")

	for _, want := range []string{`"title": "Test Plan"`, `"task_id": "a"`, `"depends_on": "b"`} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %s:\n%s", want, stdout)
		}
	}
}

func TestValidateAcceptsSeededPlan(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.SeedPlan()

	if got := c.MustRun("validate"); got != "plan is valid: 3 tasks, 2 dependencies" {
		t.Errorf("validate = %q", got)
	}
}

func TestValidateRejectsBrokenPlans(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name       string
		content    string
		wantStderr string
	}{
		{
			name: "cycle",
			content: `{
  "title": "Loop",
  "tasks": [
    {"id": "a", "title": "A", "status": "todo", "priority": "P1"},
    {"id": "b", "title": "B", "status": "todo", "priority": "P1"}
  ],
  "dependencies": [
    {"task_id": "a", "depends_on": "b"},
    {"task_id": "b", "depends_on": "a"}
  ]
}`,
			wantStderr: "cyclic dependency detected",
		},
		{
			name: "dangling dependency",
			content: `{
  "title": "Dangling",
  "tasks": [{"id": "a", "title": "A", "status": "todo", "priority": "P1"}],
  "dependencies": [{"task_id": "a", "depends_on": "ghost"}]
}`,
			wantStderr: "depends on missing task ghost",
		},
		{
			name: "unknown status",
			content: `{
  "title": "Bad status",
  "tasks": [{"id": "a", "title": "A", "status": "paused", "priority": "P1"}],
  "dependencies": []
}`,
			wantStderr: "validation failed",
		},
		{
			name:       "not json at all",
			content:    "tasks: [",
			wantStderr: `validation failed for field "deserialization"`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := cli.NewCLI(t)
			c.WritePlanFile("plan.json", tt.content)

			stderr := c.MustFail("validate")

			if !strings.Contains(stderr, tt.wantStderr) {
				t.Errorf("stderr=%q, want %q", stderr, tt.wantStderr)
			}
		})
	}
}
