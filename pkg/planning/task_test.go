package planning_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarityhq/clarity/pkg/planning"
)

func TestNewTaskTrimsTitle(t *testing.T) {
	t.Parallel()

	task, err := planning.NewTask("t1", "  Fix login  ", "desc", planning.StatusTodo, planning.PriorityP1)
	require.NoError(t, err)

	assert.Equal(t, "Fix login", task.Title)
	assert.Equal(t, "t1", task.ID)
	assert.NotNil(t, task.Tags)
}

func TestNewTaskRejectsEmptyTitle(t *testing.T) {
	t.Parallel()

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := planning.NewTask("t1", title, "", planning.StatusTodo, planning.PriorityP2)

		var verr *planning.ValidationError

		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "title", verr.Field)
	}
}

func TestTaskTransitionSuccess(t *testing.T) {
	t.Parallel()

	task, err := planning.NewTask("t1", "Task", "", planning.StatusTodo, planning.PriorityP2)
	require.NoError(t, err)

	require.NoError(t, task.Transition(planning.StatusInProgress))
	assert.Equal(t, planning.StatusInProgress, task.Status)

	require.NoError(t, task.Transition(planning.StatusDone))
	assert.Equal(t, planning.StatusDone, task.Status)
}

func TestTaskTransitionFailureLeavesTaskUnchanged(t *testing.T) {
	t.Parallel()

	task, err := planning.NewTask("t1", "Task", "desc", planning.StatusTodo, planning.PriorityP2)
	require.NoError(t, err)

	before := task

	transitionErr := task.Transition(planning.StatusDone)

	var invalid *planning.InvalidTransitionError

	require.ErrorAs(t, transitionErr, &invalid)
	assert.Equal(t, planning.StatusTodo, invalid.From)
	assert.Equal(t, planning.StatusDone, invalid.To)
	assert.Equal(t, []planning.Status{planning.StatusInProgress, planning.StatusBlocked}, invalid.Valid)

	if diff := cmp.Diff(before, task); diff != "" {
		t.Errorf("task changed on failed transition (-want +got):\n%s", diff)
	}
}

func TestTaskTransitionFromDoneAlwaysFails(t *testing.T) {
	t.Parallel()

	for _, to := range []planning.Status{
		planning.StatusTodo,
		planning.StatusInProgress,
		planning.StatusDone,
		planning.StatusBlocked,
	} {
		task, err := planning.NewTask("t1", "Task", "", planning.StatusDone, planning.PriorityP0)
		require.NoError(t, err)

		transitionErr := task.Transition(to)

		var invalid *planning.InvalidTransitionError

		require.ErrorAs(t, transitionErr, &invalid, "done -> %s should fail", to)
		assert.Empty(t, invalid.Valid)
		assert.Equal(t, planning.StatusDone, task.Status)
	}
}

func TestNewDependencyRejectsSelfLoop(t *testing.T) {
	t.Parallel()

	_, err := planning.NewDependency("a", "a")

	var selfDep *planning.SelfDependencyError

	require.ErrorAs(t, err, &selfDep)
	assert.Equal(t, "a", selfDep.TaskID)

	dep, err := planning.NewDependency("a", "b")
	require.NoError(t, err)
	assert.Equal(t, planning.Dependency{TaskID: "a", DependsOn: "b"}, dep)
}

func TestTaskIsOverdue(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	for _, tt := range []struct {
		name    string
		due     string
		status  planning.Status
		overdue bool
	}{
		{name: "no due date", due: "", status: planning.StatusTodo, overdue: false},
		{name: "future due date", due: "2024-12-01T00:00:00Z", status: planning.StatusTodo, overdue: false},
		{name: "past due date", due: "2024-01-01T00:00:00Z", status: planning.StatusTodo, overdue: true},
		{name: "past due date but done", due: "2024-01-01T00:00:00Z", status: planning.StatusDone, overdue: false},
		{name: "past due date in progress", due: "2024-01-01T00:00:00Z", status: planning.StatusInProgress, overdue: true},
		{name: "unparseable due date", due: "yesterday", status: planning.StatusTodo, overdue: false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			task, err := planning.NewTask("t1", "Task", "", tt.status, planning.PriorityP2)
			require.NoError(t, err)

			task.DueDate = tt.due

			assert.Equal(t, tt.overdue, task.IsOverdue(now))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		err  error
		want string
	}{
		{
			err:  &planning.CyclicDependencyError{Cycle: []string{"a", "b", "a"}},
			want: "cyclic dependency detected: a -> b -> a",
		},
		{
			err:  &planning.DuplicateIDError{ID: "t1"},
			want: "duplicate task id: t1",
		},
		{
			err:  &planning.MissingDependencyError{TaskID: "a", DependencyID: "b"},
			want: "task a depends on missing task b",
		},
		{
			err:  &planning.SelfDependencyError{TaskID: "a"},
			want: "task a cannot depend on itself",
		},
		{
			err:  &planning.ValidationError{Field: "title", Reason: "title cannot be empty"},
			want: `validation failed for field "title": title cannot be empty`,
		},
		{
			err: &planning.InvalidTransitionError{
				From:  planning.StatusTodo,
				To:    planning.StatusDone,
				Valid: []planning.Status{planning.StatusInProgress, planning.StatusBlocked},
			},
			want: "invalid transition from todo to done (valid: in_progress, blocked)",
		},
		{
			err:  &planning.InvalidTransitionError{From: planning.StatusDone, To: planning.StatusTodo},
			want: "invalid transition from done to todo: done is terminal",
		},
	} {
		assert.Equal(t, tt.want, tt.err.Error())
	}
}
