package cli

import "errors"

// Error variables for CLI operations.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrPlanFileEmpty      = errors.New("plan_file cannot be empty")
	ErrInvalidFormat      = errors.New("invalid format (valid: terminal, json, markdown)")
	ErrFlagRequiresArg    = errors.New("flag requires an argument")
	ErrUnknownFlag        = errors.New("unknown flag")
	ErrTaskIDRequired     = errors.New("task ID is required")
	ErrTitleRequired      = errors.New("plan title is required (use -t or --interactive)")
	ErrInvalidTaskSpec    = errors.New("invalid task spec (want ID:TITLE)")
	ErrInvalidDepSpec     = errors.New("invalid dependency spec (want TASK:DEPENDS_ON)")
	ErrInvalidUnblockTo   = errors.New("invalid --to status (valid: todo, in_progress)")
	ErrDiffNeedsTwoPlans  = errors.New("diff requires exactly two plan files")
	ErrPlansDiffer        = errors.New("plans differ")
	ErrInterviewCancelled = errors.New("interview cancelled")
)
