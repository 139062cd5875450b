package planfile

import "errors"

// Error variables for plan file operations.
var (
	ErrPlanNotFound      = errors.New("plan file not found")
	ErrPlanFileRead      = errors.New("cannot read plan file")
	ErrPlanFileParse     = errors.New("cannot parse plan file")
	ErrUnsupportedFormat = errors.New("unsupported plan file format (use .json, .yaml, or .yml)")
)
