package progress

import "fmt"

// CountMismatchError reports metrics whose per-status counts do not sum
// to the stated total.
type CountMismatchError struct {
	Total int
	Sum   int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("invalid count: total %d does not match status sum %d", e.Total, e.Sum)
}

// UnknownFormatError reports an unrecognized output format name.
type UnknownFormatError struct {
	Value string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown progress format: %q (valid: terminal, json, markdown)", e.Value)
}
