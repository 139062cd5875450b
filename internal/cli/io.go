package cli

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// IO carries a command's streams plus a warning collector. Output
// produced by tools in automated pipelines is often truncated or piped
// through head/tail, so warnings are echoed to stderr both before the
// first line of stdout output and again after the last; either end
// surviving is enough for a reader to notice them.
type IO struct {
	// In is the command's stdin.
	In io.Reader

	// Log emits diagnostics to stderr. It is a no-op logger unless
	// --debug was given.
	Log zerolog.Logger

	out      io.Writer
	errOut   io.Writer
	warnings []string
	started  bool
}

// NewIO wires an IO around the given streams.
func NewIO(in io.Reader, out, errOut io.Writer, log zerolog.Logger) *IO {
	return &IO{In: in, Log: log, out: out, errOut: errOut}
}

// Warn records a warning as "<issue>: <action>", where action tells the
// reader what to do about it. Warnings do not suppress stdout output,
// but any recorded warning turns the final exit code into 1.
func (o *IO) Warn(issue string, action string) {
	o.warnings = append(o.warnings, issue+": "+action)
}

// Println writes a line to stdout, flushing pending warnings first.
func (o *IO) Println(a ...any) {
	o.echoWarningsOnce()
	_, _ = fmt.Fprintln(o.out, a...)
}

// Printf writes formatted output to stdout, flushing pending warnings
// first.
func (o *IO) Printf(format string, a ...any) {
	o.echoWarningsOnce()
	_, _ = fmt.Fprintf(o.out, format, a...)
}

// ErrPrintln writes a line to stderr.
func (o *IO) ErrPrintln(a ...any) {
	_, _ = fmt.Fprintln(o.errOut, a...)
}

// Finish emits the trailing warning echo and returns the exit code:
// 1 when any warning was recorded, 0 otherwise.
func (o *IO) Finish() int {
	// A command that produced no stdout output still gets its leading
	// echo here, so warnings are never lost entirely.
	o.echoWarningsOnce()

	for _, w := range o.warnings {
		_, _ = fmt.Fprintln(o.errOut, "warning:", w)
	}

	if len(o.warnings) > 0 {
		return 1
	}

	return 0
}

func (o *IO) echoWarningsOnce() {
	if o.started || len(o.warnings) == 0 {
		return
	}

	for _, w := range o.warnings {
		_, _ = fmt.Fprintln(o.errOut, "warning:", w)
	}

	o.started = true
}
