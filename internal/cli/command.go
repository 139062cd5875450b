package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
)

// Command is one subcommand of the clarity binary. A command owns its
// flag set and renders its own help; the dispatcher only needs Name and
// Run.
type Command struct {
	// Flags holds the command-specific flags. The flag set's own name
	// is irrelevant; the command is identified by Usage.
	Flags *flag.FlagSet

	// Usage is the "<name> <args>" line shown after "clarity" in help
	// output, e.g. "unblock <id> [--to <status>]".
	Usage string

	// Short is the one-liner for the global command listing.
	Short string

	// Long is the full description for "clarity <name> --help".
	// Falls back to Short when empty.
	Long string

	// Exec receives the positional arguments left after flag parsing.
	Exec func(ctx context.Context, o *IO, args []string) error
}

// Name is the first word of Usage.
func (c *Command) Name() string {
	name, _, _ := strings.Cut(c.Usage, " ")

	return name
}

// HelpLine formats the entry for the global command listing.
func (c *Command) HelpLine() string {
	return fmt.Sprintf("  %-26s %s", c.Usage, c.Short)
}

// PrintHelp writes the command's full help text.
func (c *Command) PrintHelp(o *IO) {
	o.Println("Usage: clarity", c.Usage)
	o.Println()

	if c.Long != "" {
		o.Println(c.Long)
	} else {
		o.Println(c.Short)
	}

	if c.Flags == nil || !c.Flags.HasFlags() {
		return
	}

	o.Println()
	o.Println("Flags:")

	var defs strings.Builder

	c.Flags.SetOutput(&defs)
	c.Flags.PrintDefaults()
	o.Printf("%s", defs.String())
}

// Run parses args against the command's flags and executes it,
// returning the process exit code. All error rendering happens here so
// every command fails the same way: "error: ..." on stderr, exit 1.
func (c *Command) Run(ctx context.Context, o *IO, args []string) int {
	// pflag writes its own complaints; those are rendered below instead.
	c.Flags.SetOutput(&strings.Builder{})

	if err := c.Flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			c.PrintHelp(o)

			return 0
		}

		o.ErrPrintln("error:", err)
		o.ErrPrintln()
		c.PrintHelp(o)

		return 1
	}

	if err := c.Exec(ctx, o, c.Flags.Args()); err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	return 0
}
