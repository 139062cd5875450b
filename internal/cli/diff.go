package cli

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	flag "github.com/spf13/pflag"

	"github.com/clarityhq/clarity/internal/planfile"
)

// DiffCmd returns the diff command.
func DiffCmd(cfg *Config) *Command {
	fs := flag.NewFlagSet("diff", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "diff <plan-a> <plan-b>",
		Short: "Compare two plan files",
		Long: `Compare two plan files line by line over their canonical JSON
form. Both files are fully validated before comparing, so a diff never
runs against a corrupt plan.

Lines only in the first file print with "-", lines only in the second
with "+". Exit code is 0 when the plans are identical, 1 otherwise.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) != 2 {
				return ErrDiffNeedsTwoPlans
			}

			left, err := canonicalPlanJSON(cfg, args[0])
			if err != nil {
				return err
			}

			right, err := canonicalPlanJSON(cfg, args[1])
			if err != nil {
				return err
			}

			if left == right {
				o.Println("plans are identical")

				return nil
			}

			printLineDiff(o, left, right)

			return ErrPlansDiffer
		},
	}
}

func canonicalPlanJSON(cfg *Config, path string) (string, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(cfg.EffectiveCwd, path)
	}

	plan, err := planfile.Load(path)
	if err != nil {
		return "", err
	}

	data, err := plan.ToJSON()
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// printLineDiff emits a line-granular diff with +/- prefixes.
func printLineDiff(o *IO, left, right string) {
	dmp := diffmatchpatch.New()

	leftChars, rightChars, lines := dmp.DiffLinesToChars(left, right)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(leftChars, rightChars, false), lines)

	for _, diff := range diffs {
		prefix := " "

		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffEqual:
			continue
		}

		for _, line := range strings.Split(strings.TrimRight(diff.Text, "\n"), "\n") {
			o.Println(prefix + line)
		}
	}
}
