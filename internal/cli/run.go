package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Run is the process entry point behind main. It parses the global
// flags, resolves configuration, and dispatches to a command. The sig
// channel, when non-nil, cancels the command context; passing nil keeps
// tests free of signal plumbing. Returns the process exit code.
func Run(in io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string, sig <-chan os.Signal) int {
	if len(args) < 2 {
		defaults := DefaultConfig()
		printUsage(out, registry(&defaults))

		return 0
	}

	flags, err := parseGlobalFlags(args[1:])
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	log := zerolog.Nop()
	if flags.debug {
		log = zerolog.New(zerolog.ConsoleWriter{Out: errOut, NoColor: true}).
			With().Timestamp().Logger().
			Level(zerolog.DebugLevel)
	}

	cfg, err := LoadConfig(LoadConfigInput{
		WorkDirOverride:  flags.workDir,
		ConfigPath:       flags.configPath,
		PlanFileOverride: flags.planFile,
		Env:              env,
	})
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	log.Debug().
		Str("cwd", cfg.EffectiveCwd).
		Str("plan", cfg.PlanFileAbs).
		Msg("cli: config resolved")

	commands := registry(&cfg)

	if len(flags.remaining) == 0 {
		printUsage(out, commands)

		return 0
	}

	name := flags.remaining[0]
	if name == "-h" || name == "--help" {
		printUsage(out, commands)

		return 0
	}

	cmd := commands[name]
	if cmd == nil {
		fprintln(errOut, "error: unknown command:", name)
		printUsage(errOut, commands)

		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if sig != nil {
		go func() {
			select {
			case <-sig:
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	o := NewIO(in, out, errOut, log)

	if code := cmd.Run(ctx, o, flags.remaining[1:]); code != 0 {
		return code
	}

	// Warnings collected during the command turn the exit code into 1.
	return o.Finish()
}

// registry builds the command set for the resolved config.
func registry(cfg *Config) map[string]*Command {
	all := []*Command{
		NewCmd(cfg),
		ShowCmd(cfg),
		ValidateCmd(cfg),
		OrderCmd(cfg),
		ReadyCmd(cfg),
		BlockedCmd(cfg),
		OverdueCmd(cfg),
		StartCmd(cfg),
		DoneCmd(cfg),
		BlockCmd(cfg),
		UnblockCmd(cfg),
		ProgressCmd(cfg),
		DiffCmd(cfg),
		PrintConfigCmd(cfg),
	}

	byName := make(map[string]*Command, len(all))
	for _, cmd := range all {
		byName[cmd.Name()] = cmd
	}

	return byName
}

// commandOrder fixes the help listing order.
var commandOrder = []string{
	"new", "show", "validate", "order", "ready", "blocked", "overdue",
	"start", "done", "block", "unblock", "progress", "diff", "print-config",
}

type globalFlags struct {
	workDir    string
	configPath string
	planFile   string
	debug      bool
	remaining  []string
}

// parseGlobalFlags scans leading global flags off args. Scanning stops
// at the first non-flag token, which becomes the command; everything
// after it is left for the command's own flag set.
func parseGlobalFlags(args []string) (globalFlags, error) {
	var flags globalFlags

	i := 0

scan:
	for i < len(args) {
		arg := args[i]

		switch {
		case arg == "-C" || arg == "--cwd":
			value, err := flagValue(args, i, arg)
			if err != nil {
				return globalFlags{}, err
			}

			flags.workDir = value
			i += 2
		case strings.HasPrefix(arg, "-C") && len(arg) > 2:
			flags.workDir = arg[2:]
			i++
		case strings.HasPrefix(arg, "--cwd="):
			flags.workDir = strings.TrimPrefix(arg, "--cwd=")
			i++
		case arg == "-c" || arg == "--config":
			value, err := flagValue(args, i, arg)
			if err != nil {
				return globalFlags{}, err
			}

			flags.configPath = value
			i += 2
		case strings.HasPrefix(arg, "--config="):
			flags.configPath = strings.TrimPrefix(arg, "--config=")
			i++
		case arg == "-p" || arg == "--plan":
			value, err := flagValue(args, i, arg)
			if err != nil {
				return globalFlags{}, err
			}

			flags.planFile = value
			i += 2
		case strings.HasPrefix(arg, "--plan="):
			flags.planFile = strings.TrimPrefix(arg, "--plan=")
			i++
		case arg == "--debug":
			flags.debug = true
			i++
		case arg == "-h" || arg == "--help":
			flags.remaining = []string{"--help"}

			return flags, nil
		case strings.HasPrefix(arg, "-") && arg != "-":
			return globalFlags{}, fmt.Errorf("%w: %s", ErrUnknownFlag, arg)
		default:
			// First non-flag token is the command.
			flags.remaining = args[i:]

			break scan
		}
	}

	return flags, nil
}

// flagValue returns the argument following a value-taking flag.
func flagValue(args []string, i int, flag string) (string, error) {
	if i+1 >= len(args) {
		return "", fmt.Errorf("%w: %s", ErrFlagRequiresArg, flag)
	}

	return args[i+1], nil
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func printUsage(writer io.Writer, commands map[string]*Command) {
	fprintln(writer, `clarity - plan dependency tracking

Usage: clarity [options] <command> [args]

Options:
  -C, --cwd <dir>     Run as if started in <dir>
  -c, --config <file> Use specified config file
  -p, --plan <file>   Use specified plan file
      --debug         Enable debug logging on stderr

Commands:`)

	for _, name := range commandOrder {
		if cmd := commands[name]; cmd != nil {
			fprintln(writer, cmd.HelpLine())
		}
	}
}
