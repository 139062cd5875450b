package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

// PrintConfigCmd returns the print-config command.
func PrintConfigCmd(cfg *Config) *Command {
	fs := flag.NewFlagSet("print-config", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "print-config",
		Short: "Show resolved configuration",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			formatted, err := FormatConfig(*cfg)
			if err != nil {
				return err
			}

			o.Println(formatted)

			o.Println("")
			o.Println("# Sources:")

			if cfg.Sources.Global != "" {
				o.Println("#   global:", cfg.Sources.Global)
			}

			if cfg.Sources.Project != "" {
				o.Println("#   project:", cfg.Sources.Project)
			}

			if cfg.Sources.Global == "" && cfg.Sources.Project == "" {
				o.Println("#   (using defaults only)")
			}

			return nil
		},
	}
}
