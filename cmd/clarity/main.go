// Command clarity tracks a plan of tasks with dependencies: a task
// state machine, dependency-aware ordering and readiness queries, and a
// progress dashboard over a single plan file.
package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/clarityhq/clarity/internal/cli"
)

func main() {
	env := make(map[string]string)

	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	os.Exit(cli.Run(os.Stdin, os.Stdout, os.Stderr, os.Args, env, sig))
}
