package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/truthtable/pkg/config/env"
)

var version = "dev"

// errSilent signals a failure whose message was already printed.
var errSilent = errors.New("command failed")

func NewRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "truthtable",
		Short: "Truth tables for propositional formulas",
		Long: `truthtable validates, evaluates and tabulates propositional formulas.

Propositions are single letters A-Z and a-z. Operators, from highest to
lowest precedence:
  ~    not
  &    and
  |    or
  ->   implies (right associative)
  <->  if and only if`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetLogLoggerLevel(env.LogLevel(logLevel))
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", env.String("LOG_LEVEL", "warn"), "log level (debug, info, warn, error)")

	root.AddCommand(
		newTableCmd(),
		newEvalCmd(),
		newCheckCmd(),
		newEquivCmd(),
		newVersionCmd(),
	)
	return root
}

func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil && !errors.Is(err, errSilent) {
		printError(root, err)
	}
	return err
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
