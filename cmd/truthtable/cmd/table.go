package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/truthtable/internal/report"
	"github.com/DjordjeVuckovic/truthtable/internal/truthtable"
)

const prompt = "enter a logical expression (use ~, &, |, ->, <->): "

// maxJSONVariables bounds --json and --output, which build the full report
// before writing it. The console table streams and has no bound.
const maxJSONVariables = 20

func newTableCmd() *cobra.Command {
	var (
		reverse bool
		color   bool
		asJSON  bool
		output  string
	)

	cmd := &cobra.Command{
		Use:   "table [formula]",
		Short: "Print the truth table of a formula",
		Long: `Print the truth table of a formula. Without an argument a single line
is read from standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formula, err := formulaArg(cmd, args)
			if err != nil {
				return err
			}

			plan, err := truthtable.NewPlan(formula)
			if err != nil {
				return err
			}

			if !asJSON && output == "" {
				return report.StreamTable(plan, reverse, cmd.OutOrStdout(), report.Options{Color: color})
			}

			if n := len(plan.Variables); n > maxJSONVariables {
				return fmt.Errorf("JSON output holds the whole table in memory: %d variables, at most %d allowed", n, maxJSONVariables)
			}
			table := plan.Table(reverse)
			rpt := report.Generate(table)
			rpt.ID = uuid.NewString()
			if output != "" {
				if err := report.WriteJSONFile(rpt, output); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", output)
				return nil
			}
			return report.WriteJSON(rpt, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "start from the all-true row")
	cmd.Flags().BoolVar(&color, "color", false, "colorize the table")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the table as JSON")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the JSON report to a file")
	return cmd
}

// formulaArg returns the first argument or one line of stdin without its
// trailing newline.
func formulaArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		fmt.Fprint(cmd.ErrOrStderr(), prompt)
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read formula: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
