package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/truthtable/internal/eval"
	"github.com/DjordjeVuckovic/truthtable/internal/truthtable"
	"github.com/DjordjeVuckovic/truthtable/pkg/utils"
)

func newEvalCmd() *cobra.Command {
	var assign string

	cmd := &cobra.Command{
		Use:   "eval <formula>",
		Short: "Evaluate a formula under one assignment",
		Long: `Evaluate a formula under one assignment. Letters not listed in
--assign are false.`,
		Example: `  truthtable eval "A->B" --assign A=1,B=0`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseAssignment(assign)
			if err != nil {
				return err
			}

			plan, err := truthtable.NewPlan(args[0])
			if err != nil {
				return err
			}
			result, err := eval.Evaluate(plan.Tokens, values)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), truthtable.Symbol(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&assign, "assign", "a", "", "comma separated letter=value pairs (1/0, true/false, V/F)")
	return cmd
}

func parseAssignment(s string) (*eval.Assignment, error) {
	var values eval.Assignment
	for _, pair := range utils.SplitList(s) {
		name, raw, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || len(name) != 1 {
			return nil, fmt.Errorf("invalid assignment %q, expected letter=value", pair)
		}
		v, err := parseTruth(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid assignment %q: %w", pair, err)
		}
		if err := values.Set(name[0], v); err != nil {
			return nil, err
		}
	}
	return &values, nil
}

func parseTruth(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "1", "t", "v", "true":
		return true, nil
	case "0", "f", "false":
		return false, nil
	default:
		return false, fmt.Errorf("unknown truth value %q", s)
	}
}
