package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/truthtable/internal/truthtable"
)

func newEquivCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equiv <left> <right>",
		Short: "Check whether two formulas are equivalent",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := truthtable.Equivalent(args[0], args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.Equivalent {
				fmt.Fprintln(out, "equivalent")
				return nil
			}

			ce := res.Counterexample
			pairs := make([]string, len(res.Variables))
			for j, v := range res.Variables {
				pairs[j] = string(v) + "=" + truthtable.Symbol(ce.Values[j])
			}
			fmt.Fprintf(out, "not equivalent: %s gives %s, %s gives %s at %s\n",
				res.Left, truthtable.Symbol(ce.Left), res.Right, truthtable.Symbol(ce.Right), strings.Join(pairs, " "))
			return errSilent
		},
	}
}
