package cmd

import (
	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/truthtable/internal/report"
	"github.com/DjordjeVuckovic/truthtable/internal/suite"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <suite-file>",
		Short: "Run a YAML or TOML suite of expected results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := suite.LoadFromFile(args[0])
			if err != nil {
				return err
			}

			rpt := suite.Run(s)
			report.WriteSuiteSummary(rpt, cmd.OutOrStdout())
			if !rpt.OK() {
				return errSilent
			}
			return nil
		},
	}
}
