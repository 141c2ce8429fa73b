package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Report the compiler and optimization flags a build would use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			choice, err := c.app.Probe(cmd.Context(), runOptions(cmd))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), " Optimization Flags     ...  %s\n", choice.OptimizationFlags)
			return nil
		},
	}
}
