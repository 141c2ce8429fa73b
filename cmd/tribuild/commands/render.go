package commands

import "github.com/spf13/cobra"

func (c *CLI) newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Print the generated build descriptor without building",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Render(cmd.Context(), runOptions(cmd), cmd.OutOrStdout())
		},
	}
}
