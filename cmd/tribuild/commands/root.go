// Package commands implements the CLI commands for tribuild.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/tribuild/internal/app"
	"go.trai.ch/tribuild/internal/build"
	"go.trai.ch/tribuild/internal/core/domain"
	"go.trai.ch/tribuild/internal/core/ports"
)

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
	Probe(ctx context.Context, opts app.RunOptions) (domain.CompilerChoice, error)
	Render(ctx context.Context, opts app.RunOptions, w io.Writer) error
}

// CLI represents the command line interface for tribuild.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app. Running the root
// command without a subcommand builds the library.
func New(a Application, logger ports.Logger) *CLI {
	c := &CLI{
		app:    a,
		logger: logger,
	}

	rootCmd := &cobra.Command{
		Use:           "tribuild",
		Short:         "Select a compiler and build the Triangle++ library",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				c.logger.SetLevel(domain.LogLevelDebug)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Run(cmd.Context(), runOptions(cmd))
		},
	}

	// Registered before the version flag so -v stays bound to --verbose.
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to settings file (default: ./tribuild.yaml if present)")
	rootCmd.PersistentFlags().Bool("strict", false, "Fail when the build tool exits with a non-zero status")
	rootCmd.PersistentFlags().String("platform", "", "Override host platform detection (e.g. cygwin)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newProbeCmd())
	rootCmd.AddCommand(c.newRenderCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func runOptions(cmd *cobra.Command) app.RunOptions {
	configPath, _ := cmd.Flags().GetString("config")
	strict, _ := cmd.Flags().GetBool("strict")
	platform, _ := cmd.Flags().GetString("platform")
	return app.RunOptions{
		ConfigPath: configPath,
		Strict:     strict,
		Platform:   platform,
	}
}
