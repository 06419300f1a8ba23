// Package commands implements the CLI commands for the tinystr corpus tool.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/tinystr/internal/app"
)

// CLI represents the command line interface for the tinystr tool.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "tinystr",
		Short:         "Analyze how much memory token corpora save as compact strings",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newReportCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// SetArgs sets the arguments for the root command.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output writers for the root command.
func (c *CLI) SetOutput(stdout, stderr io.Writer) {
	c.rootCmd.SetOut(stdout)
	c.rootCmd.SetErr(stderr)
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}
