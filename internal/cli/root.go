// Package cli implements the godss command line tool.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
}

// Logger returns the CLI logger: silent by default, a development
// logger under --verbose.
func (opts *RootOptions) Logger() (*zap.Logger, error) {
	if !opts.Verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

// NewRootCommand creates the root command for the godss CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "godss",
		Short: "godss - OpenDSS engine front end",
		Long:  "Run OpenDSS scripts and parallel load-multiplier sweeps through the DSS C-API engine.",
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewSweepCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}
