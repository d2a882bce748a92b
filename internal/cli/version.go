package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dss-extensions/godss/dss"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "version",
		Short:         "Print the engine version",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dss.Prime()
			if err != nil {
				return err
			}
			v, err := d.Version()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}
