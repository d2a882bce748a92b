package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dss-extensions/godss/dss"
)

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <script.dss>",
		Short: "Run a DSS script and report node voltages",
		Long: `Run a DSS script file on a fresh engine context, solve it, and print
the per-unit voltage magnitude of every node.

Example:
  godss run ./ieee13.dss`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(rootOpts, args[0], cmd)
		},
	}
}

func runScript(opts *RootOptions, path string, cmd *cobra.Command) error {
	logger, err := opts.Logger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	script, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading script: %w", err)
	}

	d, err := dss.New()
	if err != nil {
		return err
	}
	defer d.Close()

	logger.Info("running script", zap.String("path", path))
	if err := d.Command(string(script)); err != nil {
		return fmt.Errorf("script failed: %w", err)
	}

	circuit := &d.ActiveCircuit
	name, err := circuit.Name()
	if err != nil {
		return err
	}
	nodes, err := circuit.AllNodeNames()
	if err != nil {
		return err
	}
	vmagPu, err := circuit.AllBusVmagPu()
	if err != nil {
		return err
	}
	if len(vmagPu) != len(nodes) {
		return fmt.Errorf("engine returned %d voltages for %d nodes", len(vmagPu), len(nodes))
	}
	logger.Info("solved", zap.String("circuit", name), zap.Int("nodes", len(nodes)))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Circuit: %s\n", name)
	for i, node := range nodes {
		fmt.Fprintf(out, "%-16s %8.4f pu\n", node, vmagPu[i])
	}
	return nil
}
