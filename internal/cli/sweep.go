package cli

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/dss-extensions/godss/dss"
)

// SweepConfig describes a parallel load-multiplier sweep.
type SweepConfig struct {
	// Script is the path of the DSS script that builds the circuit.
	Script string `yaml:"script"`
	// Threads is the number of workers; each owns its own engine
	// context.
	Threads int `yaml:"threads"`
	// Steps is the number of load multiplier points between MultMin
	// and MultMax, inclusive.
	Steps   int     `yaml:"steps"`
	MultMin float64 `yaml:"mult_min"`
	MultMax float64 `yaml:"mult_max"`
	// Register is the energy meter register to collect, by name.
	Register string `yaml:"register"`
}

func (c *SweepConfig) validate() error {
	switch {
	case c.Script == "":
		return fmt.Errorf("sweep config: script is required")
	case c.Threads < 1:
		return fmt.Errorf("sweep config: threads must be at least 1, got %d", c.Threads)
	case c.Steps < 2:
		return fmt.Errorf("sweep config: steps must be at least 2, got %d", c.Steps)
	case c.MultMax <= c.MultMin:
		return fmt.Errorf("sweep config: mult_max (%g) must exceed mult_min (%g)", c.MultMax, c.MultMin)
	case c.Register == "":
		return fmt.Errorf("sweep config: register is required")
	}
	return nil
}

func (c *SweepConfig) mult(step int) float64 {
	return c.MultMin + (c.MultMax-c.MultMin)*float64(step)/float64(c.Steps-1)
}

// NewSweepCommand creates the sweep command.
func NewSweepCommand(rootOpts *RootOptions) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run a parallel load-multiplier sweep",
		Long: `Solve the same circuit at a range of load multipliers, spread over
parallel workers. Each worker owns an independent engine context, runs
the script once, then consumes multiplier steps: set the multiplier,
solve in daily mode, and read the configured energy meter register.

Example:
  godss sweep -c sweep.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(rootOpts, configPath, cmd)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to sweep YAML config (required)")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

type sweepResult struct {
	step  int
	mult  float64
	value float64
	err   error
}

func runSweep(opts *RootOptions, configPath string, cmd *cobra.Command) error {
	logger, err := opts.Logger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	raw, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("reading sweep config: %w", err)
	}
	var cfg SweepConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("parsing sweep config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	script, err := os.ReadFile(cfg.Script)
	if err != nil {
		return fmt.Errorf("reading script: %w", err)
	}

	logger.Info("starting sweep",
		zap.Int("threads", cfg.Threads),
		zap.Int("steps", cfg.Steps),
		zap.Float64("mult_min", cfg.MultMin),
		zap.Float64("mult_max", cfg.MultMax),
		zap.String("register", cfg.Register))

	jobs := make(chan int)
	results := make(chan sweepResult)

	var wg sync.WaitGroup
	for w := 0; w < cfg.Threads; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			sweepWorker(logger.With(zap.Int("worker", worker)), &cfg, string(script), jobs, results)
		}(w)
	}
	go func() {
		for step := 0; step < cfg.Steps; step++ {
			jobs <- step
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	collected := make([]sweepResult, 0, cfg.Steps)
	for res := range results {
		if res.err != nil {
			return fmt.Errorf("step %d (mult %.3f): %w", res.step, res.mult, res.err)
		}
		collected = append(collected, res)
	}
	sort.Slice(collected, func(i, j int) bool { return collected[i].step < collected[j].step })

	out := cmd.OutOrStdout()
	var total float64
	for _, res := range collected {
		total += res.value
		fmt.Fprintf(out, "mult %.3f  %s = %.4f\n", res.mult, cfg.Register, res.value)
	}
	fmt.Fprintf(out, "average %s over %d steps: %.4f\n", cfg.Register, len(collected), total/float64(len(collected)))
	return nil
}

// sweepWorker owns one engine context for its whole lifetime and
// solves the steps it receives.
func sweepWorker(logger *zap.Logger, cfg *SweepConfig, script string, jobs <-chan int, results chan<- sweepResult) {
	fail := func(step int, err error) {
		results <- sweepResult{step: step, mult: cfg.mult(step), err: err}
	}

	d, err := dss.New()
	if err != nil {
		for step := range jobs {
			fail(step, err)
		}
		return
	}
	defer d.Close()

	circuit := &d.ActiveCircuit
	for step := range jobs {
		mult := cfg.mult(step)
		if err := d.Command(script); err != nil {
			fail(step, err)
			continue
		}
		if err := circuit.Solution.Set_Mode(dss.SolveModes_Daily); err != nil {
			fail(step, err)
			continue
		}
		if err := circuit.Solution.Set_LoadMult(mult); err != nil {
			fail(step, err)
			continue
		}
		if err := circuit.Solution.Solve(); err != nil {
			fail(step, err)
			continue
		}
		value, err := readRegister(circuit, cfg.Register)
		if err != nil {
			fail(step, err)
			continue
		}
		logger.Debug("step solved", zap.Int("step", step), zap.Float64("mult", mult), zap.Float64("value", value))
		results <- sweepResult{step: step, mult: mult, value: value}
	}
}

// readRegister returns the total of the named register across all
// energy meters in the circuit.
func readRegister(circuit *dss.ICircuit, register string) (float64, error) {
	// RegisterNames reads the active meter, which the script may have
	// left pointing at another object class.
	if _, err := circuit.Meters.First(); err != nil {
		return 0, err
	}
	names, err := circuit.Meters.RegisterNames()
	if err != nil {
		return 0, err
	}
	totals, err := circuit.Meters.Totals()
	if err != nil {
		return 0, err
	}
	for i, name := range names {
		if name == register {
			if i >= len(totals) {
				break
			}
			return totals[i], nil
		}
	}
	return 0, fmt.Errorf("energy meter register %q not found", register)
}
