package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dss-extensions/godss/dss"
	"github.com/dss-extensions/godss/internal/engine/enginetest"
)

func TestSweepConfigParsing(t *testing.T) {
	raw := []byte(`script: ieee13.dss
threads: 4
steps: 10
mult_min: 0.2
mult_max: 1.4
register: Zone Losses kWh
`)
	var cfg SweepConfig
	require.NoError(t, yaml.Unmarshal(raw, &cfg))
	require.NoError(t, cfg.validate())
	require.Equal(t, "ieee13.dss", cfg.Script)
	require.Equal(t, 4, cfg.Threads)
	require.Equal(t, "Zone Losses kWh", cfg.Register)
}

func TestSweepConfigValidate(t *testing.T) {
	valid := SweepConfig{
		Script: "a.dss", Threads: 2, Steps: 5,
		MultMin: 0.5, MultMax: 1.5, Register: "kWh",
	}
	require.NoError(t, valid.validate())

	for name, mutate := range map[string]func(*SweepConfig){
		"missing script":   func(c *SweepConfig) { c.Script = "" },
		"no threads":       func(c *SweepConfig) { c.Threads = 0 },
		"single step":      func(c *SweepConfig) { c.Steps = 1 },
		"inverted range":   func(c *SweepConfig) { c.MultMin, c.MultMax = 1.5, 0.5 },
		"missing register": func(c *SweepConfig) { c.Register = "" },
	} {
		t.Run(name, func(t *testing.T) {
			cfg := valid
			mutate(&cfg)
			require.Error(t, cfg.validate())
		})
	}
}

func TestSweepMultSpansRange(t *testing.T) {
	cfg := SweepConfig{Steps: 5, MultMin: 0.2, MultMax: 1.0}
	require.InDelta(t, 0.2, cfg.mult(0), 1e-12)
	require.InDelta(t, 0.6, cfg.mult(2), 1e-12)
	require.InDelta(t, 1.0, cfg.mult(4), 1e-12)
}

func TestReadRegisterActivatesMeter(t *testing.T) {
	d, err := dss.NewWithEngine(enginetest.New())
	require.NoError(t, err)
	defer d.Close()

	// The load is created after the meter, so the script leaves the
	// engine with no active meter.
	require.NoError(t, d.Command("clear\nnew circuit.feeder\nnew energymeter.m1\nnew load.l1 bus1=b2 kw=100\nsolve"))

	value, err := readRegister(&d.ActiveCircuit, "Zone Losses kWh")
	require.NoError(t, err)
	require.Equal(t, 10.0, value)

	_, err = readRegister(&d.ActiveCircuit, "No Such Register")
	require.Error(t, err)
}
