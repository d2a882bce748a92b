package enginetest

import (
	"strings"

	"github.com/dss-extensions/godss/internal/engine"
)

// CktElement (active circuit element).

var loadPropertyNames = []string{
	"phases", "bus1", "kV", "kW", "pf", "model", "yearly", "daily",
	"duty", "growth", "conn", "kvar", "Rneut", "Xneut", "status",
	"class", "Vminpu", "Vmaxpu", "Vminnorm", "Vminemerg", "xfkVA",
	"allocationfactor", "kVA", "%mean", "%stddev", "CVRwatts",
	"CVRvars", "kwh", "kwhdays", "%pctrate", "%pctreserve", "ZIPV",
}

var linePropertyNames = []string{
	"bus1", "bus2", "linecode", "length", "phases", "r1", "x1", "r0",
	"x0", "C1", "C0", "rmatrix", "xmatrix", "cmatrix", "Switch", "Rg",
	"Xg", "rho", "geometry", "units", "spacing", "wires",
}

func (c *fakeCtx) element() (cls string, load *fakeLoad, line *fakeLine) {
	cls, name, ok := splitFullName(c.activeElement)
	if !ok {
		return "", nil, nil
	}
	switch cls {
	case "load":
		for _, ld := range c.loads {
			if strings.EqualFold(ld.name, name) {
				return cls, ld, nil
			}
		}
	case "line":
		for _, ln := range c.lines {
			if strings.EqualFold(ln.name, name) {
				return cls, nil, ln
			}
		}
	}
	return "", nil, nil
}

func (f *Fake) CktElementName(h engine.Handle) string {
	return f.ctx(h).activeElement
}

func (f *Fake) CktElementNumPhases(h engine.Handle) int32 {
	switch _, ld, ln := f.ctx(h).element(); {
	case ld != nil:
		return 1
	case ln != nil:
		return ln.phases
	}
	return 0
}

func (f *Fake) CktElementNumConductors(h engine.Handle) int32 {
	return f.CktElementNumPhases(h) + 1
}

func (f *Fake) CktElementNumTerminals(h engine.Handle) int32 {
	switch _, ld, ln := f.ctx(h).element(); {
	case ld != nil:
		return 1
	case ln != nil:
		return 2
	}
	return 0
}

func (f *Fake) CktElementGetBusNames(h engine.Handle) []string {
	switch _, ld, ln := f.ctx(h).element(); {
	case ld != nil:
		return []string{ld.bus1}
	case ln != nil:
		return []string{ln.bus1, ln.bus2}
	}
	return nil
}

func (f *Fake) CktElementSetBusNames(h engine.Handle, value []string) {
	switch _, ld, ln := f.ctx(h).element(); {
	case ld != nil && len(value) >= 1:
		ld.bus1 = value[0]
	case ln != nil && len(value) >= 2:
		ln.bus1, ln.bus2 = value[0], value[1]
	}
}

func (f *Fake) CktElementCurrents(h engine.Handle) []float64 {
	n := f.CktElementNumConductors(h) * f.CktElementNumTerminals(h)
	return make([]float64, 2*n)
}

func (f *Fake) CktElementVoltages(h engine.Handle) []float64 {
	n := f.CktElementNumConductors(h) * f.CktElementNumTerminals(h)
	return make([]float64, 2*n)
}

func (f *Fake) CktElementPowers(h engine.Handle) []float64 {
	n := f.CktElementNumConductors(h) * f.CktElementNumTerminals(h)
	out := make([]float64, 2*n)
	if _, ld, _ := f.ctx(h).element(); ld != nil && n > 0 {
		out[0], out[1] = ld.kw, ld.kvar
	}
	return out
}

func (f *Fake) CktElementLosses(h engine.Handle) []float64 {
	if cls, _, _ := f.ctx(h).element(); cls == "" {
		return nil
	}
	return []float64{42.0, 11.5}
}

func (f *Fake) CktElementGetEnabled(h engine.Handle) bool {
	switch _, ld, ln := f.ctx(h).element(); {
	case ld != nil:
		return ld.enabled
	case ln != nil:
		return ln.enabled
	}
	return false
}

func (f *Fake) CktElementSetEnabled(h engine.Handle, value bool) {
	switch _, ld, ln := f.ctx(h).element(); {
	case ld != nil:
		ld.enabled = value
	case ln != nil:
		ln.enabled = value
	}
}

func (f *Fake) CktElementAllPropertyNames(h engine.Handle) []string {
	switch cls, _, _ := f.ctx(h).element(); cls {
	case "load":
		out := make([]string, len(loadPropertyNames))
		copy(out, loadPropertyNames)
		return out
	case "line":
		out := make([]string, len(linePropertyNames))
		copy(out, linePropertyNames)
		return out
	}
	return nil
}

// Solution.

func (f *Fake) SolutionSolve(h engine.Handle) {
	c := f.ctx(h)
	if !c.requireCircuit() {
		return
	}
	c.converged = true
	c.iterations = 2
	c.totalIterations += 2
	c.processTime = 0.5
	for _, m := range c.meters {
		m.registers[12] += 10.0 * c.loadMult
	}
}

func (f *Fake) SolutionGetMode(h engine.Handle) int32 { return f.ctx(h).mode }

func (f *Fake) SolutionSetMode(h engine.Handle, v int32) {
	c := f.ctx(h)
	if v < 0 || v > 17 {
		c.setError(ErrBadProperty, "Invalid solution mode: %d.", v)
		return
	}
	c.mode = v
}

func (f *Fake) SolutionGetNumber(h engine.Handle) int32 { return f.ctx(h).number }

func (f *Fake) SolutionSetNumber(h engine.Handle, v int32) { f.ctx(h).number = v }

func (f *Fake) SolutionGetStepSize(h engine.Handle) float64 { return f.ctx(h).stepSize }

func (f *Fake) SolutionSetStepSize(h engine.Handle, v float64) { f.ctx(h).stepSize = v }

func (f *Fake) SolutionSetStepsizeMin(h engine.Handle, v float64) {
	f.ctx(h).stepSize = v * 60
}

func (f *Fake) SolutionGetHour(h engine.Handle) int32 { return f.ctx(h).hour }

func (f *Fake) SolutionSetHour(h engine.Handle, v int32) {
	c := f.ctx(h)
	c.hour = v
	c.dblHour = float64(v)
}

func (f *Fake) SolutionGetDblHour(h engine.Handle) float64 { return f.ctx(h).dblHour }

func (f *Fake) SolutionSetDblHour(h engine.Handle, v float64) {
	c := f.ctx(h)
	c.dblHour = v
	c.hour = int32(v)
}

func (f *Fake) SolutionGetSeconds(h engine.Handle) float64 { return f.ctx(h).seconds }

func (f *Fake) SolutionSetSeconds(h engine.Handle, v float64) { f.ctx(h).seconds = v }

func (f *Fake) SolutionGetLoadMult(h engine.Handle) float64 { return f.ctx(h).loadMult }

func (f *Fake) SolutionSetLoadMult(h engine.Handle, v float64) { f.ctx(h).loadMult = v }

func (f *Fake) SolutionConverged(h engine.Handle) bool { return f.ctx(h).converged }

func (f *Fake) SolutionIterations(h engine.Handle) int32 { return f.ctx(h).iterations }

func (f *Fake) SolutionGetMaxIterations(h engine.Handle) int32 {
	return f.ctx(h).maxIterations
}

func (f *Fake) SolutionSetMaxIterations(h engine.Handle, v int32) {
	c := f.ctx(h)
	if v < 1 {
		c.setError(ErrBadProperty, "Maxiterations must be a positive integer, got %d.", v)
		return
	}
	c.maxIterations = v
}

func (f *Fake) SolutionGetTolerance(h engine.Handle) float64 { return f.ctx(h).tolerance }

func (f *Fake) SolutionSetTolerance(h engine.Handle, v float64) {
	c := f.ctx(h)
	if v <= 0 {
		c.setError(ErrBadProperty, "Tolerance must be positive, got %g.", v)
		return
	}
	c.tolerance = v
}

func (f *Fake) SolutionGetFrequency(h engine.Handle) float64 { return f.ctx(h).frequency }

func (f *Fake) SolutionSetFrequency(h engine.Handle, v float64) {
	c := f.ctx(h)
	if v <= 0 {
		c.setError(ErrBadProperty, "Frequency must be positive, got %g.", v)
		return
	}
	c.frequency = v
}

func (f *Fake) SolutionGetControlMode(h engine.Handle) int32 { return f.ctx(h).controlMode }

func (f *Fake) SolutionSetControlMode(h engine.Handle, v int32) { f.ctx(h).controlMode = v }

func (f *Fake) SolutionGetMaxControlIterations(h engine.Handle) int32 {
	return f.ctx(h).maxControlIterations
}

func (f *Fake) SolutionSetMaxControlIterations(h engine.Handle, v int32) {
	f.ctx(h).maxControlIterations = v
}

func (f *Fake) SolutionTotalIterations(h engine.Handle) int32 {
	return f.ctx(h).totalIterations
}

func (f *Fake) SolutionProcessTime(h engine.Handle) float64 { return f.ctx(h).processTime }
