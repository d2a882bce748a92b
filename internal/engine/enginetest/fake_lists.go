package enginetest

import (
	"strings"

	"github.com/dss-extensions/godss/internal/engine"
)

// Loads (active load).

func (c *fakeCtx) load() *fakeLoad {
	if c.activeLoad < 0 || c.activeLoad >= len(c.loads) {
		return nil
	}
	return c.loads[c.activeLoad]
}

// requireLoad reports the active load, raising the engine error the
// real library produces when the list has no active object.
func (c *fakeCtx) requireLoad() *fakeLoad {
	ld := c.load()
	if ld == nil && c.extendedErrors {
		c.setError(ErrNoActiveObject, "No active Load object found.")
	}
	return ld
}

func (f *Fake) LoadsAllNames(h engine.Handle) []string {
	c := f.ctx(h)
	names := make([]string, len(c.loads))
	for i, ld := range c.loads {
		names[i] = ld.name
	}
	return names
}

func (f *Fake) LoadsCount(h engine.Handle) int32 { return int32(len(f.ctx(h).loads)) }

func (f *Fake) LoadsFirst(h engine.Handle) int32 {
	c := f.ctx(h)
	if len(c.loads) == 0 {
		return 0
	}
	c.activeLoad = 0
	c.activeElement = "Load." + c.loads[0].name
	return 1
}

func (f *Fake) LoadsNext(h engine.Handle) int32 {
	c := f.ctx(h)
	if c.activeLoad+1 >= len(c.loads) {
		return 0
	}
	c.activeLoad++
	c.activeElement = "Load." + c.loads[c.activeLoad].name
	return int32(c.activeLoad + 1)
}

func (f *Fake) LoadsGetName(h engine.Handle) string {
	if ld := f.ctx(h).load(); ld != nil {
		return ld.name
	}
	return ""
}

func (f *Fake) LoadsSetName(h engine.Handle, value string) {
	c := f.ctx(h)
	for i, ld := range c.loads {
		if strings.EqualFold(ld.name, value) {
			c.activeLoad = i
			c.activeElement = "Load." + ld.name
			return
		}
	}
	c.setError(ErrBadProperty, "Load \"%s\" not found.", value)
}

func (f *Fake) LoadsGetIdx(h engine.Handle) int32 { return int32(f.ctx(h).activeLoad + 1) }

func (f *Fake) LoadsSetIdx(h engine.Handle, value int32) {
	c := f.ctx(h)
	if value < 1 || int(value) > len(c.loads) {
		c.setError(ErrBadProperty, "Invalid Load index: %d.", value)
		return
	}
	c.activeLoad = int(value - 1)
	c.activeElement = "Load." + c.loads[c.activeLoad].name
}

func (f *Fake) LoadsGetKW(h engine.Handle) float64 {
	if ld := f.ctx(h).load(); ld != nil {
		return ld.kw
	}
	return 0
}

func (f *Fake) LoadsSetKW(h engine.Handle, value float64) {
	if ld := f.ctx(h).requireLoad(); ld != nil {
		ld.kw = value
	}
}

func (f *Fake) LoadsGetKvar(h engine.Handle) float64 {
	if ld := f.ctx(h).load(); ld != nil {
		return ld.kvar
	}
	return 0
}

func (f *Fake) LoadsSetKvar(h engine.Handle, value float64) {
	if ld := f.ctx(h).requireLoad(); ld != nil {
		ld.kvar = value
	}
}

func (f *Fake) LoadsGetKV(h engine.Handle) float64 {
	if ld := f.ctx(h).load(); ld != nil {
		return ld.kv
	}
	return 0
}

func (f *Fake) LoadsSetKV(h engine.Handle, value float64) {
	c := f.ctx(h)
	ld := c.requireLoad()
	if ld == nil {
		return
	}
	if value <= 0 {
		c.setError(ErrBadProperty, "kV must be positive, got %g.", value)
		return
	}
	ld.kv = value
}

func (f *Fake) LoadsGetPF(h engine.Handle) float64 {
	if ld := f.ctx(h).load(); ld != nil {
		return ld.pf
	}
	return 0
}

func (f *Fake) LoadsSetPF(h engine.Handle, value float64) {
	if ld := f.ctx(h).requireLoad(); ld != nil {
		ld.pf = value
	}
}

func (f *Fake) LoadsGetModel(h engine.Handle) int32 {
	if ld := f.ctx(h).load(); ld != nil {
		return ld.model
	}
	return 0
}

func (f *Fake) LoadsSetModel(h engine.Handle, value int32) {
	c := f.ctx(h)
	ld := c.requireLoad()
	if ld == nil {
		return
	}
	if value < 1 || value > 8 {
		c.setError(ErrBadProperty, "Invalid Load model: %d.", value)
		return
	}
	ld.model = value
}

func (f *Fake) LoadsGetStatus(h engine.Handle) int32 {
	if ld := f.ctx(h).load(); ld != nil {
		return ld.status
	}
	return 0
}

func (f *Fake) LoadsSetStatus(h engine.Handle, value int32) {
	if ld := f.ctx(h).requireLoad(); ld != nil {
		ld.status = value
	}
}

func (f *Fake) LoadsGetZIPV(h engine.Handle) []float64 {
	if ld := f.ctx(h).load(); ld != nil {
		out := make([]float64, len(ld.zipv))
		copy(out, ld.zipv)
		return out
	}
	return nil
}

func (f *Fake) LoadsSetZIPV(h engine.Handle, value []float64) {
	if ld := f.ctx(h).requireLoad(); ld != nil {
		ld.zipv = append([]float64(nil), value...)
	}
}

func (f *Fake) LoadsGetDaily(h engine.Handle) string {
	if ld := f.ctx(h).load(); ld != nil {
		return ld.daily
	}
	return ""
}

func (f *Fake) LoadsSetDaily(h engine.Handle, value string) {
	if ld := f.ctx(h).requireLoad(); ld != nil {
		ld.daily = value
	}
}

// Lines (active line).

func (c *fakeCtx) line() *fakeLine {
	if c.activeLine < 0 || c.activeLine >= len(c.lines) {
		return nil
	}
	return c.lines[c.activeLine]
}

func (c *fakeCtx) requireLine() *fakeLine {
	ln := c.line()
	if ln == nil && c.extendedErrors {
		c.setError(ErrNoActiveObject, "No active Line object found.")
	}
	return ln
}

func (f *Fake) LinesAllNames(h engine.Handle) []string {
	c := f.ctx(h)
	names := make([]string, len(c.lines))
	for i, ln := range c.lines {
		names[i] = ln.name
	}
	return names
}

func (f *Fake) LinesCount(h engine.Handle) int32 { return int32(len(f.ctx(h).lines)) }

func (f *Fake) LinesFirst(h engine.Handle) int32 {
	c := f.ctx(h)
	if len(c.lines) == 0 {
		return 0
	}
	c.activeLine = 0
	c.activeElement = "Line." + c.lines[0].name
	return 1
}

func (f *Fake) LinesNext(h engine.Handle) int32 {
	c := f.ctx(h)
	if c.activeLine+1 >= len(c.lines) {
		return 0
	}
	c.activeLine++
	c.activeElement = "Line." + c.lines[c.activeLine].name
	return int32(c.activeLine + 1)
}

func (f *Fake) LinesGetName(h engine.Handle) string {
	if ln := f.ctx(h).line(); ln != nil {
		return ln.name
	}
	return ""
}

func (f *Fake) LinesSetName(h engine.Handle, value string) {
	c := f.ctx(h)
	for i, ln := range c.lines {
		if strings.EqualFold(ln.name, value) {
			c.activeLine = i
			c.activeElement = "Line." + ln.name
			return
		}
	}
	c.setError(ErrBadProperty, "Line \"%s\" not found.", value)
}

func (f *Fake) LinesGetBus1(h engine.Handle) string {
	if ln := f.ctx(h).line(); ln != nil {
		return ln.bus1
	}
	return ""
}

func (f *Fake) LinesSetBus1(h engine.Handle, value string) {
	c := f.ctx(h)
	if ln := c.requireLine(); ln != nil {
		ln.bus1 = value
		c.ensureBus(value)
	}
}

func (f *Fake) LinesGetBus2(h engine.Handle) string {
	if ln := f.ctx(h).line(); ln != nil {
		return ln.bus2
	}
	return ""
}

func (f *Fake) LinesSetBus2(h engine.Handle, value string) {
	c := f.ctx(h)
	if ln := c.requireLine(); ln != nil {
		ln.bus2 = value
		c.ensureBus(value)
	}
}

func (f *Fake) LinesGetLength(h engine.Handle) float64 {
	if ln := f.ctx(h).line(); ln != nil {
		return ln.length
	}
	return 0
}

func (f *Fake) LinesSetLength(h engine.Handle, value float64) {
	c := f.ctx(h)
	ln := c.requireLine()
	if ln == nil {
		return
	}
	if value <= 0 {
		c.setError(ErrBadProperty, "Line length must be positive, got %g.", value)
		return
	}
	ln.length = value
}

func (f *Fake) LinesGetPhases(h engine.Handle) int32 {
	if ln := f.ctx(h).line(); ln != nil {
		return ln.phases
	}
	return 0
}

func (f *Fake) LinesSetPhases(h engine.Handle, value int32) {
	c := f.ctx(h)
	ln := c.requireLine()
	if ln == nil {
		return
	}
	if value < 1 {
		c.setError(ErrBadProperty, "Invalid number of phases: %d.", value)
		return
	}
	ln.phases = value
}

func (f *Fake) LinesGetR1(h engine.Handle) float64 {
	if ln := f.ctx(h).line(); ln != nil {
		return ln.r1
	}
	return 0
}

func (f *Fake) LinesSetR1(h engine.Handle, value float64) {
	if ln := f.ctx(h).requireLine(); ln != nil {
		ln.r1 = value
	}
}

func (f *Fake) LinesGetX1(h engine.Handle) float64 {
	if ln := f.ctx(h).line(); ln != nil {
		return ln.x1
	}
	return 0
}

func (f *Fake) LinesSetX1(h engine.Handle, value float64) {
	if ln := f.ctx(h).requireLine(); ln != nil {
		ln.x1 = value
	}
}

func (f *Fake) LinesGetUnits(h engine.Handle) int32 {
	if ln := f.ctx(h).line(); ln != nil {
		return ln.units
	}
	return 0
}

func (f *Fake) LinesSetUnits(h engine.Handle, value int32) {
	c := f.ctx(h)
	ln := c.requireLine()
	if ln == nil {
		return
	}
	if value < 0 || value > 8 {
		c.setError(ErrBadProperty, "Invalid line units code: %d.", value)
		return
	}
	ln.units = value
}

func (f *Fake) LinesGetRmatrix(h engine.Handle) []float64 {
	if ln := f.ctx(h).line(); ln != nil {
		out := make([]float64, len(ln.rmatrix))
		copy(out, ln.rmatrix)
		return out
	}
	return nil
}

func (f *Fake) LinesSetRmatrix(h engine.Handle, value []float64) {
	if ln := f.ctx(h).requireLine(); ln != nil {
		ln.rmatrix = append([]float64(nil), value...)
	}
}

func (f *Fake) LinesGetXmatrix(h engine.Handle) []float64 {
	if ln := f.ctx(h).line(); ln != nil {
		out := make([]float64, len(ln.xmatrix))
		copy(out, ln.xmatrix)
		return out
	}
	return nil
}

func (f *Fake) LinesSetXmatrix(h engine.Handle, value []float64) {
	if ln := f.ctx(h).requireLine(); ln != nil {
		ln.xmatrix = append([]float64(nil), value...)
	}
}

// Meters (active energy meter).

func (c *fakeCtx) meter() *fakeMeter {
	if c.activeMeter < 0 || c.activeMeter >= len(c.meters) {
		return nil
	}
	return c.meters[c.activeMeter]
}

func (f *Fake) MetersAllNames(h engine.Handle) []string {
	c := f.ctx(h)
	names := make([]string, len(c.meters))
	for i, m := range c.meters {
		names[i] = m.name
	}
	return names
}

func (f *Fake) MetersCount(h engine.Handle) int32 { return int32(len(f.ctx(h).meters)) }

func (f *Fake) MetersName(h engine.Handle) string {
	if m := f.ctx(h).meter(); m != nil {
		return m.name
	}
	return ""
}

func (f *Fake) MetersFirst(h engine.Handle) int32 {
	c := f.ctx(h)
	if len(c.meters) == 0 {
		return 0
	}
	c.activeMeter = 0
	return 1
}

func (f *Fake) MetersNext(h engine.Handle) int32 {
	c := f.ctx(h)
	if c.activeMeter+1 >= len(c.meters) {
		return 0
	}
	c.activeMeter++
	return int32(c.activeMeter + 1)
}

func (f *Fake) MetersRegisterNames(h engine.Handle) []string {
	if f.ctx(h).meter() == nil {
		return nil
	}
	out := make([]string, len(meterRegisterNames))
	copy(out, meterRegisterNames)
	return out
}

func (f *Fake) MetersRegisterValues(h engine.Handle) []float64 {
	if m := f.ctx(h).meter(); m != nil {
		out := make([]float64, len(m.registers))
		copy(out, m.registers)
		return out
	}
	return nil
}

func (f *Fake) MetersTotals(h engine.Handle) []float64 {
	c := f.ctx(h)
	totals := make([]float64, len(meterRegisterNames))
	for _, m := range c.meters {
		for i, v := range m.registers {
			totals[i] += v
		}
	}
	return totals
}

func (f *Fake) MetersResetAll(h engine.Handle) {
	for _, m := range f.ctx(h).meters {
		for i := range m.registers {
			m.registers[i] = 0
		}
	}
}

func (f *Fake) MetersSampleAll(h engine.Handle) {}

func (f *Fake) MetersSaveAll(h engine.Handle) {}

// ActiveClass.

func (f *Fake) classMembers(h engine.Handle) []string {
	c := f.ctx(h)
	switch strings.ToLower(c.activeClass) {
	case "load":
		return f.LoadsAllNames(h)
	case "line":
		return f.LinesAllNames(h)
	case "energymeter":
		return f.MetersAllNames(h)
	}
	return nil
}

func (f *Fake) ActiveClassAllNames(h engine.Handle) []string {
	return f.classMembers(h)
}

func (f *Fake) ActiveClassCount(h engine.Handle) int32 {
	return int32(len(f.classMembers(h)))
}

func (f *Fake) ActiveClassFirst(h engine.Handle) int32 {
	c := f.ctx(h)
	if len(f.classMembers(h)) == 0 {
		return 0
	}
	c.classPos = 0
	return 1
}

func (f *Fake) ActiveClassNext(h engine.Handle) int32 {
	c := f.ctx(h)
	if c.classPos+1 >= len(f.classMembers(h)) {
		return 0
	}
	c.classPos++
	return int32(c.classPos + 1)
}

func (f *Fake) ActiveClassGetName(h engine.Handle) string {
	members := f.classMembers(h)
	c := f.ctx(h)
	if c.classPos >= 0 && c.classPos < len(members) {
		return members[c.classPos]
	}
	return ""
}

func (f *Fake) ActiveClassSetName(h engine.Handle, value string) {
	c := f.ctx(h)
	for i, name := range f.classMembers(h) {
		if strings.EqualFold(name, value) {
			c.classPos = i
			return
		}
	}
	c.setError(ErrBadProperty, "Object \"%s\" not found in active class.", value)
}

func (f *Fake) ActiveClassNumElements(h engine.Handle) int32 {
	return int32(len(f.classMembers(h)))
}

func (f *Fake) ActiveClassActiveClassName(h engine.Handle) string {
	return f.ctx(h).activeClass
}

func (f *Fake) ActiveClassActiveClassParent(h engine.Handle) string {
	switch strings.ToLower(f.ctx(h).activeClass) {
	case "load", "generator":
		return "TPCElement"
	case "line", "transformer", "capacitor":
		return "TPDElement"
	case "energymeter", "monitor":
		return "TMeterElement"
	}
	return ""
}
