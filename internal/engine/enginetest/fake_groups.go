package enginetest

import (
	"math"
	"strconv"
	"strings"

	"github.com/dss-extensions/godss/internal/engine"
)

// Circuit.

func (c *fakeCtx) requireCircuit() bool {
	if !c.hasCircuit {
		c.setError(ErrNoCircuit, "There is no active circuit.")
		return false
	}
	return true
}

func (f *Fake) CircuitName(h engine.Handle) string {
	c := f.ctx(h)
	if !c.requireCircuit() {
		return ""
	}
	return c.circuitName
}

func (f *Fake) CircuitNumBuses(h engine.Handle) int32 {
	return int32(len(f.ctx(h).buses))
}

func (f *Fake) CircuitNumNodes(h engine.Handle) int32 {
	var n int32
	for _, b := range f.ctx(h).buses {
		n += int32(len(b.nodes))
	}
	return n
}

func (f *Fake) CircuitNumCktElements(h engine.Handle) int32 {
	c := f.ctx(h)
	return int32(len(c.loads) + len(c.lines))
}

func (f *Fake) CircuitAllBusNames(h engine.Handle) []string {
	c := f.ctx(h)
	names := make([]string, len(c.buses))
	for i, b := range c.buses {
		names[i] = b.name
	}
	return names
}

func (f *Fake) CircuitAllNodeNames(h engine.Handle) []string {
	var names []string
	for _, b := range f.ctx(h).buses {
		for _, n := range b.nodes {
			names = append(names, b.name+"."+strconv.Itoa(int(n)))
		}
	}
	return names
}

// nodeVmag is the canned per-node voltage magnitude in volts.
func (b *fakeBus) nodeVmag() float64 {
	return b.kvBase * 1000 / math.Sqrt(3)
}

func (f *Fake) CircuitAllBusVmag(h engine.Handle) []float64 {
	var out []float64
	for _, b := range f.ctx(h).buses {
		for range b.nodes {
			out = append(out, b.nodeVmag())
		}
	}
	return out
}

func (f *Fake) CircuitAllBusVmagPu(h engine.Handle) []float64 {
	var out []float64
	for _, b := range f.ctx(h).buses {
		for range b.nodes {
			out = append(out, 1.0)
		}
	}
	return out
}

func (f *Fake) CircuitAllBusVolts(h engine.Handle) []float64 {
	var out []float64
	for _, b := range f.ctx(h).buses {
		for range b.nodes {
			out = append(out, b.nodeVmag(), 0)
		}
	}
	return out
}

func (f *Fake) CircuitAllElementNames(h engine.Handle) []string {
	c := f.ctx(h)
	var names []string
	for _, ld := range c.loads {
		names = append(names, "Load."+ld.name)
	}
	for _, ln := range c.lines {
		names = append(names, "Line."+ln.name)
	}
	return names
}

func (f *Fake) CircuitLosses(h engine.Handle) []float64 {
	if !f.ctx(h).requireCircuit() {
		return nil
	}
	return []float64{12500, 3200}
}

func (f *Fake) CircuitLineLosses(h engine.Handle) []float64 {
	if !f.ctx(h).requireCircuit() {
		return nil
	}
	return []float64{11.2, 2.9}
}

func (f *Fake) CircuitSubstationLosses(h engine.Handle) []float64 {
	if !f.ctx(h).requireCircuit() {
		return nil
	}
	return []float64{1.3, 0.3}
}

func (f *Fake) CircuitTotalPower(h engine.Handle) []float64 {
	c := f.ctx(h)
	if !c.requireCircuit() {
		return nil
	}
	var kw, kvar float64
	for _, ld := range c.loads {
		if ld.enabled {
			kw += ld.kw * c.loadMult
			kvar += ld.kvar * c.loadMult
		}
	}
	return []float64{-kw, -kvar}
}

func (f *Fake) CircuitSetActiveBus(h engine.Handle, name string) int32 {
	c := f.ctx(h)
	name = strings.ToLower(name)
	for i, b := range c.buses {
		if b.name == name {
			c.activeBus = i
			return int32(i)
		}
	}
	c.setError(ErrBadProperty, "Bus \"%s\" not found.", name)
	return -1
}

func (f *Fake) CircuitSetActiveBusi(h engine.Handle, idx int32) int32 {
	c := f.ctx(h)
	if idx < 0 || int(idx) >= len(c.buses) {
		c.setError(ErrBadProperty, "Bus index %d out of range.", idx)
		return -1
	}
	c.activeBus = int(idx)
	return idx
}

func (f *Fake) CircuitSetActiveElement(h engine.Handle, name string) int32 {
	c := f.ctx(h)
	for i, full := range f.CircuitAllElementNames(h) {
		if strings.EqualFold(full, name) {
			c.activeElement = full
			return int32(i)
		}
	}
	c.setError(ErrBadProperty, "Element \"%s\" not found.", name)
	return -1
}

func (c *fakeCtx) findElement(full string) (interface{ setEnabled(bool) }, bool) {
	cls, name, ok := splitFullName(full)
	if !ok {
		return nil, false
	}
	switch cls {
	case "load":
		for _, ld := range c.loads {
			if strings.EqualFold(ld.name, name) {
				return ld, true
			}
		}
	case "line":
		for _, ln := range c.lines {
			if strings.EqualFold(ln.name, name) {
				return ln, true
			}
		}
	}
	return nil, false
}

func (ld *fakeLoad) setEnabled(v bool) { ld.enabled = v }
func (ln *fakeLine) setEnabled(v bool) { ln.enabled = v }

func (f *Fake) CircuitEnable(h engine.Handle, name string) {
	if el, ok := f.ctx(h).findElement(name); ok {
		el.setEnabled(true)
	}
}

func (f *Fake) CircuitDisable(h engine.Handle, name string) {
	if el, ok := f.ctx(h).findElement(name); ok {
		el.setEnabled(false)
	}
}

// PC elements are the loads; PD elements are the lines. Iteration
// returns a 1-based position, 0 when exhausted, like the C API.

func (f *Fake) CircuitFirstPCElement(h engine.Handle) int32 {
	c := f.ctx(h)
	if len(c.loads) == 0 {
		return 0
	}
	c.activeLoad = 0
	c.activeElement = "Load." + c.loads[0].name
	return 1
}

func (f *Fake) CircuitNextPCElement(h engine.Handle) int32 {
	c := f.ctx(h)
	if c.activeLoad+1 >= len(c.loads) {
		return 0
	}
	c.activeLoad++
	c.activeElement = "Load." + c.loads[c.activeLoad].name
	return int32(c.activeLoad + 1)
}

func (f *Fake) CircuitFirstPDElement(h engine.Handle) int32 {
	c := f.ctx(h)
	if len(c.lines) == 0 {
		return 0
	}
	c.activeLine = 0
	c.activeElement = "Line." + c.lines[0].name
	return 1
}

func (f *Fake) CircuitNextPDElement(h engine.Handle) int32 {
	c := f.ctx(h)
	if c.activeLine+1 >= len(c.lines) {
		return 0
	}
	c.activeLine++
	c.activeElement = "Line." + c.lines[c.activeLine].name
	return int32(c.activeLine + 1)
}

// Bus (active bus).

func (c *fakeCtx) bus() *fakeBus {
	if c.activeBus < 0 || c.activeBus >= len(c.buses) {
		return nil
	}
	return c.buses[c.activeBus]
}

func (f *Fake) BusName(h engine.Handle) string {
	if b := f.ctx(h).bus(); b != nil {
		return b.name
	}
	return ""
}

func (f *Fake) BusNumNodes(h engine.Handle) int32 {
	if b := f.ctx(h).bus(); b != nil {
		return int32(len(b.nodes))
	}
	return 0
}

func (f *Fake) BusNodes(h engine.Handle) []int32 {
	if b := f.ctx(h).bus(); b != nil {
		out := make([]int32, len(b.nodes))
		copy(out, b.nodes)
		return out
	}
	return nil
}

func (f *Fake) BusKVBase(h engine.Handle) float64 {
	if b := f.ctx(h).bus(); b != nil {
		return b.kvBase
	}
	return 0
}

func (f *Fake) BusVoltages(h engine.Handle) []float64 {
	b := f.ctx(h).bus()
	if b == nil {
		return nil
	}
	out := make([]float64, 0, 2*len(b.nodes))
	for range b.nodes {
		out = append(out, b.nodeVmag(), 0)
	}
	return out
}

func (f *Fake) BusSeqVoltages(h engine.Handle) []float64 {
	b := f.ctx(h).bus()
	if b == nil {
		return nil
	}
	return []float64{0, b.nodeVmag(), 0}
}

func (f *Fake) BusCplxSeqVoltages(h engine.Handle) []float64 {
	b := f.ctx(h).bus()
	if b == nil {
		return nil
	}
	return []float64{0, 0, b.nodeVmag(), 0, 0, 0}
}

func (f *Fake) BusVMagAngle(h engine.Handle) []float64 {
	b := f.ctx(h).bus()
	if b == nil {
		return nil
	}
	out := make([]float64, 0, 2*len(b.nodes))
	for i := range b.nodes {
		out = append(out, b.nodeVmag(), -120*float64(i))
	}
	return out
}

func (f *Fake) BusPUVoltages(h engine.Handle) []float64 {
	b := f.ctx(h).bus()
	if b == nil {
		return nil
	}
	out := make([]float64, 0, 2*len(b.nodes))
	for range b.nodes {
		out = append(out, 1, 0)
	}
	return out
}

func (f *Fake) BusPUVMagAngle(h engine.Handle) []float64 {
	b := f.ctx(h).bus()
	if b == nil {
		return nil
	}
	out := make([]float64, 0, 2*len(b.nodes))
	for i := range b.nodes {
		out = append(out, 1, -120*float64(i))
	}
	return out
}

func (f *Fake) BusCoorddefined(h engine.Handle) bool {
	if b := f.ctx(h).bus(); b != nil {
		return b.coordSet
	}
	return false
}

func (f *Fake) BusGetX(h engine.Handle) float64 {
	if b := f.ctx(h).bus(); b != nil {
		return b.x
	}
	return 0
}

func (f *Fake) BusSetX(h engine.Handle, v float64) {
	if b := f.ctx(h).bus(); b != nil {
		b.x = v
		b.coordSet = true
	}
}

func (f *Fake) BusGetY(h engine.Handle) float64 {
	if b := f.ctx(h).bus(); b != nil {
		return b.y
	}
	return 0
}

func (f *Fake) BusSetY(h engine.Handle, v float64) {
	if b := f.ctx(h).bus(); b != nil {
		b.y = v
		b.coordSet = true
	}
}

func (f *Fake) BusDistance(h engine.Handle) float64 {
	if b := f.ctx(h).bus(); b != nil {
		return b.distance
	}
	return 0
}

func (f *Fake) BusZscRefresh(h engine.Handle) bool {
	return f.ctx(h).bus() != nil
}

func (f *Fake) BusZsc0(h engine.Handle) []float64 {
	if f.ctx(h).bus() == nil {
		return nil
	}
	return []float64{0.29, 0.88}
}

func (f *Fake) BusZsc1(h engine.Handle) []float64 {
	if f.ctx(h).bus() == nil {
		return nil
	}
	return []float64{0.11, 0.33}
}

func (f *Fake) BusZscMatrix(h engine.Handle) []float64 {
	b := f.ctx(h).bus()
	if b == nil {
		return nil
	}
	n := len(b.nodes)
	out := make([]float64, 2*n*n)
	for i := 0; i < n; i++ {
		out[2*(i*n+i)] = 0.11
		out[2*(i*n+i)+1] = 0.33
	}
	return out
}

func (f *Fake) BusLoadList(h engine.Handle) []string {
	c := f.ctx(h)
	b := c.bus()
	if b == nil {
		return nil
	}
	var names []string
	for _, ld := range c.loads {
		if strings.ToLower(strings.SplitN(ld.bus1, ".", 2)[0]) == b.name {
			names = append(names, "LOAD."+ld.name)
		}
	}
	return names
}

func (f *Fake) BusLineList(h engine.Handle) []string {
	c := f.ctx(h)
	b := c.bus()
	if b == nil {
		return nil
	}
	var names []string
	for _, ln := range c.lines {
		b1 := strings.ToLower(strings.SplitN(ln.bus1, ".", 2)[0])
		b2 := strings.ToLower(strings.SplitN(ln.bus2, ".", 2)[0])
		if b1 == b.name || b2 == b.name {
			names = append(names, "LINE."+ln.name)
		}
	}
	return names
}

func (f *Fake) BusAllPCEAtBus(h engine.Handle) []string {
	return f.BusLoadList(h)
}

func (f *Fake) BusAllPDEAtBus(h engine.Handle) []string {
	return f.BusLineList(h)
}
