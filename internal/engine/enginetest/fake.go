// Package enginetest provides an in-memory implementation of
// engine.API for unit tests. It models only the bookkeeping of the
// DSS C-API (contexts, the per-context error cell, object lists and
// their properties) and none of the solver. Numeric results are
// canned values with the correct shapes.
package enginetest

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/dss-extensions/godss/internal/engine"
)

// Error numbers used by the fake. The values are arbitrary but
// stable so tests can assert on them.
const (
	ErrUnknownCommand = 208
	ErrNoCircuit      = 266
	ErrNoActiveObject = 267
	ErrBadProperty    = 611
)

type fakeBus struct {
	name       string
	nodes      []int32
	kvBase     float64
	x, y       float64
	coordSet   bool
	distance   float64
}

type fakeLoad struct {
	name    string
	bus1    string
	enabled bool
	kw      float64
	kvar    float64
	kv      float64
	pf      float64
	model   int32
	status  int32
	zipv    []float64
	daily   string
}

type fakeLine struct {
	name    string
	bus1    string
	bus2    string
	enabled bool
	length  float64
	phases  int32
	r1, x1  float64
	units   int32
	rmatrix []float64
	xmatrix []float64
}

type fakeMeter struct {
	name      string
	registers []float64
}

// meterRegisterNames mirrors the beginning of the energy meter
// register list of the real engine, enough for register lookups.
var meterRegisterNames = []string{
	"kWh", "kvarh", "Max kW", "Max kVA",
	"Zone kWh", "Zone kvarh", "Zone Max kW", "Zone Max kVA",
	"Overload kWh Normal", "Overload kWh Emerg",
	"Load EEN", "Load UE",
	"Zone Losses kWh", "Zone Losses kvarh",
}

type fakeCtx struct {
	errNumber  int32
	errMessage string

	earlyAbort     bool
	extendedErrors bool
	allowChangeDir bool
	allowForms     bool
	dataPath       string

	hasCircuit  bool
	circuitName string
	lastCommand string
	lastResult  string

	buses     []*fakeBus
	activeBus int

	loads      []*fakeLoad
	activeLoad int

	lines      []*fakeLine
	activeLine int

	meters      []*fakeMeter
	activeMeter int

	// activeElement is a full name such as "Load.l1", or "".
	activeElement string

	activeClass string
	classPos    int

	mode                 int32
	number               int32
	stepSize             float64
	hour                 int32
	dblHour              float64
	seconds              float64
	loadMult             float64
	converged            bool
	iterations           int32
	maxIterations        int32
	tolerance            float64
	frequency            float64
	controlMode          int32
	maxControlIterations int32
	totalIterations      int32
	processTime          float64
}

func newFakeCtx() *fakeCtx {
	return &fakeCtx{
		earlyAbort:           true,
		extendedErrors:       true,
		allowChangeDir:       true,
		allowForms:           true,
		activeBus:            -1,
		activeLoad:           -1,
		activeLine:           -1,
		activeMeter:          -1,
		number:               100,
		stepSize:             0.001,
		loadMult:             1.0,
		maxIterations:        15,
		tolerance:            0.0001,
		frequency:            60,
		maxControlIterations: 10,
	}
}

func (c *fakeCtx) setError(number int32, format string, args ...any) {
	c.errNumber = number
	c.errMessage = fmt.Sprintf(format, args...)
}

// Fake implements engine.API in memory.
type Fake struct {
	mu    sync.RWMutex
	ctxs  map[engine.Handle]*fakeCtx
	next  uintptr
	prime engine.Handle

	disposed map[engine.Handle]int

	// NewContextErr, when non-nil, makes the next NewContext call
	// fail with this error (and then resets).
	newContextErr error
}

// New returns a fake engine with its prime context started.
func New() *Fake {
	f := &Fake{
		ctxs:     make(map[engine.Handle]*fakeCtx),
		disposed: make(map[engine.Handle]int),
		next:     1,
	}
	f.prime = f.allocate()
	return f
}

func (f *Fake) allocate() engine.Handle {
	f.mu.Lock()
	defer f.mu.Unlock()
	h := engine.Handle(f.next)
	f.next++
	f.ctxs[h] = newFakeCtx()
	return h
}

func (f *Fake) ctx(h engine.Handle) *fakeCtx {
	f.mu.RLock()
	c := f.ctxs[h]
	f.mu.RUnlock()
	if c == nil {
		panic(fmt.Sprintf("enginetest: operation on unknown or disposed handle %d", h))
	}
	return c
}

// FailNextContext makes the next NewContext call return err.
func (f *Fake) FailNextContext(err error) {
	f.mu.Lock()
	f.newContextErr = err
	f.mu.Unlock()
}

// DisposeCount reports how many times h was disposed.
func (f *Fake) DisposeCount(h engine.Handle) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.disposed[h]
}

// LiveContexts reports the number of not-yet-disposed contexts,
// including prime.
func (f *Fake) LiveContexts() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.ctxs)
}

func (f *Fake) Prime() engine.Handle { return f.prime }

func (f *Fake) NewContext() (engine.Handle, error) {
	f.mu.Lock()
	if err := f.newContextErr; err != nil {
		f.newContextErr = nil
		f.mu.Unlock()
		return 0, err
	}
	f.mu.Unlock()
	return f.allocate(), nil
}

func (f *Fake) Dispose(h engine.Handle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.ctxs[h]; !ok {
		panic(fmt.Sprintf("enginetest: double dispose of handle %d", h))
	}
	delete(f.ctxs, h)
	f.disposed[h]++
}

// Error cell.

func (f *Fake) ErrorNumber(h engine.Handle) int32 { return f.ctx(h).errNumber }

func (f *Fake) ErrorDescription(h engine.Handle) string { return f.ctx(h).errMessage }

func (f *Fake) ClearError(h engine.Handle) {
	c := f.ctx(h)
	c.errNumber = 0
	c.errMessage = ""
}

func (f *Fake) ErrorGetEarlyAbort(h engine.Handle) bool { return f.ctx(h).earlyAbort }

func (f *Fake) ErrorSetEarlyAbort(h engine.Handle, v bool) { f.ctx(h).earlyAbort = v }

func (f *Fake) ErrorGetExtendedErrors(h engine.Handle) bool { return f.ctx(h).extendedErrors }

func (f *Fake) ErrorSetExtendedErrors(h engine.Handle, v bool) { f.ctx(h).extendedErrors = v }

// DSS (top level).

func (f *Fake) DSSVersion(engine.Handle) string {
	return "DSS C-API (fake engine for tests)"
}

func (f *Fake) DSSClearAll(h engine.Handle) {
	c := f.ctx(h)
	*c = *newFakeCtx()
}

func (f *Fake) DSSNewCircuit(h engine.Handle, name string) {
	f.ctx(h).newCircuit(name)
}

func (c *fakeCtx) newCircuit(name string) {
	c.hasCircuit = true
	c.circuitName = name
	c.buses = []*fakeBus{{name: "sourcebus", nodes: []int32{1, 2, 3}, kvBase: station}}
	c.activeBus = 0
	c.loads = nil
	c.activeLoad = -1
	c.lines = nil
	c.activeLine = -1
	c.meters = nil
	c.activeMeter = -1
	c.activeElement = ""
	c.converged = false
}

// station is the default source base kV used for fake buses.
const station = 66.395

func (f *Fake) DSSNumCircuits(h engine.Handle) int32 {
	if f.ctx(h).hasCircuit {
		return 1
	}
	return 0
}

var classNames = []string{"LineCode", "LoadShape", "Line", "Load", "Transformer", "Capacitor", "EnergyMeter", "Monitor"}

func (f *Fake) DSSNumClasses(engine.Handle) int32 { return int32(len(classNames)) }

func (f *Fake) DSSClasses(engine.Handle) []string {
	out := make([]string, len(classNames))
	copy(out, classNames)
	return out
}

func (f *Fake) DSSSetActiveClass(h engine.Handle, name string) int32 {
	c := f.ctx(h)
	for i, cls := range classNames {
		if strings.EqualFold(cls, name) {
			c.activeClass = cls
			return int32(i + 1)
		}
	}
	c.setError(ErrBadProperty, "Class %s not found.", name)
	return 0
}

func (f *Fake) DSSGetDataPath(h engine.Handle) string { return f.ctx(h).dataPath }

func (f *Fake) DSSSetDataPath(h engine.Handle, v string) { f.ctx(h).dataPath = v }

func (f *Fake) DSSGetAllowChangeDir(h engine.Handle) bool { return f.ctx(h).allowChangeDir }

func (f *Fake) DSSSetAllowChangeDir(h engine.Handle, v bool) { f.ctx(h).allowChangeDir = v }

func (f *Fake) DSSGetAllowForms(h engine.Handle) bool { return f.ctx(h).allowForms }

func (f *Fake) DSSSetAllowForms(h engine.Handle, v bool) { f.ctx(h).allowForms = v }

// Text. Commands are dispatched to a minimal interpreter that only
// understands the bookkeeping verbs tests need; everything else sets
// an error, like the real parser would for an unknown command.

func (f *Fake) TextGetCommand(h engine.Handle) string { return f.ctx(h).lastCommand }

func (f *Fake) TextSetCommand(h engine.Handle, value string) {
	c := f.ctx(h)
	c.lastCommand = value
	c.lastResult = ""
	for _, line := range strings.Split(value, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "!") || strings.HasPrefix(line, "//") {
			continue
		}
		c.exec(line)
		if c.errNumber != 0 && c.earlyAbort {
			return
		}
	}
}

func (f *Fake) TextResult(h engine.Handle) string { return f.ctx(h).lastResult }

func (c *fakeCtx) exec(line string) {
	fields := strings.Fields(line)
	verb := strings.ToLower(fields[0])
	switch verb {
	case "clear":
		c.hasCircuit = false
		c.circuitName = ""
		c.buses = nil
		c.loads = nil
		c.lines = nil
		c.meters = nil
		c.activeBus, c.activeLoad, c.activeLine, c.activeMeter = -1, -1, -1, -1
		c.activeElement = ""
	case "new":
		if len(fields) < 2 {
			c.setError(ErrUnknownCommand, "Object name missing in New command.")
			return
		}
		c.execNew(fields[1], fields[2:])
	case "solve":
		if !c.hasCircuit {
			c.setError(ErrNoCircuit, "No circuit defined; cannot solve.")
			return
		}
		c.converged = true
		c.iterations = 2
		c.totalIterations += 2
		for _, m := range c.meters {
			// register 12 is Zone Losses kWh
			m.registers[12] += 10.0 * c.loadMult
		}
	case "set":
		for _, kv := range fields[1:] {
			c.execSet(kv)
			if c.errNumber != 0 {
				return
			}
		}
	case "calcv", "calcvoltagebases":
		if !c.hasCircuit {
			c.setError(ErrNoCircuit, "No circuit defined.")
		}
	default:
		c.setError(ErrUnknownCommand, "Unknown command: \"%s\"", fields[0])
	}
}

func (c *fakeCtx) execNew(fullName string, props []string) {
	cls, name, ok := splitFullName(fullName)
	if !ok {
		c.setError(ErrUnknownCommand, "Object name \"%s\" is not of the form class.name.", fullName)
		return
	}
	kv := parseProps(props)
	switch cls {
	case "circuit":
		c.newCircuit(name)
	case "load":
		if !c.hasCircuit {
			c.setError(ErrNoCircuit, "No circuit defined; cannot add Load.%s.", name)
			return
		}
		ld := &fakeLoad{
			name: name, enabled: true,
			bus1: kv["bus1"], kw: numProp(kv, "kw", 10),
			kvar: numProp(kv, "kvar", 5), kv: numProp(kv, "kv", 12.47),
			pf: numProp(kv, "pf", 0.88), model: 1,
			zipv: make([]float64, 7),
		}
		c.ensureBus(ld.bus1)
		c.loads = append(c.loads, ld)
		c.activeLoad = len(c.loads) - 1
		c.activeElement = "Load." + name
		// creating a non-meter object displaces the active meter
		c.activeMeter = -1
	case "line":
		if !c.hasCircuit {
			c.setError(ErrNoCircuit, "No circuit defined; cannot add Line.%s.", name)
			return
		}
		ln := &fakeLine{
			name: name, enabled: true,
			bus1: kv["bus1"], bus2: kv["bus2"],
			length: numProp(kv, "length", 1), phases: int32(numProp(kv, "phases", 3)),
			r1: 0.058, x1: 0.1206, units: 0,
		}
		c.ensureBus(ln.bus1)
		c.ensureBus(ln.bus2)
		c.lines = append(c.lines, ln)
		c.activeLine = len(c.lines) - 1
		c.activeElement = "Line." + name
		c.activeMeter = -1
	case "energymeter":
		if !c.hasCircuit {
			c.setError(ErrNoCircuit, "No circuit defined; cannot add EnergyMeter.%s.", name)
			return
		}
		c.meters = append(c.meters, &fakeMeter{
			name:      name,
			registers: make([]float64, len(meterRegisterNames)),
		})
		c.activeMeter = len(c.meters) - 1
	default:
		c.setError(ErrUnknownCommand, "Class \"%s\" not supported by the fake engine.", cls)
	}
}

func (c *fakeCtx) execSet(kvpair string) {
	key, value, ok := strings.Cut(kvpair, "=")
	if !ok {
		c.setError(ErrUnknownCommand, "Set option \"%s\" has no value.", kvpair)
		return
	}
	switch strings.ToLower(key) {
	case "mode":
		mode, found := solveModeNames[strings.ToLower(value)]
		if !found {
			c.setError(ErrBadProperty, "Invalid solution mode: \"%s\".", value)
			return
		}
		c.mode = mode
	case "loadmult":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			c.setError(ErrBadProperty, "Invalid loadmult value: \"%s\".", value)
			return
		}
		c.loadMult = v
	case "defaultbasefrequency", "voltagebases":
		// accepted, not modeled
	default:
		c.setError(ErrUnknownCommand, "Unknown Set option: \"%s\".", key)
	}
}

var solveModeNames = map[string]int32{
	"snap": 0, "snapshot": 0, "daily": 1, "yearly": 2, "dutycycle": 6, "time": 16,
}

func (c *fakeCtx) ensureBus(name string) {
	if name == "" {
		return
	}
	// strip node suffixes: "632.1.2.3" -> "632"
	name = strings.ToLower(strings.SplitN(name, ".", 2)[0])
	for _, b := range c.buses {
		if b.name == name {
			return
		}
	}
	c.buses = append(c.buses, &fakeBus{name: name, nodes: []int32{1, 2, 3}, kvBase: 12.47})
}

func splitFullName(s string) (class, name string, ok bool) {
	class, name, ok = strings.Cut(strings.ToLower(s), ".")
	return class, name, ok && class != "" && name != ""
}

func parseProps(fields []string) map[string]string {
	kv := make(map[string]string, len(fields))
	for _, fld := range fields {
		if key, value, ok := strings.Cut(fld, "="); ok {
			kv[strings.ToLower(key)] = value
		}
	}
	return kv
}

func numProp(kv map[string]string, key string, def float64) float64 {
	s, ok := kv[key]
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}
