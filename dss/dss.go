// Package dss is a typed Go binding for the OpenDSS engine exposed by
// the DSS C-API library. Each IDSS instance owns one engine context;
// independent contexts may be used in parallel from separate
// goroutines. Every operation polls the engine's error state before
// returning, so failures surface as ordinary Go errors (see
// EngineError) on the call that caused them.
package dss

import (
	"runtime"
	"sync"

	"github.com/dss-extensions/godss/internal/engine"
	"github.com/dss-extensions/godss/internal/engine/capi"
)

// common is embedded by every interface struct and carries the shared
// context, owned by IDSS.
type common struct {
	ctx *DSSContext
}

func (c *common) initCommon(ctx *DSSContext) { c.ctx = ctx }

// IDSS is the top-level interface to one DSS engine context.
type IDSS struct {
	common

	ActiveCircuit ICircuit
	Text          IText
}

func (dss *IDSS) init(ctx *DSSContext) {
	dss.initCommon(ctx)
	dss.ActiveCircuit.Init(ctx)
	dss.Text.Init(ctx)
}

var (
	engineOnce sync.Once
	engineAPI  engine.API
	engineErr  error
)

// sharedEngine loads the native entry-point table once per process.
func sharedEngine() (engine.API, error) {
	engineOnce.Do(func() {
		engineAPI, engineErr = capi.New()
	})
	return engineAPI, engineErr
}

// New creates an independent DSS engine context. The caller owns it
// and should Close it when done; a finalizer reclaims leaked contexts.
func New() (*IDSS, error) {
	api, err := sharedEngine()
	if err != nil {
		return nil, &InitializationError{Err: err}
	}
	return newContext(api)
}

// Prime returns the process-wide default context of the engine. It is
// shared: Close on it is a no-op, and it is never disposed.
func Prime() (*IDSS, error) {
	api, err := sharedEngine()
	if err != nil {
		return nil, &InitializationError{Err: err}
	}
	return wrap(api, api.Prime(), true), nil
}

// NewWithEngine creates an independent context backed by api instead
// of the loaded native library. The engine package is internal, so
// outside this module New is the only constructor; tests in other
// packages use this to drive the binding against an in-memory engine.
func NewWithEngine(api engine.API) (*IDSS, error) {
	return newContext(api)
}

func newContext(api engine.API) (*IDSS, error) {
	h, err := api.NewContext()
	if err != nil {
		return nil, &InitializationError{Err: err}
	}
	return wrap(api, h, false), nil
}

func wrap(api engine.API, h engine.Handle, prime bool) *IDSS {
	ctx := &DSSContext{api: api, h: h, prime: prime}
	if !prime {
		runtime.SetFinalizer(ctx, (*DSSContext).close)
	}
	dss := &IDSS{}
	dss.init(ctx)
	return dss
}

// NewContext creates another independent context backed by the same
// engine. The OpenDSS engine allows multiple contexts in the same
// process; managing the goroutines that drive them is up to the
// caller.
func (dss *IDSS) NewContext() (*IDSS, error) {
	return newContext(dss.ctx.api)
}

// Close releases the engine context. Closing twice, or closing the
// prime context, is a no-op.
func (dss *IDSS) Close() {
	dss.ctx.close()
}

// Command runs one or more DSS script commands, a shorthand for
// Text.Set_Command.
func (dss *IDSS) Command(value string) error {
	return dss.Text.Set_Command(value)
}

// Get version string for the DSS engine.
func (dss *IDSS) Version() (string, error) {
	return dss.ctx.stringResult(dss.ctx.api.DSSVersion(dss.ctx.h))
}

// Make a new circuit and return the interface to the active circuit.
func (dss *IDSS) NewCircuit(name string) (*ICircuit, error) {
	dss.ctx.api.DSSNewCircuit(dss.ctx.h, name)
	if err := dss.ctx.check(); err != nil {
		return nil, err
	}
	return &dss.ActiveCircuit, nil
}

// Clears all circuit definitions from this context.
func (dss *IDSS) ClearAll() error {
	dss.ctx.api.DSSClearAll(dss.ctx.h)
	return dss.ctx.check()
}

// Number of Circuits currently defined.
func (dss *IDSS) NumCircuits() (int32, error) {
	return dss.ctx.int32Result(dss.ctx.api.DSSNumCircuits(dss.ctx.h))
}

// Number of DSS intrinsic classes.
func (dss *IDSS) NumClasses() (int32, error) {
	return dss.ctx.int32Result(dss.ctx.api.DSSNumClasses(dss.ctx.h))
}

// List of DSS intrinsic classes.
func (dss *IDSS) Classes() ([]string, error) {
	return dss.ctx.stringArrayResult(dss.ctx.api.DSSClasses(dss.ctx.h))
}

// Makes the named class the active class; returns its index, or 0 if
// the class does not exist.
func (dss *IDSS) SetActiveClass(name string) (int32, error) {
	return dss.ctx.int32Result(dss.ctx.api.DSSSetActiveClass(dss.ctx.h, name))
}

// DSS variable DataPath: the base directory for engine file output.
func (dss *IDSS) Get_DataPath() (string, error) {
	return dss.ctx.stringResult(dss.ctx.api.DSSGetDataPath(dss.ctx.h))
}

func (dss *IDSS) Set_DataPath(value string) error {
	dss.ctx.api.DSSSetDataPath(dss.ctx.h, value)
	return dss.ctx.check()
}

// Gets/sets whether the engine may change the process working
// directory while running scripts.
func (dss *IDSS) Get_AllowChangeDir() (bool, error) {
	return dss.ctx.boolResult(dss.ctx.api.DSSGetAllowChangeDir(dss.ctx.h))
}

func (dss *IDSS) Set_AllowChangeDir(value bool) error {
	dss.ctx.api.DSSSetAllowChangeDir(dss.ctx.h, value)
	return dss.ctx.check()
}

// Gets/sets whether text output is allowed.
func (dss *IDSS) Get_AllowForms() (bool, error) {
	return dss.ctx.boolResult(dss.ctx.api.DSSGetAllowForms(dss.ctx.h))
}

func (dss *IDSS) Set_AllowForms(value bool) error {
	dss.ctx.api.DSSSetAllowForms(dss.ctx.h, value)
	return dss.ctx.check()
}

// Gets/sets whether the engine aborts a script block on the first
// error instead of running the remaining commands.
func (dss *IDSS) Get_ErrorEarlyAbort() (bool, error) {
	return dss.ctx.boolResult(dss.ctx.api.ErrorGetEarlyAbort(dss.ctx.h))
}

func (dss *IDSS) Set_ErrorEarlyAbort(value bool) error {
	dss.ctx.api.ErrorSetEarlyAbort(dss.ctx.h, value)
	return dss.ctx.check()
}

// Gets/sets whether the engine reports extended error conditions,
// such as accessing properties of an element that is not active.
func (dss *IDSS) Get_ErrorExtendedErrors() (bool, error) {
	return dss.ctx.boolResult(dss.ctx.api.ErrorGetExtendedErrors(dss.ctx.h))
}

func (dss *IDSS) Set_ErrorExtendedErrors(value bool) error {
	dss.ctx.api.ErrorSetExtendedErrors(dss.ctx.h, value)
	return dss.ctx.check()
}
