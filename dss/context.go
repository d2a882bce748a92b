package dss

import (
	"runtime"
	"sync"

	"github.com/dss-extensions/godss/internal/engine"
)

// DSSContext owns one engine context handle. All interface structs of
// an IDSS instance share the same DSSContext; the context is released
// by Close exactly once. The prime context is process-wide and is
// never disposed.
type DSSContext struct {
	api   engine.API
	h     engine.Handle
	prime bool

	mu     sync.Mutex
	closed bool
}

// check polls the context's error cell after an engine call. A zero
// error number means success; otherwise the number and description are
// captured into an EngineError and the cell is cleared, so each error
// is observed exactly once, by the operation that caused it.
func (ctx *DSSContext) check() error {
	code := ctx.api.ErrorNumber(ctx.h)
	if code == 0 {
		return nil
	}
	msg := ctx.api.ErrorDescription(ctx.h)
	ctx.api.ClearError(ctx.h)
	return &EngineError{Code: code, Message: msg}
}

// close disposes the engine context. Safe to call more than once; a
// no-op for the prime context.
func (ctx *DSSContext) close() {
	if ctx.prime {
		return
	}
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	if ctx.closed {
		return
	}
	ctx.closed = true
	runtime.SetFinalizer(ctx, nil)
	ctx.api.Dispose(ctx.h)
}

// Result helpers: each takes the value an engine call just produced,
// polls the error cell, and discards the value if the call failed.

func (ctx *DSSContext) stringResult(v string) (string, error) {
	if err := ctx.check(); err != nil {
		return "", err
	}
	return v, nil
}

func (ctx *DSSContext) float64Result(v float64) (float64, error) {
	if err := ctx.check(); err != nil {
		return 0, err
	}
	return v, nil
}

func (ctx *DSSContext) int32Result(v int32) (int32, error) {
	if err := ctx.check(); err != nil {
		return 0, err
	}
	return v, nil
}

func (ctx *DSSContext) boolResult(v bool) (bool, error) {
	if err := ctx.check(); err != nil {
		return false, err
	}
	return v, nil
}

func (ctx *DSSContext) float64ArrayResult(v []float64) ([]float64, error) {
	if err := ctx.check(); err != nil {
		return nil, err
	}
	return v, nil
}

func (ctx *DSSContext) int32ArrayResult(v []int32) ([]int32, error) {
	if err := ctx.check(); err != nil {
		return nil, err
	}
	return v, nil
}

func (ctx *DSSContext) stringArrayResult(v []string) ([]string, error) {
	if err := ctx.check(); err != nil {
		return nil, err
	}
	return v, nil
}

// complexResult interprets v as a single re/im pair.
func (ctx *DSSContext) complexResult(op string, v []float64) (complex128, error) {
	if err := ctx.check(); err != nil {
		return 0, err
	}
	if len(v) != 2 {
		return 0, &MarshalError{Op: op, Want: 2, Got: len(v)}
	}
	return complex(v[0], v[1]), nil
}

// complexArrayResult interprets v as interleaved re/im pairs. A
// one-element buffer is the engine's placeholder for an empty complex
// array.
func (ctx *DSSContext) complexArrayResult(op string, v []float64) ([]complex128, error) {
	if err := ctx.check(); err != nil {
		return nil, err
	}
	if len(v) == 1 {
		return []complex128{}, nil
	}
	if len(v)%2 != 0 {
		return nil, &MarshalError{Op: op, Want: len(v) + 1, Got: len(v)}
	}
	result := make([]complex128, len(v)/2)
	for i := range result {
		result[i] = complex(v[2*i], v[2*i+1])
	}
	return result, nil
}
