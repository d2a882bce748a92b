//go:build cgo

// Package capi implements the engine.API table on top of the native
// DSS C-API shared library (libdss_capi). All cgo usage in the module
// lives in this package.
//
// Building it requires the DSS C-API headers and library; see the
// repository README. Unit tests elsewhere in the module run against
// the in-memory fake instead (CGO_ENABLED=0).
package capi

/*
#cgo LDFLAGS: -ldss_capi -Wl,-rpath,$ORIGIN
#include <stdlib.h>
#include "dss_capi_ctx.h"
*/
import "C"

import (
	"errors"
	"sync"
	"unsafe"

	"github.com/dss-extensions/godss/internal/engine"
)

// ctxState carries the per-context pointers handed out by the native
// library: the raw context pointer, the error-number cell, and the GR
// (global result) buffers that array-valued entry points write into.
type ctxState struct {
	ptr unsafe.Pointer

	errorNumberPtr *int32

	countPtrPDouble  *[4]int32
	countPtrPPChar   *[4]int32
	countPtrPInteger *[4]int32
	countPtrPByte    *[4]int32

	dataPtrPDouble  **float64
	dataPtrPInteger **int32
	dataPtrPByte    **uint8
	dataPtrPPChar   ***C.char
}

// table is the cgo-backed engine.API. It maps Handle values back to
// their ctxState; handles are the native context pointers themselves.
type table struct {
	mu    sync.RWMutex
	ctxs  map[engine.Handle]*ctxState
	prime engine.Handle
}

// New returns the entry-point table backed by the loaded native
// library and starts the prime context.
func New() (engine.API, error) {
	t := &table{ctxs: make(map[engine.Handle]*ctxState)}
	primePtr := C.ctx_Get_Prime()
	if primePtr == nil {
		return nil, errors.New("godss: native library did not provide a prime context")
	}
	t.prime = t.register(primePtr)
	return t, nil
}

// register starts the context and caches its error and GR pointers.
func (t *table) register(ptr unsafe.Pointer) engine.Handle {
	C.ctx_DSS_Start(ptr, 0)

	st := &ctxState{ptr: ptr}
	st.errorNumberPtr = (*int32)(C.ctx_Error_Get_NumberPtr(ptr))
	C.ctx_DSS_GetGRPointers(
		ptr,
		&st.dataPtrPPChar,
		(***C.double)(unsafe.Pointer(&st.dataPtrPDouble)),
		(***C.int32_t)(unsafe.Pointer(&st.dataPtrPInteger)),
		(***C.int8_t)(unsafe.Pointer(&st.dataPtrPByte)),
		(**C.int32_t)(unsafe.Pointer(&st.countPtrPPChar)),
		(**C.int32_t)(unsafe.Pointer(&st.countPtrPDouble)),
		(**C.int32_t)(unsafe.Pointer(&st.countPtrPInteger)),
		(**C.int32_t)(unsafe.Pointer(&st.countPtrPByte)),
	)

	h := engine.Handle(uintptr(ptr))
	t.mu.Lock()
	t.ctxs[h] = st
	t.mu.Unlock()
	return h
}

func (t *table) state(h engine.Handle) *ctxState {
	t.mu.RLock()
	st := t.ctxs[h]
	t.mu.RUnlock()
	if st == nil {
		panic("godss/capi: operation on unknown or disposed context handle")
	}
	return st
}

func (t *table) Prime() engine.Handle {
	return t.prime
}

func (t *table) NewContext() (engine.Handle, error) {
	ptr := C.ctx_New()
	if ptr == nil {
		return 0, errors.New("godss: could not create a new DSS context")
	}
	return t.register(ptr), nil
}

func (t *table) Dispose(h engine.Handle) {
	st := t.state(h)
	t.mu.Lock()
	delete(t.ctxs, h)
	t.mu.Unlock()
	C.ctx_Dispose(st.ptr)
}

// Error cell.

func (t *table) ErrorNumber(h engine.Handle) int32 {
	return *t.state(h).errorNumberPtr
}

func (t *table) ErrorDescription(h engine.Handle) string {
	return C.GoString(C.ctx_Error_Get_Description(t.state(h).ptr))
}

func (t *table) ClearError(h engine.Handle) {
	*t.state(h).errorNumberPtr = 0
}

func (t *table) ErrorGetEarlyAbort(h engine.Handle) bool {
	return C.ctx_Error_Get_EarlyAbort(t.state(h).ptr) != 0
}

func (t *table) ErrorSetEarlyAbort(h engine.Handle, value bool) {
	C.ctx_Error_Set_EarlyAbort(t.state(h).ptr, toUint16(value))
}

func (t *table) ErrorGetExtendedErrors(h engine.Handle) bool {
	return C.ctx_Error_Get_ExtendedErrors(t.state(h).ptr) != 0
}

func (t *table) ErrorSetExtendedErrors(h engine.Handle, value bool) {
	C.ctx_Error_Set_ExtendedErrors(t.state(h).ptr, toUint16(value))
}

// Marshaling helpers. Array results are copied out of the engine's GR
// buffers into fresh Go slices; engine-allocated char** results are
// copied and then released through the engine's own deallocator.

func toUint16(v bool) C.uint16_t {
	if v {
		return 1
	}
	return 0
}

func (st *ctxState) float64ArrayGR() []float64 {
	n := (*st.countPtrPDouble)[0]
	result := make([]float64, n)
	copy(result, unsafe.Slice(*st.dataPtrPDouble, n))
	return result
}

func (st *ctxState) int32ArrayGR() []int32 {
	n := (*st.countPtrPInteger)[0]
	result := make([]int32, n)
	copy(result, unsafe.Slice(*st.dataPtrPInteger, n))
	return result
}

func (st *ctxState) stringArray(data **C.char, cnt [4]int32) []string {
	n := cnt[0]
	cdata := unsafe.Slice(data, n)
	result := make([]string, n)
	for i := int32(0); i < n; i++ {
		result[i] = C.GoString(cdata[i])
	}
	C.DSS_Dispose_PPAnsiChar(&data, (C.int32_t)(cnt[0]))
	return result
}

// prepareStringArray builds an engine-consumable char** from Go
// strings. The result must be released with freeStringArray.
func prepareStringArray(value []string) **C.char {
	data := (**C.char)(C.malloc(C.size_t(len(value)) * C.size_t(unsafe.Sizeof(uintptr(0)))))
	cdata := unsafe.Slice(data, len(value))
	for i := range value {
		cdata[i] = C.CString(value[i])
	}
	return data
}

func freeStringArray(data **C.char, count int) {
	cdata := unsafe.Slice(data, count)
	for i := 0; i < count; i++ {
		C.free(unsafe.Pointer(cdata[i]))
	}
	C.free(unsafe.Pointer(data))
}

func float64Ptr(value []float64) (*C.double, C.int32_t) {
	if len(value) == 0 {
		return nil, 0
	}
	return (*C.double)(unsafe.Pointer(&value[0])), C.int32_t(len(value))
}
