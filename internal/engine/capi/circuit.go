//go:build cgo

package capi

/*
#include <stdlib.h>
#include "dss_capi_ctx.h"
*/
import "C"

import (
	"unsafe"

	"github.com/dss-extensions/godss/internal/engine"
)

func (t *table) CircuitName(h engine.Handle) string {
	return C.GoString(C.ctx_Circuit_Get_Name(t.state(h).ptr))
}

func (t *table) CircuitNumBuses(h engine.Handle) int32 {
	return int32(C.ctx_Circuit_Get_NumBuses(t.state(h).ptr))
}

func (t *table) CircuitNumNodes(h engine.Handle) int32 {
	return int32(C.ctx_Circuit_Get_NumNodes(t.state(h).ptr))
}

func (t *table) CircuitNumCktElements(h engine.Handle) int32 {
	return int32(C.ctx_Circuit_Get_NumCktElements(t.state(h).ptr))
}

func (t *table) CircuitAllBusNames(h engine.Handle) []string {
	var cnt [4]int32
	var data **C.char
	C.ctx_Circuit_Get_AllBusNames(t.state(h).ptr, &data, (*C.int32_t)(&cnt[0]))
	return t.state(h).stringArray(data, cnt)
}

func (t *table) CircuitAllNodeNames(h engine.Handle) []string {
	var cnt [4]int32
	var data **C.char
	C.ctx_Circuit_Get_AllNodeNames(t.state(h).ptr, &data, (*C.int32_t)(&cnt[0]))
	return t.state(h).stringArray(data, cnt)
}

func (t *table) CircuitAllBusVmag(h engine.Handle) []float64 {
	st := t.state(h)
	C.ctx_Circuit_Get_AllBusVmag_GR(st.ptr)
	return st.float64ArrayGR()
}

func (t *table) CircuitAllBusVmagPu(h engine.Handle) []float64 {
	st := t.state(h)
	C.ctx_Circuit_Get_AllBusVmagPu_GR(st.ptr)
	return st.float64ArrayGR()
}

func (t *table) CircuitAllBusVolts(h engine.Handle) []float64 {
	st := t.state(h)
	C.ctx_Circuit_Get_AllBusVolts_GR(st.ptr)
	return st.float64ArrayGR()
}

func (t *table) CircuitAllElementNames(h engine.Handle) []string {
	var cnt [4]int32
	var data **C.char
	C.ctx_Circuit_Get_AllElementNames(t.state(h).ptr, &data, (*C.int32_t)(&cnt[0]))
	return t.state(h).stringArray(data, cnt)
}

func (t *table) CircuitLosses(h engine.Handle) []float64 {
	st := t.state(h)
	C.ctx_Circuit_Get_Losses_GR(st.ptr)
	return st.float64ArrayGR()
}

func (t *table) CircuitLineLosses(h engine.Handle) []float64 {
	st := t.state(h)
	C.ctx_Circuit_Get_LineLosses_GR(st.ptr)
	return st.float64ArrayGR()
}

func (t *table) CircuitSubstationLosses(h engine.Handle) []float64 {
	st := t.state(h)
	C.ctx_Circuit_Get_SubstationLosses_GR(st.ptr)
	return st.float64ArrayGR()
}

func (t *table) CircuitTotalPower(h engine.Handle) []float64 {
	st := t.state(h)
	C.ctx_Circuit_Get_TotalPower_GR(st.ptr)
	return st.float64ArrayGR()
}

func (t *table) CircuitSetActiveBus(h engine.Handle, name string) int32 {
	nameC := C.CString(name)
	defer C.free(unsafe.Pointer(nameC))
	return int32(C.ctx_Circuit_SetActiveBus(t.state(h).ptr, nameC))
}

func (t *table) CircuitSetActiveBusi(h engine.Handle, idx int32) int32 {
	return int32(C.ctx_Circuit_SetActiveBusi(t.state(h).ptr, C.int32_t(idx)))
}

func (t *table) CircuitSetActiveElement(h engine.Handle, name string) int32 {
	nameC := C.CString(name)
	defer C.free(unsafe.Pointer(nameC))
	return int32(C.ctx_Circuit_SetActiveElement(t.state(h).ptr, nameC))
}

func (t *table) CircuitEnable(h engine.Handle, name string) {
	nameC := C.CString(name)
	C.ctx_Circuit_Enable(t.state(h).ptr, nameC)
	C.free(unsafe.Pointer(nameC))
}

func (t *table) CircuitDisable(h engine.Handle, name string) {
	nameC := C.CString(name)
	C.ctx_Circuit_Disable(t.state(h).ptr, nameC)
	C.free(unsafe.Pointer(nameC))
}

func (t *table) CircuitFirstPCElement(h engine.Handle) int32 {
	return int32(C.ctx_Circuit_FirstPCElement(t.state(h).ptr))
}

func (t *table) CircuitNextPCElement(h engine.Handle) int32 {
	return int32(C.ctx_Circuit_NextPCElement(t.state(h).ptr))
}

func (t *table) CircuitFirstPDElement(h engine.Handle) int32 {
	return int32(C.ctx_Circuit_FirstPDElement(t.state(h).ptr))
}

func (t *table) CircuitNextPDElement(h engine.Handle) int32 {
	return int32(C.ctx_Circuit_NextPDElement(t.state(h).ptr))
}
