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

func (t *table) LinesAllNames(h engine.Handle) []string {
	var cnt [4]int32
	var data **C.char
	C.ctx_Lines_Get_AllNames(t.state(h).ptr, &data, (*C.int32_t)(&cnt[0]))
	return t.state(h).stringArray(data, cnt)
}

func (t *table) LinesCount(h engine.Handle) int32 {
	return int32(C.ctx_Lines_Get_Count(t.state(h).ptr))
}

func (t *table) LinesFirst(h engine.Handle) int32 {
	return int32(C.ctx_Lines_Get_First(t.state(h).ptr))
}

func (t *table) LinesNext(h engine.Handle) int32 {
	return int32(C.ctx_Lines_Get_Next(t.state(h).ptr))
}

func (t *table) LinesGetName(h engine.Handle) string {
	return C.GoString(C.ctx_Lines_Get_Name(t.state(h).ptr))
}

func (t *table) LinesSetName(h engine.Handle, value string) {
	valueC := C.CString(value)
	C.ctx_Lines_Set_Name(t.state(h).ptr, valueC)
	C.free(unsafe.Pointer(valueC))
}

func (t *table) LinesGetBus1(h engine.Handle) string {
	return C.GoString(C.ctx_Lines_Get_Bus1(t.state(h).ptr))
}

func (t *table) LinesSetBus1(h engine.Handle, value string) {
	valueC := C.CString(value)
	C.ctx_Lines_Set_Bus1(t.state(h).ptr, valueC)
	C.free(unsafe.Pointer(valueC))
}

func (t *table) LinesGetBus2(h engine.Handle) string {
	return C.GoString(C.ctx_Lines_Get_Bus2(t.state(h).ptr))
}

func (t *table) LinesSetBus2(h engine.Handle, value string) {
	valueC := C.CString(value)
	C.ctx_Lines_Set_Bus2(t.state(h).ptr, valueC)
	C.free(unsafe.Pointer(valueC))
}

func (t *table) LinesGetLength(h engine.Handle) float64 {
	return float64(C.ctx_Lines_Get_Length(t.state(h).ptr))
}

func (t *table) LinesSetLength(h engine.Handle, value float64) {
	C.ctx_Lines_Set_Length(t.state(h).ptr, C.double(value))
}

func (t *table) LinesGetPhases(h engine.Handle) int32 {
	return int32(C.ctx_Lines_Get_Phases(t.state(h).ptr))
}

func (t *table) LinesSetPhases(h engine.Handle, value int32) {
	C.ctx_Lines_Set_Phases(t.state(h).ptr, C.int32_t(value))
}

func (t *table) LinesGetR1(h engine.Handle) float64 {
	return float64(C.ctx_Lines_Get_R1(t.state(h).ptr))
}

func (t *table) LinesSetR1(h engine.Handle, value float64) {
	C.ctx_Lines_Set_R1(t.state(h).ptr, C.double(value))
}

func (t *table) LinesGetX1(h engine.Handle) float64 {
	return float64(C.ctx_Lines_Get_X1(t.state(h).ptr))
}

func (t *table) LinesSetX1(h engine.Handle, value float64) {
	C.ctx_Lines_Set_X1(t.state(h).ptr, C.double(value))
}

func (t *table) LinesGetUnits(h engine.Handle) int32 {
	return int32(C.ctx_Lines_Get_Units(t.state(h).ptr))
}

func (t *table) LinesSetUnits(h engine.Handle, value int32) {
	C.ctx_Lines_Set_Units(t.state(h).ptr, C.int32_t(value))
}

func (t *table) LinesGetRmatrix(h engine.Handle) []float64 {
	st := t.state(h)
	C.ctx_Lines_Get_Rmatrix_GR(st.ptr)
	return st.float64ArrayGR()
}

func (t *table) LinesSetRmatrix(h engine.Handle, value []float64) {
	data, n := float64Ptr(value)
	C.ctx_Lines_Set_Rmatrix(t.state(h).ptr, data, n)
}

func (t *table) LinesGetXmatrix(h engine.Handle) []float64 {
	st := t.state(h)
	C.ctx_Lines_Get_Xmatrix_GR(st.ptr)
	return st.float64ArrayGR()
}

func (t *table) LinesSetXmatrix(h engine.Handle, value []float64) {
	data, n := float64Ptr(value)
	C.ctx_Lines_Set_Xmatrix(t.state(h).ptr, data, n)
}
