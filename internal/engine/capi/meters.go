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

func (t *table) MetersAllNames(h engine.Handle) []string {
	var cnt [4]int32
	var data **C.char
	C.ctx_Meters_Get_AllNames(t.state(h).ptr, &data, (*C.int32_t)(&cnt[0]))
	return t.state(h).stringArray(data, cnt)
}

func (t *table) MetersCount(h engine.Handle) int32 {
	return int32(C.ctx_Meters_Get_Count(t.state(h).ptr))
}

func (t *table) MetersName(h engine.Handle) string {
	return C.GoString(C.ctx_Meters_Get_Name(t.state(h).ptr))
}

func (t *table) MetersFirst(h engine.Handle) int32 {
	return int32(C.ctx_Meters_Get_First(t.state(h).ptr))
}

func (t *table) MetersNext(h engine.Handle) int32 {
	return int32(C.ctx_Meters_Get_Next(t.state(h).ptr))
}

func (t *table) MetersRegisterNames(h engine.Handle) []string {
	var cnt [4]int32
	var data **C.char
	C.ctx_Meters_Get_RegisterNames(t.state(h).ptr, &data, (*C.int32_t)(&cnt[0]))
	return t.state(h).stringArray(data, cnt)
}

func (t *table) MetersRegisterValues(h engine.Handle) []float64 {
	st := t.state(h)
	C.ctx_Meters_Get_RegisterValues_GR(st.ptr)
	return st.float64ArrayGR()
}

func (t *table) MetersTotals(h engine.Handle) []float64 {
	st := t.state(h)
	C.ctx_Meters_Get_Totals_GR(st.ptr)
	return st.float64ArrayGR()
}

func (t *table) MetersResetAll(h engine.Handle) {
	C.ctx_Meters_ResetAll(t.state(h).ptr)
}

func (t *table) MetersSampleAll(h engine.Handle) {
	C.ctx_Meters_SampleAll(t.state(h).ptr)
}

func (t *table) MetersSaveAll(h engine.Handle) {
	C.ctx_Meters_SaveAll(t.state(h).ptr)
}

func (t *table) ActiveClassAllNames(h engine.Handle) []string {
	var cnt [4]int32
	var data **C.char
	C.ctx_ActiveClass_Get_AllNames(t.state(h).ptr, &data, (*C.int32_t)(&cnt[0]))
	return t.state(h).stringArray(data, cnt)
}

func (t *table) ActiveClassCount(h engine.Handle) int32 {
	return int32(C.ctx_ActiveClass_Get_Count(t.state(h).ptr))
}

func (t *table) ActiveClassFirst(h engine.Handle) int32 {
	return int32(C.ctx_ActiveClass_Get_First(t.state(h).ptr))
}

func (t *table) ActiveClassNext(h engine.Handle) int32 {
	return int32(C.ctx_ActiveClass_Get_Next(t.state(h).ptr))
}

func (t *table) ActiveClassGetName(h engine.Handle) string {
	return C.GoString(C.ctx_ActiveClass_Get_Name(t.state(h).ptr))
}

func (t *table) ActiveClassSetName(h engine.Handle, value string) {
	valueC := C.CString(value)
	C.ctx_ActiveClass_Set_Name(t.state(h).ptr, valueC)
	C.free(unsafe.Pointer(valueC))
}

func (t *table) ActiveClassNumElements(h engine.Handle) int32 {
	return int32(C.ctx_ActiveClass_Get_NumElements(t.state(h).ptr))
}

func (t *table) ActiveClassActiveClassName(h engine.Handle) string {
	return C.GoString(C.ctx_ActiveClass_Get_ActiveClassName(t.state(h).ptr))
}

func (t *table) ActiveClassActiveClassParent(h engine.Handle) string {
	return C.GoString(C.ctx_ActiveClass_Get_ActiveClassParent(t.state(h).ptr))
}
