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

func (t *table) LoadsAllNames(h engine.Handle) []string {
	var cnt [4]int32
	var data **C.char
	C.ctx_Loads_Get_AllNames(t.state(h).ptr, &data, (*C.int32_t)(&cnt[0]))
	return t.state(h).stringArray(data, cnt)
}

func (t *table) LoadsCount(h engine.Handle) int32 {
	return int32(C.ctx_Loads_Get_Count(t.state(h).ptr))
}

func (t *table) LoadsFirst(h engine.Handle) int32 {
	return int32(C.ctx_Loads_Get_First(t.state(h).ptr))
}

func (t *table) LoadsNext(h engine.Handle) int32 {
	return int32(C.ctx_Loads_Get_Next(t.state(h).ptr))
}

func (t *table) LoadsGetName(h engine.Handle) string {
	return C.GoString(C.ctx_Loads_Get_Name(t.state(h).ptr))
}

func (t *table) LoadsSetName(h engine.Handle, value string) {
	valueC := C.CString(value)
	C.ctx_Loads_Set_Name(t.state(h).ptr, valueC)
	C.free(unsafe.Pointer(valueC))
}

func (t *table) LoadsGetIdx(h engine.Handle) int32 {
	return int32(C.ctx_Loads_Get_idx(t.state(h).ptr))
}

func (t *table) LoadsSetIdx(h engine.Handle, value int32) {
	C.ctx_Loads_Set_idx(t.state(h).ptr, C.int32_t(value))
}

func (t *table) LoadsGetKW(h engine.Handle) float64 {
	return float64(C.ctx_Loads_Get_kW(t.state(h).ptr))
}

func (t *table) LoadsSetKW(h engine.Handle, value float64) {
	C.ctx_Loads_Set_kW(t.state(h).ptr, C.double(value))
}

func (t *table) LoadsGetKvar(h engine.Handle) float64 {
	return float64(C.ctx_Loads_Get_kvar(t.state(h).ptr))
}

func (t *table) LoadsSetKvar(h engine.Handle, value float64) {
	C.ctx_Loads_Set_kvar(t.state(h).ptr, C.double(value))
}

func (t *table) LoadsGetKV(h engine.Handle) float64 {
	return float64(C.ctx_Loads_Get_kV(t.state(h).ptr))
}

func (t *table) LoadsSetKV(h engine.Handle, value float64) {
	C.ctx_Loads_Set_kV(t.state(h).ptr, C.double(value))
}

func (t *table) LoadsGetPF(h engine.Handle) float64 {
	return float64(C.ctx_Loads_Get_PF(t.state(h).ptr))
}

func (t *table) LoadsSetPF(h engine.Handle, value float64) {
	C.ctx_Loads_Set_PF(t.state(h).ptr, C.double(value))
}

func (t *table) LoadsGetModel(h engine.Handle) int32 {
	return int32(C.ctx_Loads_Get_Model(t.state(h).ptr))
}

func (t *table) LoadsSetModel(h engine.Handle, value int32) {
	C.ctx_Loads_Set_Model(t.state(h).ptr, C.int32_t(value))
}

func (t *table) LoadsGetStatus(h engine.Handle) int32 {
	return int32(C.ctx_Loads_Get_Status(t.state(h).ptr))
}

func (t *table) LoadsSetStatus(h engine.Handle, value int32) {
	C.ctx_Loads_Set_Status(t.state(h).ptr, C.int32_t(value))
}

func (t *table) LoadsGetZIPV(h engine.Handle) []float64 {
	st := t.state(h)
	C.ctx_Loads_Get_ZIPV_GR(st.ptr)
	return st.float64ArrayGR()
}

func (t *table) LoadsSetZIPV(h engine.Handle, value []float64) {
	data, n := float64Ptr(value)
	C.ctx_Loads_Set_ZIPV(t.state(h).ptr, data, n)
}

func (t *table) LoadsGetDaily(h engine.Handle) string {
	return C.GoString(C.ctx_Loads_Get_daily(t.state(h).ptr))
}

func (t *table) LoadsSetDaily(h engine.Handle, value string) {
	valueC := C.CString(value)
	C.ctx_Loads_Set_daily(t.state(h).ptr, valueC)
	C.free(unsafe.Pointer(valueC))
}
