//go:build cgo

package capi

/*
#include <stdlib.h>
#include "dss_capi_ctx.h"
*/
import "C"

import "github.com/dss-extensions/godss/internal/engine"

func (t *table) CktElementName(h engine.Handle) string {
	return C.GoString(C.ctx_CktElement_Get_Name(t.state(h).ptr))
}

func (t *table) CktElementNumPhases(h engine.Handle) int32 {
	return int32(C.ctx_CktElement_Get_NumPhases(t.state(h).ptr))
}

func (t *table) CktElementNumConductors(h engine.Handle) int32 {
	return int32(C.ctx_CktElement_Get_NumConductors(t.state(h).ptr))
}

func (t *table) CktElementNumTerminals(h engine.Handle) int32 {
	return int32(C.ctx_CktElement_Get_NumTerminals(t.state(h).ptr))
}

func (t *table) CktElementGetBusNames(h engine.Handle) []string {
	var cnt [4]int32
	var data **C.char
	C.ctx_CktElement_Get_BusNames(t.state(h).ptr, &data, (*C.int32_t)(&cnt[0]))
	return t.state(h).stringArray(data, cnt)
}

func (t *table) CktElementSetBusNames(h engine.Handle, value []string) {
	data := prepareStringArray(value)
	C.ctx_CktElement_Set_BusNames(t.state(h).ptr, data, C.int32_t(len(value)))
	freeStringArray(data, len(value))
}

func (t *table) CktElementCurrents(h engine.Handle) []float64 {
	st := t.state(h)
	C.ctx_CktElement_Get_Currents_GR(st.ptr)
	return st.float64ArrayGR()
}

func (t *table) CktElementVoltages(h engine.Handle) []float64 {
	st := t.state(h)
	C.ctx_CktElement_Get_Voltages_GR(st.ptr)
	return st.float64ArrayGR()
}

func (t *table) CktElementPowers(h engine.Handle) []float64 {
	st := t.state(h)
	C.ctx_CktElement_Get_Powers_GR(st.ptr)
	return st.float64ArrayGR()
}

func (t *table) CktElementLosses(h engine.Handle) []float64 {
	st := t.state(h)
	C.ctx_CktElement_Get_Losses_GR(st.ptr)
	return st.float64ArrayGR()
}

func (t *table) CktElementGetEnabled(h engine.Handle) bool {
	return C.ctx_CktElement_Get_Enabled(t.state(h).ptr) != 0
}

func (t *table) CktElementSetEnabled(h engine.Handle, value bool) {
	C.ctx_CktElement_Set_Enabled(t.state(h).ptr, toUint16(value))
}

func (t *table) CktElementAllPropertyNames(h engine.Handle) []string {
	var cnt [4]int32
	var data **C.char
	C.ctx_CktElement_Get_AllPropertyNames(t.state(h).ptr, &data, (*C.int32_t)(&cnt[0]))
	return t.state(h).stringArray(data, cnt)
}
