//go:build cgo

package capi

/*
#include <stdlib.h>
#include "dss_capi_ctx.h"
*/
import "C"

import "github.com/dss-extensions/godss/internal/engine"

func (t *table) BusName(h engine.Handle) string {
	return C.GoString(C.ctx_Bus_Get_Name(t.state(h).ptr))
}

func (t *table) BusNumNodes(h engine.Handle) int32 {
	return int32(C.ctx_Bus_Get_NumNodes(t.state(h).ptr))
}

func (t *table) BusNodes(h engine.Handle) []int32 {
	st := t.state(h)
	C.ctx_Bus_Get_Nodes_GR(st.ptr)
	return st.int32ArrayGR()
}

func (t *table) BusKVBase(h engine.Handle) float64 {
	return float64(C.ctx_Bus_Get_kVBase(t.state(h).ptr))
}

func (t *table) BusVoltages(h engine.Handle) []float64 {
	st := t.state(h)
	C.ctx_Bus_Get_Voltages_GR(st.ptr)
	return st.float64ArrayGR()
}

func (t *table) BusSeqVoltages(h engine.Handle) []float64 {
	st := t.state(h)
	C.ctx_Bus_Get_SeqVoltages_GR(st.ptr)
	return st.float64ArrayGR()
}

func (t *table) BusCplxSeqVoltages(h engine.Handle) []float64 {
	st := t.state(h)
	C.ctx_Bus_Get_CplxSeqVoltages_GR(st.ptr)
	return st.float64ArrayGR()
}

func (t *table) BusVMagAngle(h engine.Handle) []float64 {
	st := t.state(h)
	C.ctx_Bus_Get_VMagAngle_GR(st.ptr)
	return st.float64ArrayGR()
}

func (t *table) BusPUVoltages(h engine.Handle) []float64 {
	st := t.state(h)
	C.ctx_Bus_Get_puVoltages_GR(st.ptr)
	return st.float64ArrayGR()
}

func (t *table) BusPUVMagAngle(h engine.Handle) []float64 {
	st := t.state(h)
	C.ctx_Bus_Get_puVmagAngle_GR(st.ptr)
	return st.float64ArrayGR()
}

func (t *table) BusCoorddefined(h engine.Handle) bool {
	return C.ctx_Bus_Get_Coorddefined(t.state(h).ptr) != 0
}

func (t *table) BusGetX(h engine.Handle) float64 {
	return float64(C.ctx_Bus_Get_x(t.state(h).ptr))
}

func (t *table) BusSetX(h engine.Handle, value float64) {
	C.ctx_Bus_Set_x(t.state(h).ptr, C.double(value))
}

func (t *table) BusGetY(h engine.Handle) float64 {
	return float64(C.ctx_Bus_Get_y(t.state(h).ptr))
}

func (t *table) BusSetY(h engine.Handle, value float64) {
	C.ctx_Bus_Set_y(t.state(h).ptr, C.double(value))
}

func (t *table) BusDistance(h engine.Handle) float64 {
	return float64(C.ctx_Bus_Get_Distance(t.state(h).ptr))
}

func (t *table) BusZscRefresh(h engine.Handle) bool {
	return C.ctx_Bus_ZscRefresh(t.state(h).ptr) != 0
}

func (t *table) BusZsc0(h engine.Handle) []float64 {
	st := t.state(h)
	C.ctx_Bus_Get_Zsc0_GR(st.ptr)
	return st.float64ArrayGR()
}

func (t *table) BusZsc1(h engine.Handle) []float64 {
	st := t.state(h)
	C.ctx_Bus_Get_Zsc1_GR(st.ptr)
	return st.float64ArrayGR()
}

func (t *table) BusZscMatrix(h engine.Handle) []float64 {
	st := t.state(h)
	C.ctx_Bus_Get_ZscMatrix_GR(st.ptr)
	return st.float64ArrayGR()
}

func (t *table) BusLoadList(h engine.Handle) []string {
	var cnt [4]int32
	var data **C.char
	C.ctx_Bus_Get_LoadList(t.state(h).ptr, &data, (*C.int32_t)(&cnt[0]))
	return t.state(h).stringArray(data, cnt)
}

func (t *table) BusLineList(h engine.Handle) []string {
	var cnt [4]int32
	var data **C.char
	C.ctx_Bus_Get_LineList(t.state(h).ptr, &data, (*C.int32_t)(&cnt[0]))
	return t.state(h).stringArray(data, cnt)
}

func (t *table) BusAllPCEAtBus(h engine.Handle) []string {
	var cnt [4]int32
	var data **C.char
	C.ctx_Bus_Get_AllPCEatBus(t.state(h).ptr, &data, (*C.int32_t)(&cnt[0]))
	return t.state(h).stringArray(data, cnt)
}

func (t *table) BusAllPDEAtBus(h engine.Handle) []string {
	var cnt [4]int32
	var data **C.char
	C.ctx_Bus_Get_AllPDEatBus(t.state(h).ptr, &data, (*C.int32_t)(&cnt[0]))
	return t.state(h).stringArray(data, cnt)
}
