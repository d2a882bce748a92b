//go:build cgo

package capi

/*
#include <stdlib.h>
#include "dss_capi_ctx.h"
*/
import "C"

import "github.com/dss-extensions/godss/internal/engine"

func (t *table) SolutionSolve(h engine.Handle) {
	C.ctx_Solution_Solve(t.state(h).ptr)
}

func (t *table) SolutionGetMode(h engine.Handle) int32 {
	return int32(C.ctx_Solution_Get_Mode(t.state(h).ptr))
}

func (t *table) SolutionSetMode(h engine.Handle, value int32) {
	C.ctx_Solution_Set_Mode(t.state(h).ptr, C.int32_t(value))
}

func (t *table) SolutionGetNumber(h engine.Handle) int32 {
	return int32(C.ctx_Solution_Get_Number(t.state(h).ptr))
}

func (t *table) SolutionSetNumber(h engine.Handle, value int32) {
	C.ctx_Solution_Set_Number(t.state(h).ptr, C.int32_t(value))
}

func (t *table) SolutionGetStepSize(h engine.Handle) float64 {
	return float64(C.ctx_Solution_Get_StepSize(t.state(h).ptr))
}

func (t *table) SolutionSetStepSize(h engine.Handle, value float64) {
	C.ctx_Solution_Set_StepSize(t.state(h).ptr, C.double(value))
}

func (t *table) SolutionSetStepsizeMin(h engine.Handle, value float64) {
	C.ctx_Solution_Set_StepsizeMin(t.state(h).ptr, C.double(value))
}

func (t *table) SolutionGetHour(h engine.Handle) int32 {
	return int32(C.ctx_Solution_Get_Hour(t.state(h).ptr))
}

func (t *table) SolutionSetHour(h engine.Handle, value int32) {
	C.ctx_Solution_Set_Hour(t.state(h).ptr, C.int32_t(value))
}

func (t *table) SolutionGetDblHour(h engine.Handle) float64 {
	return float64(C.ctx_Solution_Get_dblHour(t.state(h).ptr))
}

func (t *table) SolutionSetDblHour(h engine.Handle, value float64) {
	C.ctx_Solution_Set_dblHour(t.state(h).ptr, C.double(value))
}

func (t *table) SolutionGetSeconds(h engine.Handle) float64 {
	return float64(C.ctx_Solution_Get_Seconds(t.state(h).ptr))
}

func (t *table) SolutionSetSeconds(h engine.Handle, value float64) {
	C.ctx_Solution_Set_Seconds(t.state(h).ptr, C.double(value))
}

func (t *table) SolutionGetLoadMult(h engine.Handle) float64 {
	return float64(C.ctx_Solution_Get_LoadMult(t.state(h).ptr))
}

func (t *table) SolutionSetLoadMult(h engine.Handle, value float64) {
	C.ctx_Solution_Set_LoadMult(t.state(h).ptr, C.double(value))
}

func (t *table) SolutionConverged(h engine.Handle) bool {
	return C.ctx_Solution_Get_Converged(t.state(h).ptr) != 0
}

func (t *table) SolutionIterations(h engine.Handle) int32 {
	return int32(C.ctx_Solution_Get_Iterations(t.state(h).ptr))
}

func (t *table) SolutionGetMaxIterations(h engine.Handle) int32 {
	return int32(C.ctx_Solution_Get_MaxIterations(t.state(h).ptr))
}

func (t *table) SolutionSetMaxIterations(h engine.Handle, value int32) {
	C.ctx_Solution_Set_MaxIterations(t.state(h).ptr, C.int32_t(value))
}

func (t *table) SolutionGetTolerance(h engine.Handle) float64 {
	return float64(C.ctx_Solution_Get_Tolerance(t.state(h).ptr))
}

func (t *table) SolutionSetTolerance(h engine.Handle, value float64) {
	C.ctx_Solution_Set_Tolerance(t.state(h).ptr, C.double(value))
}

func (t *table) SolutionGetFrequency(h engine.Handle) float64 {
	return float64(C.ctx_Solution_Get_Frequency(t.state(h).ptr))
}

func (t *table) SolutionSetFrequency(h engine.Handle, value float64) {
	C.ctx_Solution_Set_Frequency(t.state(h).ptr, C.double(value))
}

func (t *table) SolutionGetControlMode(h engine.Handle) int32 {
	return int32(C.ctx_Solution_Get_ControlMode(t.state(h).ptr))
}

func (t *table) SolutionSetControlMode(h engine.Handle, value int32) {
	C.ctx_Solution_Set_ControlMode(t.state(h).ptr, C.int32_t(value))
}

func (t *table) SolutionGetMaxControlIterations(h engine.Handle) int32 {
	return int32(C.ctx_Solution_Get_MaxControlIterations(t.state(h).ptr))
}

func (t *table) SolutionSetMaxControlIterations(h engine.Handle, value int32) {
	C.ctx_Solution_Set_MaxControlIterations(t.state(h).ptr, C.int32_t(value))
}

func (t *table) SolutionTotalIterations(h engine.Handle) int32 {
	return int32(C.ctx_Solution_Get_Totaliterations(t.state(h).ptr))
}

func (t *table) SolutionProcessTime(h engine.Handle) float64 {
	return float64(C.ctx_Solution_Get_Process_Time(t.state(h).ptr))
}
