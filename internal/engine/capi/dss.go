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

func (t *table) DSSVersion(h engine.Handle) string {
	return C.GoString(C.ctx_DSS_Get_Version(t.state(h).ptr))
}

func (t *table) DSSClearAll(h engine.Handle) {
	C.ctx_DSS_ClearAll(t.state(h).ptr)
}

func (t *table) DSSNewCircuit(h engine.Handle, name string) {
	nameC := C.CString(name)
	C.ctx_DSS_NewCircuit(t.state(h).ptr, nameC)
	C.free(unsafe.Pointer(nameC))
}

func (t *table) DSSNumCircuits(h engine.Handle) int32 {
	return int32(C.ctx_DSS_Get_NumCircuits(t.state(h).ptr))
}

func (t *table) DSSNumClasses(h engine.Handle) int32 {
	return int32(C.ctx_DSS_Get_NumClasses(t.state(h).ptr))
}

func (t *table) DSSClasses(h engine.Handle) []string {
	var cnt [4]int32
	var data **C.char
	C.ctx_DSS_Get_Classes(t.state(h).ptr, &data, (*C.int32_t)(&cnt[0]))
	return t.state(h).stringArray(data, cnt)
}

func (t *table) DSSSetActiveClass(h engine.Handle, name string) int32 {
	nameC := C.CString(name)
	defer C.free(unsafe.Pointer(nameC))
	return int32(C.ctx_DSS_SetActiveClass(t.state(h).ptr, nameC))
}

func (t *table) DSSGetDataPath(h engine.Handle) string {
	return C.GoString(C.ctx_DSS_Get_DataPath(t.state(h).ptr))
}

func (t *table) DSSSetDataPath(h engine.Handle, value string) {
	valueC := C.CString(value)
	C.ctx_DSS_Set_DataPath(t.state(h).ptr, valueC)
	C.free(unsafe.Pointer(valueC))
}

func (t *table) DSSGetAllowChangeDir(h engine.Handle) bool {
	return C.ctx_DSS_Get_AllowChangeDir(t.state(h).ptr) != 0
}

func (t *table) DSSSetAllowChangeDir(h engine.Handle, value bool) {
	C.ctx_DSS_Set_AllowChangeDir(t.state(h).ptr, toUint16(value))
}

func (t *table) DSSGetAllowForms(h engine.Handle) bool {
	return C.ctx_DSS_Get_AllowForms(t.state(h).ptr) != 0
}

func (t *table) DSSSetAllowForms(h engine.Handle, value bool) {
	C.ctx_DSS_Set_AllowForms(t.state(h).ptr, toUint16(value))
}

func (t *table) TextGetCommand(h engine.Handle) string {
	return C.GoString(C.ctx_Text_Get_Command(t.state(h).ptr))
}

func (t *table) TextSetCommand(h engine.Handle, value string) {
	valueC := C.CString(value)
	C.ctx_Text_Set_Command(t.state(h).ptr, valueC)
	C.free(unsafe.Pointer(valueC))
}

func (t *table) TextResult(h engine.Handle) string {
	return C.GoString(C.ctx_Text_Get_Result(t.state(h).ptr))
}
