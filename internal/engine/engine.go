// Package engine declares the entry-point table of the native DSS
// engine (the DSS C-API) as a Go interface.
//
// The table mirrors the ctx_* functions of the C library: every
// operation takes the context handle it acts on, scalars cross the
// boundary as plain Go values, and failures are reported exclusively
// through the per-context error cell (ErrorNumber/ErrorDescription).
// Callers are expected to poll the error cell after every operation;
// the dss package does so on behalf of its users.
//
// Array-valued results are returned as freshly allocated Go slices:
// the implementation owns whatever native buffer management is needed
// (GR buffers, engine-side deallocation of char** results) and never
// hands native memory upward. Complex quantities are returned as
// interleaved re/im float64 pairs; pairing them up is the caller's
// concern.
package engine

import "errors"

// ErrNotBuilt is reported when the native bindings were not compiled
// in (CGO_ENABLED=0 or an unsupported platform).
var ErrNotBuilt = errors.New("godss: native DSS bindings not built")

// Handle identifies one engine context. Handles are created by
// NewContext, except for the prime handle which exists for the
// lifetime of the process.
type Handle uintptr

// API is the subset of the DSS C-API entry-point table exposed by
// this module, one method per ctx_* function. Implementations are the
// cgo-backed table in internal/engine/capi and the in-memory fake in
// internal/engine/enginetest.
type API interface {
	// Context management.
	Prime() Handle
	NewContext() (Handle, error)
	Dispose(h Handle)

	// Error cell. ClearError resets the number without reading the
	// description; the shim in the dss package reads both first.
	ErrorNumber(h Handle) int32
	ErrorDescription(h Handle) string
	ClearError(h Handle)
	ErrorGetEarlyAbort(h Handle) bool
	ErrorSetEarlyAbort(h Handle, value bool)
	ErrorGetExtendedErrors(h Handle) bool
	ErrorSetExtendedErrors(h Handle, value bool)

	// DSS (top level).
	DSSVersion(h Handle) string
	DSSClearAll(h Handle)
	DSSNewCircuit(h Handle, name string)
	DSSNumCircuits(h Handle) int32
	DSSNumClasses(h Handle) int32
	DSSClasses(h Handle) []string
	DSSSetActiveClass(h Handle, name string) int32
	DSSGetDataPath(h Handle) string
	DSSSetDataPath(h Handle, value string)
	DSSGetAllowChangeDir(h Handle) bool
	DSSSetAllowChangeDir(h Handle, value bool)
	DSSGetAllowForms(h Handle) bool
	DSSSetAllowForms(h Handle, value bool)

	// Text.
	TextGetCommand(h Handle) string
	TextSetCommand(h Handle, value string)
	TextResult(h Handle) string

	// Circuit.
	CircuitName(h Handle) string
	CircuitNumBuses(h Handle) int32
	CircuitNumNodes(h Handle) int32
	CircuitNumCktElements(h Handle) int32
	CircuitAllBusNames(h Handle) []string
	CircuitAllNodeNames(h Handle) []string
	CircuitAllBusVmag(h Handle) []float64
	CircuitAllBusVmagPu(h Handle) []float64
	CircuitAllBusVolts(h Handle) []float64
	CircuitAllElementNames(h Handle) []string
	CircuitLosses(h Handle) []float64
	CircuitLineLosses(h Handle) []float64
	CircuitSubstationLosses(h Handle) []float64
	CircuitTotalPower(h Handle) []float64
	CircuitSetActiveBus(h Handle, name string) int32
	CircuitSetActiveBusi(h Handle, idx int32) int32
	CircuitSetActiveElement(h Handle, name string) int32
	CircuitEnable(h Handle, name string)
	CircuitDisable(h Handle, name string)
	CircuitFirstPCElement(h Handle) int32
	CircuitNextPCElement(h Handle) int32
	CircuitFirstPDElement(h Handle) int32
	CircuitNextPDElement(h Handle) int32

	// Bus (the active bus of the circuit).
	BusName(h Handle) string
	BusNumNodes(h Handle) int32
	BusNodes(h Handle) []int32
	BusKVBase(h Handle) float64
	BusVoltages(h Handle) []float64
	BusSeqVoltages(h Handle) []float64
	BusCplxSeqVoltages(h Handle) []float64
	BusVMagAngle(h Handle) []float64
	BusPUVoltages(h Handle) []float64
	BusPUVMagAngle(h Handle) []float64
	BusCoorddefined(h Handle) bool
	BusGetX(h Handle) float64
	BusSetX(h Handle, value float64)
	BusGetY(h Handle) float64
	BusSetY(h Handle, value float64)
	BusDistance(h Handle) float64
	BusZscRefresh(h Handle) bool
	BusZsc0(h Handle) []float64
	BusZsc1(h Handle) []float64
	BusZscMatrix(h Handle) []float64
	BusLoadList(h Handle) []string
	BusLineList(h Handle) []string
	BusAllPCEAtBus(h Handle) []string
	BusAllPDEAtBus(h Handle) []string

	// CktElement (the active circuit element).
	CktElementName(h Handle) string
	CktElementNumPhases(h Handle) int32
	CktElementNumConductors(h Handle) int32
	CktElementNumTerminals(h Handle) int32
	CktElementGetBusNames(h Handle) []string
	CktElementSetBusNames(h Handle, value []string)
	CktElementCurrents(h Handle) []float64
	CktElementVoltages(h Handle) []float64
	CktElementPowers(h Handle) []float64
	CktElementLosses(h Handle) []float64
	CktElementGetEnabled(h Handle) bool
	CktElementSetEnabled(h Handle, value bool)
	CktElementAllPropertyNames(h Handle) []string

	// Solution.
	SolutionSolve(h Handle)
	SolutionGetMode(h Handle) int32
	SolutionSetMode(h Handle, value int32)
	SolutionGetNumber(h Handle) int32
	SolutionSetNumber(h Handle, value int32)
	SolutionGetStepSize(h Handle) float64
	SolutionSetStepSize(h Handle, value float64)
	SolutionSetStepsizeMin(h Handle, value float64)
	SolutionGetHour(h Handle) int32
	SolutionSetHour(h Handle, value int32)
	SolutionGetDblHour(h Handle) float64
	SolutionSetDblHour(h Handle, value float64)
	SolutionGetSeconds(h Handle) float64
	SolutionSetSeconds(h Handle, value float64)
	SolutionGetLoadMult(h Handle) float64
	SolutionSetLoadMult(h Handle, value float64)
	SolutionConverged(h Handle) bool
	SolutionIterations(h Handle) int32
	SolutionGetMaxIterations(h Handle) int32
	SolutionSetMaxIterations(h Handle, value int32)
	SolutionGetTolerance(h Handle) float64
	SolutionSetTolerance(h Handle, value float64)
	SolutionGetFrequency(h Handle) float64
	SolutionSetFrequency(h Handle, value float64)
	SolutionGetControlMode(h Handle) int32
	SolutionSetControlMode(h Handle, value int32)
	SolutionGetMaxControlIterations(h Handle) int32
	SolutionSetMaxControlIterations(h Handle, value int32)
	SolutionTotalIterations(h Handle) int32
	SolutionProcessTime(h Handle) float64

	// Loads (the active load).
	LoadsAllNames(h Handle) []string
	LoadsCount(h Handle) int32
	LoadsFirst(h Handle) int32
	LoadsNext(h Handle) int32
	LoadsGetName(h Handle) string
	LoadsSetName(h Handle, value string)
	LoadsGetIdx(h Handle) int32
	LoadsSetIdx(h Handle, value int32)
	LoadsGetKW(h Handle) float64
	LoadsSetKW(h Handle, value float64)
	LoadsGetKvar(h Handle) float64
	LoadsSetKvar(h Handle, value float64)
	LoadsGetKV(h Handle) float64
	LoadsSetKV(h Handle, value float64)
	LoadsGetPF(h Handle) float64
	LoadsSetPF(h Handle, value float64)
	LoadsGetModel(h Handle) int32
	LoadsSetModel(h Handle, value int32)
	LoadsGetStatus(h Handle) int32
	LoadsSetStatus(h Handle, value int32)
	LoadsGetZIPV(h Handle) []float64
	LoadsSetZIPV(h Handle, value []float64)
	LoadsGetDaily(h Handle) string
	LoadsSetDaily(h Handle, value string)

	// Lines (the active line).
	LinesAllNames(h Handle) []string
	LinesCount(h Handle) int32
	LinesFirst(h Handle) int32
	LinesNext(h Handle) int32
	LinesGetName(h Handle) string
	LinesSetName(h Handle, value string)
	LinesGetBus1(h Handle) string
	LinesSetBus1(h Handle, value string)
	LinesGetBus2(h Handle) string
	LinesSetBus2(h Handle, value string)
	LinesGetLength(h Handle) float64
	LinesSetLength(h Handle, value float64)
	LinesGetPhases(h Handle) int32
	LinesSetPhases(h Handle, value int32)
	LinesGetR1(h Handle) float64
	LinesSetR1(h Handle, value float64)
	LinesGetX1(h Handle) float64
	LinesSetX1(h Handle, value float64)
	LinesGetUnits(h Handle) int32
	LinesSetUnits(h Handle, value int32)
	LinesGetRmatrix(h Handle) []float64
	LinesSetRmatrix(h Handle, value []float64)
	LinesGetXmatrix(h Handle) []float64
	LinesSetXmatrix(h Handle, value []float64)

	// Meters (the active energy meter).
	MetersAllNames(h Handle) []string
	MetersCount(h Handle) int32
	MetersName(h Handle) string
	MetersFirst(h Handle) int32
	MetersNext(h Handle) int32
	MetersRegisterNames(h Handle) []string
	MetersRegisterValues(h Handle) []float64
	MetersTotals(h Handle) []float64
	MetersResetAll(h Handle)
	MetersSampleAll(h Handle)
	MetersSaveAll(h Handle)

	// ActiveClass.
	ActiveClassAllNames(h Handle) []string
	ActiveClassCount(h Handle) int32
	ActiveClassFirst(h Handle) int32
	ActiveClassNext(h Handle) int32
	ActiveClassGetName(h Handle) string
	ActiveClassSetName(h Handle, value string)
	ActiveClassNumElements(h Handle) int32
	ActiveClassActiveClassName(h Handle) string
	ActiveClassActiveClassParent(h Handle) string
}
