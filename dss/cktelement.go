package dss

// ICktElement exposes the active circuit element, whatever its class.
type ICktElement struct {
	common
}

func (cktelement *ICktElement) Init(ctx *DSSContext) {
	cktelement.initCommon(ctx)
}

// Full Name of Active Circuit Element.
func (cktelement *ICktElement) Name() (string, error) {
	return cktelement.ctx.stringResult(cktelement.ctx.api.CktElementName(cktelement.ctx.h))
}

// Number of Phases.
func (cktelement *ICktElement) NumPhases() (int32, error) {
	return cktelement.ctx.int32Result(cktelement.ctx.api.CktElementNumPhases(cktelement.ctx.h))
}

// Number of Conductors per Terminal.
func (cktelement *ICktElement) NumConductors() (int32, error) {
	return cktelement.ctx.int32Result(cktelement.ctx.api.CktElementNumConductors(cktelement.ctx.h))
}

// Number of Terminals this Circuit Element.
func (cktelement *ICktElement) NumTerminals() (int32, error) {
	return cktelement.ctx.int32Result(cktelement.ctx.api.CktElementNumTerminals(cktelement.ctx.h))
}

// Array of strings. Get Bus definitions to which each terminal is connected.
func (cktelement *ICktElement) Get_BusNames() ([]string, error) {
	return cktelement.ctx.stringArrayResult(cktelement.ctx.api.CktElementGetBusNames(cktelement.ctx.h))
}

func (cktelement *ICktElement) Set_BusNames(value []string) error {
	cktelement.ctx.api.CktElementSetBusNames(cktelement.ctx.h, value)
	return cktelement.ctx.check()
}

// Complex array of currents into each conductor of each terminal.
func (cktelement *ICktElement) Currents() ([]complex128, error) {
	return cktelement.ctx.complexArrayResult("CktElement.Currents", cktelement.ctx.api.CktElementCurrents(cktelement.ctx.h))
}

// Complex array of voltages at terminals.
func (cktelement *ICktElement) Voltages() ([]complex128, error) {
	return cktelement.ctx.complexArrayResult("CktElement.Voltages", cktelement.ctx.api.CktElementVoltages(cktelement.ctx.h))
}

// Complex array of powers (kVA) into each conductor of each terminal.
func (cktelement *ICktElement) Powers() ([]complex128, error) {
	return cktelement.ctx.complexArrayResult("CktElement.Powers", cktelement.ctx.api.CktElementPowers(cktelement.ctx.h))
}

// Total losses in the element: two-element double array (complex), in VA (watts, vars).
func (cktelement *ICktElement) Losses() (complex128, error) {
	return cktelement.ctx.complexResult("CktElement.Losses", cktelement.ctx.api.CktElementLosses(cktelement.ctx.h))
}

// Boolean indicating that element is currently in the circuit.
func (cktelement *ICktElement) Get_Enabled() (bool, error) {
	return cktelement.ctx.boolResult(cktelement.ctx.api.CktElementGetEnabled(cktelement.ctx.h))
}

func (cktelement *ICktElement) Set_Enabled(value bool) error {
	cktelement.ctx.api.CktElementSetEnabled(cktelement.ctx.h, value)
	return cktelement.ctx.check()
}

// Array containing all property names of the active device.
func (cktelement *ICktElement) AllPropertyNames() ([]string, error) {
	return cktelement.ctx.stringArrayResult(cktelement.ctx.api.CktElementAllPropertyNames(cktelement.ctx.h))
}
