package dss

// ICircuit exposes the active circuit of the context.
type ICircuit struct {
	common

	ActiveBus        IBus
	ActiveCktElement ICktElement
	Solution         ISolution
	Loads            ILoads
	Lines            ILines
	Meters           IMeters
	ActiveClass      IActiveClass
}

func (circuit *ICircuit) Init(ctx *DSSContext) {
	circuit.initCommon(ctx)
	circuit.ActiveBus.Init(ctx)
	circuit.ActiveCktElement.Init(ctx)
	circuit.Solution.Init(ctx)
	circuit.Loads.Init(ctx)
	circuit.Lines.Init(ctx)
	circuit.Meters.Init(ctx)
	circuit.ActiveClass.Init(ctx)
}

// Name of the active circuit.
func (circuit *ICircuit) Name() (string, error) {
	return circuit.ctx.stringResult(circuit.ctx.api.CircuitName(circuit.ctx.h))
}

// Total number of Buses in the circuit.
func (circuit *ICircuit) NumBuses() (int32, error) {
	return circuit.ctx.int32Result(circuit.ctx.api.CircuitNumBuses(circuit.ctx.h))
}

// Total number of nodes in the circuit.
func (circuit *ICircuit) NumNodes() (int32, error) {
	return circuit.ctx.int32Result(circuit.ctx.api.CircuitNumNodes(circuit.ctx.h))
}

// Number of CktElements in the circuit.
func (circuit *ICircuit) NumCktElements() (int32, error) {
	return circuit.ctx.int32Result(circuit.ctx.api.CircuitNumCktElements(circuit.ctx.h))
}

// Array of strings containing names of all buses in circuit (see AllNodeNames).
func (circuit *ICircuit) AllBusNames() ([]string, error) {
	return circuit.ctx.stringArrayResult(circuit.ctx.api.CircuitAllBusNames(circuit.ctx.h))
}

// Array of strings containing full name of each node in system in same order as returned by AllBusVolts, etc.
func (circuit *ICircuit) AllNodeNames() ([]string, error) {
	return circuit.ctx.stringArrayResult(circuit.ctx.api.CircuitAllNodeNames(circuit.ctx.h))
}

// Array of magnitudes (doubles) of voltages at all nodes.
func (circuit *ICircuit) AllBusVmag() ([]float64, error) {
	return circuit.ctx.float64ArrayResult(circuit.ctx.api.CircuitAllBusVmag(circuit.ctx.h))
}

// Double Array of all bus voltages (each node) magnitudes in Per unit.
func (circuit *ICircuit) AllBusVmagPu() ([]float64, error) {
	return circuit.ctx.float64ArrayResult(circuit.ctx.api.CircuitAllBusVmagPu(circuit.ctx.h))
}

// Complex array of all bus, node voltages from most recent solution.
func (circuit *ICircuit) AllBusVolts() ([]complex128, error) {
	return circuit.ctx.complexArrayResult("Circuit.AllBusVolts", circuit.ctx.api.CircuitAllBusVolts(circuit.ctx.h))
}

// Array of strings with the full name of each element.
func (circuit *ICircuit) AllElementNames() ([]string, error) {
	return circuit.ctx.stringArrayResult(circuit.ctx.api.CircuitAllElementNames(circuit.ctx.h))
}

// Total losses in active circuit, complex number (kW + j kvar).
func (circuit *ICircuit) Losses() (complex128, error) {
	return circuit.ctx.complexResult("Circuit.Losses", circuit.ctx.api.CircuitLosses(circuit.ctx.h))
}

// Total Line losses in the circuit.
func (circuit *ICircuit) LineLosses() (complex128, error) {
	return circuit.ctx.complexResult("Circuit.LineLosses", circuit.ctx.api.CircuitLineLosses(circuit.ctx.h))
}

// Losses in all transformers designated to substations.
func (circuit *ICircuit) SubstationLosses() (complex128, error) {
	return circuit.ctx.complexResult("Circuit.SubstationLosses", circuit.ctx.api.CircuitSubstationLosses(circuit.ctx.h))
}

// Total power (complex), kVA delivered to the circuit.
func (circuit *ICircuit) TotalPower() (complex128, error) {
	return circuit.ctx.complexResult("Circuit.TotalPower", circuit.ctx.api.CircuitTotalPower(circuit.ctx.h))
}

// Sets Active bus by name. Ignores node list. Returns bus index compatible with SetActiveBusi.
func (circuit *ICircuit) SetActiveBus(name string) (int32, error) {
	return circuit.ctx.int32Result(circuit.ctx.api.CircuitSetActiveBus(circuit.ctx.h, name))
}

// Set ActiveBus by an integer value. 0-based index compatible with SetActiveBus return value.
func (circuit *ICircuit) SetActiveBusi(idx int32) (int32, error) {
	return circuit.ctx.int32Result(circuit.ctx.api.CircuitSetActiveBusi(circuit.ctx.h, idx))
}

// Activate an element of the active circuit based on its name. Returns index of the element, or -1.
func (circuit *ICircuit) SetActiveElement(name string) (int32, error) {
	return circuit.ctx.int32Result(circuit.ctx.api.CircuitSetActiveElement(circuit.ctx.h, name))
}

// Enable an element of the active circuit, specified by name.
func (circuit *ICircuit) Enable(name string) error {
	circuit.ctx.api.CircuitEnable(circuit.ctx.h, name)
	return circuit.ctx.check()
}

// Disable an element of the active circuit, specified by name.
func (circuit *ICircuit) Disable(name string) error {
	circuit.ctx.api.CircuitDisable(circuit.ctx.h, name)
	return circuit.ctx.check()
}

// Sets the first enabled Power Conversion (PC) element in the circuit to be active.
func (circuit *ICircuit) FirstPCElement() (int32, error) {
	return circuit.ctx.int32Result(circuit.ctx.api.CircuitFirstPCElement(circuit.ctx.h))
}

// Sets the next enabled Power Conversion (PC) element in the circuit to be active.
func (circuit *ICircuit) NextPCElement() (int32, error) {
	return circuit.ctx.int32Result(circuit.ctx.api.CircuitNextPCElement(circuit.ctx.h))
}

// Sets the first enabled Power Delivery (PD) element in the circuit to be active.
func (circuit *ICircuit) FirstPDElement() (int32, error) {
	return circuit.ctx.int32Result(circuit.ctx.api.CircuitFirstPDElement(circuit.ctx.h))
}

// Sets the next enabled Power Delivery (PD) element in the circuit to be active.
func (circuit *ICircuit) NextPDElement() (int32, error) {
	return circuit.ctx.int32Result(circuit.ctx.api.CircuitNextPDElement(circuit.ctx.h))
}
