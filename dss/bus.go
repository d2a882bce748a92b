package dss

// IBus exposes the active bus of the active circuit.
type IBus struct {
	common
}

func (bus *IBus) Init(ctx *DSSContext) {
	bus.initCommon(ctx)
}

// Name of Bus.
func (bus *IBus) Name() (string, error) {
	return bus.ctx.stringResult(bus.ctx.api.BusName(bus.ctx.h))
}

// Number of Nodes this bus.
func (bus *IBus) NumNodes() (int32, error) {
	return bus.ctx.int32Result(bus.ctx.api.BusNumNodes(bus.ctx.h))
}

// Integer Array of Node Numbers defined at the bus in same order as the voltages.
func (bus *IBus) Nodes() ([]int32, error) {
	return bus.ctx.int32ArrayResult(bus.ctx.api.BusNodes(bus.ctx.h))
}

// Base voltage at bus in kV.
func (bus *IBus) Get_kVBase() (float64, error) {
	return bus.ctx.float64Result(bus.ctx.api.BusKVBase(bus.ctx.h))
}

// Complex array of voltages at this bus.
func (bus *IBus) Voltages() ([]complex128, error) {
	return bus.ctx.complexArrayResult("Bus.Voltages", bus.ctx.api.BusVoltages(bus.ctx.h))
}

// Double Array of sequence voltages at this bus. Magnitudes only.
func (bus *IBus) SeqVoltages() ([]float64, error) {
	return bus.ctx.float64ArrayResult(bus.ctx.api.BusSeqVoltages(bus.ctx.h))
}

// Complex Double array of Sequence Voltages (0, 1, 2) at this Bus.
func (bus *IBus) CplxSeqVoltages() ([]complex128, error) {
	return bus.ctx.complexArrayResult("Bus.CplxSeqVoltages", bus.ctx.api.BusCplxSeqVoltages(bus.ctx.h))
}

// Double Array of VMag,Angle pairs at each node at this bus. Order of values is the same as Nodes.
func (bus *IBus) VMagAngle() ([]float64, error) {
	return bus.ctx.float64ArrayResult(bus.ctx.api.BusVMagAngle(bus.ctx.h))
}

// Complex Array of pu voltages at the bus.
func (bus *IBus) PUVoltages() ([]complex128, error) {
	return bus.ctx.complexArrayResult("Bus.PUVoltages", bus.ctx.api.BusPUVoltages(bus.ctx.h))
}

// Array of doubles containing voltage magnitude, angle (degrees) pairs in per unit.
func (bus *IBus) PUVMagAngle() ([]float64, error) {
	return bus.ctx.float64ArrayResult(bus.ctx.api.BusPUVMagAngle(bus.ctx.h))
}

// Indicates whether a coordinate has been defined for this bus.
func (bus *IBus) Coorddefined() (bool, error) {
	return bus.ctx.boolResult(bus.ctx.api.BusCoorddefined(bus.ctx.h))
}

// X Coordinate for bus.
func (bus *IBus) Get_x() (float64, error) {
	return bus.ctx.float64Result(bus.ctx.api.BusGetX(bus.ctx.h))
}

func (bus *IBus) Set_x(value float64) error {
	bus.ctx.api.BusSetX(bus.ctx.h, value)
	return bus.ctx.check()
}

// Y Coordinate for bus.
func (bus *IBus) Get_y() (float64, error) {
	return bus.ctx.float64Result(bus.ctx.api.BusGetY(bus.ctx.h))
}

func (bus *IBus) Set_y(value float64) error {
	bus.ctx.api.BusSetY(bus.ctx.h, value)
	return bus.ctx.check()
}

// Distance from energymeter (if non-zero).
func (bus *IBus) Distance() (float64, error) {
	return bus.ctx.float64Result(bus.ctx.api.BusDistance(bus.ctx.h))
}

// Refreshes the Zsc matrix for the active bus.
func (bus *IBus) ZscRefresh() (bool, error) {
	return bus.ctx.boolResult(bus.ctx.api.BusZscRefresh(bus.ctx.h))
}

// Complex zero-sequence short circuit impedance at bus.
func (bus *IBus) Zsc0() (complex128, error) {
	return bus.ctx.complexResult("Bus.Zsc0", bus.ctx.api.BusZsc0(bus.ctx.h))
}

// Complex positive-sequence short circuit impedance at bus.
func (bus *IBus) Zsc1() (complex128, error) {
	return bus.ctx.complexResult("Bus.Zsc1", bus.ctx.api.BusZsc1(bus.ctx.h))
}

// Complex array of Zsc matrix at bus, column by column.
func (bus *IBus) ZscMatrix() ([]complex128, error) {
	return bus.ctx.complexArrayResult("Bus.ZscMatrix", bus.ctx.api.BusZscMatrix(bus.ctx.h))
}

// List of strings: Full Names of LOAD elements connected to the active bus.
func (bus *IBus) LoadList() ([]string, error) {
	return bus.ctx.stringArrayResult(bus.ctx.api.BusLoadList(bus.ctx.h))
}

// List of strings: Full Names of LINE elements connected to the active bus.
func (bus *IBus) LineList() ([]string, error) {
	return bus.ctx.stringArrayResult(bus.ctx.api.BusLineList(bus.ctx.h))
}

// Returns an array with the names of all PCE connected to the active bus.
func (bus *IBus) AllPCEatBus() ([]string, error) {
	return bus.ctx.stringArrayResult(bus.ctx.api.BusAllPCEAtBus(bus.ctx.h))
}

// Returns an array with the names of all PDE connected to the active bus.
func (bus *IBus) AllPDEatBus() ([]string, error) {
	return bus.ctx.stringArrayResult(bus.ctx.api.BusAllPDEAtBus(bus.ctx.h))
}
