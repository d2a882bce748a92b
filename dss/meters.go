package dss

// IMeters iterates over the EnergyMeter objects in the circuit.
type IMeters struct {
	common
}

func (meters *IMeters) Init(ctx *DSSContext) {
	meters.initCommon(ctx)
}

// Array of all energy Meter names.
func (meters *IMeters) AllNames() ([]string, error) {
	return meters.ctx.stringArrayResult(meters.ctx.api.MetersAllNames(meters.ctx.h))
}

// Number of Energy Meters in the Active Circuit.
func (meters *IMeters) Count() (int32, error) {
	return meters.ctx.int32Result(meters.ctx.api.MetersCount(meters.ctx.h))
}

// Get the name of the active Meter.
func (meters *IMeters) Name() (string, error) {
	return meters.ctx.stringResult(meters.ctx.api.MetersName(meters.ctx.h))
}

// Set the first Energy Meter active. Returns 0 if none.
func (meters *IMeters) First() (int32, error) {
	return meters.ctx.int32Result(meters.ctx.api.MetersFirst(meters.ctx.h))
}

// Sets the next energy Meter active. Returns 0 if no more.
func (meters *IMeters) Next() (int32, error) {
	return meters.ctx.int32Result(meters.ctx.api.MetersNext(meters.ctx.h))
}

// Array of strings containing the names of the registers.
func (meters *IMeters) RegisterNames() ([]string, error) {
	return meters.ctx.stringArrayResult(meters.ctx.api.MetersRegisterNames(meters.ctx.h))
}

// Array of all the values contained in the Meter registers for the active Meter.
func (meters *IMeters) RegisterValues() ([]float64, error) {
	return meters.ctx.float64ArrayResult(meters.ctx.api.MetersRegisterValues(meters.ctx.h))
}

// Totals of all registers of all meters.
func (meters *IMeters) Totals() ([]float64, error) {
	return meters.ctx.float64ArrayResult(meters.ctx.api.MetersTotals(meters.ctx.h))
}

// Resets all Meter registers to zero.
func (meters *IMeters) ResetAll() error {
	meters.ctx.api.MetersResetAll(meters.ctx.h)
	return meters.ctx.check()
}

// Forces active Meter to take a sample for all Meters.
func (meters *IMeters) SampleAll() error {
	meters.ctx.api.MetersSampleAll(meters.ctx.h)
	return meters.ctx.check()
}

// Save All EnergyMeter objects.
func (meters *IMeters) SaveAll() error {
	meters.ctx.api.MetersSaveAll(meters.ctx.h)
	return meters.ctx.check()
}
