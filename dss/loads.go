package dss

// ILoads iterates over and edits the Load objects in the circuit.
type ILoads struct {
	common
}

func (loads *ILoads) Init(ctx *DSSContext) {
	loads.initCommon(ctx)
}

// Array of strings containing all Load names.
func (loads *ILoads) AllNames() ([]string, error) {
	return loads.ctx.stringArrayResult(loads.ctx.api.LoadsAllNames(loads.ctx.h))
}

// Number of Load objects in active circuit.
func (loads *ILoads) Count() (int32, error) {
	return loads.ctx.int32Result(loads.ctx.api.LoadsCount(loads.ctx.h))
}

// Sets the first Load active. Returns 0 if no more.
func (loads *ILoads) First() (int32, error) {
	return loads.ctx.int32Result(loads.ctx.api.LoadsFirst(loads.ctx.h))
}

// Sets the next Load active. Returns 0 if no more.
func (loads *ILoads) Next() (int32, error) {
	return loads.ctx.int32Result(loads.ctx.api.LoadsNext(loads.ctx.h))
}

// Sets the active Load by Name.
func (loads *ILoads) Get_Name() (string, error) {
	return loads.ctx.stringResult(loads.ctx.api.LoadsGetName(loads.ctx.h))
}

// Gets the name of the active Load.
func (loads *ILoads) Set_Name(value string) error {
	loads.ctx.api.LoadsSetName(loads.ctx.h, value)
	return loads.ctx.check()
}

// Get/set the index of the active Load; index is 1-based: 1..Count.
func (loads *ILoads) Get_idx() (int32, error) {
	return loads.ctx.int32Result(loads.ctx.api.LoadsGetIdx(loads.ctx.h))
}

func (loads *ILoads) Set_idx(value int32) error {
	loads.ctx.api.LoadsSetIdx(loads.ctx.h, value)
	return loads.ctx.check()
}

// Set kW for active Load. Updates kvar based on present PF.
func (loads *ILoads) Get_kW() (float64, error) {
	return loads.ctx.float64Result(loads.ctx.api.LoadsGetKW(loads.ctx.h))
}

func (loads *ILoads) Set_kW(value float64) error {
	loads.ctx.api.LoadsSetKW(loads.ctx.h, value)
	return loads.ctx.check()
}

// Reactive power in kvar for active Load. If set, updates PF based on present kW.
func (loads *ILoads) Get_kvar() (float64, error) {
	return loads.ctx.float64Result(loads.ctx.api.LoadsGetKvar(loads.ctx.h))
}

func (loads *ILoads) Set_kvar(value float64) error {
	loads.ctx.api.LoadsSetKvar(loads.ctx.h, value)
	return loads.ctx.check()
}

// Set kV rating for active Load. For 2 or more phases set Line-Line kV. Else actual kV across terminals.
func (loads *ILoads) Get_kV() (float64, error) {
	return loads.ctx.float64Result(loads.ctx.api.LoadsGetKV(loads.ctx.h))
}

func (loads *ILoads) Set_kV(value float64) error {
	loads.ctx.api.LoadsSetKV(loads.ctx.h, value)
	return loads.ctx.check()
}

// Set Power Factor for Active Load. Specify leading PF as negative. Updates kvar based on present tkW value.
func (loads *ILoads) Get_PF() (float64, error) {
	return loads.ctx.float64Result(loads.ctx.api.LoadsGetPF(loads.ctx.h))
}

func (loads *ILoads) Set_PF(value float64) error {
	loads.ctx.api.LoadsSetPF(loads.ctx.h, value)
	return loads.ctx.check()
}

// The Load Model defines variation of P and Q with voltage.
func (loads *ILoads) Get_Model() (LoadModels, error) {
	v, err := loads.ctx.int32Result(loads.ctx.api.LoadsGetModel(loads.ctx.h))
	return LoadModels(v), err
}

func (loads *ILoads) Set_Model(value LoadModels) error {
	loads.ctx.api.LoadsSetModel(loads.ctx.h, int32(value))
	return loads.ctx.check()
}

// Response to load multipliers: Fixed (growth only), Exempt (no LD curve), Variable (all).
func (loads *ILoads) Get_Status() (LoadStatus, error) {
	v, err := loads.ctx.int32Result(loads.ctx.api.LoadsGetStatus(loads.ctx.h))
	return LoadStatus(v), err
}

func (loads *ILoads) Set_Status(value LoadStatus) error {
	loads.ctx.api.LoadsSetStatus(loads.ctx.h, int32(value))
	return loads.ctx.check()
}

// Array of 7 doubles with values for ZIPV property of the load object.
func (loads *ILoads) Get_ZIPV() ([]float64, error) {
	return loads.ctx.float64ArrayResult(loads.ctx.api.LoadsGetZIPV(loads.ctx.h))
}

func (loads *ILoads) Set_ZIPV(value []float64) error {
	loads.ctx.api.LoadsSetZIPV(loads.ctx.h, value)
	return loads.ctx.check()
}

// Name of the loadshape for a daily load profile.
func (loads *ILoads) Get_Daily() (string, error) {
	return loads.ctx.stringResult(loads.ctx.api.LoadsGetDaily(loads.ctx.h))
}

func (loads *ILoads) Set_Daily(value string) error {
	loads.ctx.api.LoadsSetDaily(loads.ctx.h, value)
	return loads.ctx.check()
}
