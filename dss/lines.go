package dss

// ILines iterates over and edits the Line objects in the circuit.
type ILines struct {
	common
}

func (lines *ILines) Init(ctx *DSSContext) {
	lines.initCommon(ctx)
}

// Array of strings with names of all Lines in the circuit.
func (lines *ILines) AllNames() ([]string, error) {
	return lines.ctx.stringArrayResult(lines.ctx.api.LinesAllNames(lines.ctx.h))
}

// Number of Line objects in Active Circuit.
func (lines *ILines) Count() (int32, error) {
	return lines.ctx.int32Result(lines.ctx.api.LinesCount(lines.ctx.h))
}

// Invoking this property sets the first element active. Returns 0 if no lines. Otherwise, index of the line element.
func (lines *ILines) First() (int32, error) {
	return lines.ctx.int32Result(lines.ctx.api.LinesFirst(lines.ctx.h))
}

// Invoking this property advances to the next Line element active. Returns 0 if no more lines. Otherwise, index of the line element.
func (lines *ILines) Next() (int32, error) {
	return lines.ctx.int32Result(lines.ctx.api.LinesNext(lines.ctx.h))
}

// Specify the name of the Line element to set it active.
func (lines *ILines) Get_Name() (string, error) {
	return lines.ctx.stringResult(lines.ctx.api.LinesGetName(lines.ctx.h))
}

func (lines *ILines) Set_Name(value string) error {
	lines.ctx.api.LinesSetName(lines.ctx.h, value)
	return lines.ctx.check()
}

// Name of bus for terminal 1.
func (lines *ILines) Get_Bus1() (string, error) {
	return lines.ctx.stringResult(lines.ctx.api.LinesGetBus1(lines.ctx.h))
}

func (lines *ILines) Set_Bus1(value string) error {
	lines.ctx.api.LinesSetBus1(lines.ctx.h, value)
	return lines.ctx.check()
}

// Name of bus for terminal 2.
func (lines *ILines) Get_Bus2() (string, error) {
	return lines.ctx.stringResult(lines.ctx.api.LinesGetBus2(lines.ctx.h))
}

func (lines *ILines) Set_Bus2(value string) error {
	lines.ctx.api.LinesSetBus2(lines.ctx.h, value)
	return lines.ctx.check()
}

// Length of line section in units compatible with the LineCode definition.
func (lines *ILines) Get_Length() (float64, error) {
	return lines.ctx.float64Result(lines.ctx.api.LinesGetLength(lines.ctx.h))
}

func (lines *ILines) Set_Length(value float64) error {
	lines.ctx.api.LinesSetLength(lines.ctx.h, value)
	return lines.ctx.check()
}

// Number of Phases, this Line element.
func (lines *ILines) Get_Phases() (int32, error) {
	return lines.ctx.int32Result(lines.ctx.api.LinesGetPhases(lines.ctx.h))
}

func (lines *ILines) Set_Phases(value int32) error {
	lines.ctx.api.LinesSetPhases(lines.ctx.h, value)
	return lines.ctx.check()
}

// Positive Sequence resistance, ohms per unit length.
func (lines *ILines) Get_R1() (float64, error) {
	return lines.ctx.float64Result(lines.ctx.api.LinesGetR1(lines.ctx.h))
}

func (lines *ILines) Set_R1(value float64) error {
	lines.ctx.api.LinesSetR1(lines.ctx.h, value)
	return lines.ctx.check()
}

// Positive Sequence reactance, ohms per unit length.
func (lines *ILines) Get_X1() (float64, error) {
	return lines.ctx.float64Result(lines.ctx.api.LinesGetX1(lines.ctx.h))
}

func (lines *ILines) Set_X1(value float64) error {
	lines.ctx.api.LinesSetX1(lines.ctx.h, value)
	return lines.ctx.check()
}

// Units of the line (distance, check manual for details).
func (lines *ILines) Get_Units() (LineUnits, error) {
	v, err := lines.ctx.int32Result(lines.ctx.api.LinesGetUnits(lines.ctx.h))
	return LineUnits(v), err
}

func (lines *ILines) Set_Units(value LineUnits) error {
	lines.ctx.api.LinesSetUnits(lines.ctx.h, int32(value))
	return lines.ctx.check()
}

// Resistance matrix (full), ohms per unit length. Array of doubles.
func (lines *ILines) Get_Rmatrix() ([]float64, error) {
	return lines.ctx.float64ArrayResult(lines.ctx.api.LinesGetRmatrix(lines.ctx.h))
}

func (lines *ILines) Set_Rmatrix(value []float64) error {
	lines.ctx.api.LinesSetRmatrix(lines.ctx.h, value)
	return lines.ctx.check()
}

// Reactance matrix (full), ohms per unit length. Array of doubles.
func (lines *ILines) Get_Xmatrix() ([]float64, error) {
	return lines.ctx.float64ArrayResult(lines.ctx.api.LinesGetXmatrix(lines.ctx.h))
}

func (lines *ILines) Set_Xmatrix(value []float64) error {
	lines.ctx.api.LinesSetXmatrix(lines.ctx.h, value)
	return lines.ctx.check()
}
