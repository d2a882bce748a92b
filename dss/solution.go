package dss

// ISolution controls the solution process of the active circuit.
type ISolution struct {
	common
}

func (solution *ISolution) Init(ctx *DSSContext) {
	solution.initCommon(ctx)
}

// Solve the present solution mode.
func (solution *ISolution) Solve() error {
	solution.ctx.api.SolutionSolve(solution.ctx.h)
	return solution.ctx.check()
}

// Get present solution mode.
func (solution *ISolution) Get_Mode() (SolveModes, error) {
	v, err := solution.ctx.int32Result(solution.ctx.api.SolutionGetMode(solution.ctx.h))
	return SolveModes(v), err
}

func (solution *ISolution) Set_Mode(value SolveModes) error {
	solution.ctx.api.SolutionSetMode(solution.ctx.h, int32(value))
	return solution.ctx.check()
}

// Number of solutions to perform for Monte Carlo and time series simulations.
func (solution *ISolution) Get_Number() (int32, error) {
	return solution.ctx.int32Result(solution.ctx.api.SolutionGetNumber(solution.ctx.h))
}

func (solution *ISolution) Set_Number(value int32) error {
	solution.ctx.api.SolutionSetNumber(solution.ctx.h, value)
	return solution.ctx.check()
}

// Step size for the next solution, in seconds.
func (solution *ISolution) Get_StepSize() (float64, error) {
	return solution.ctx.float64Result(solution.ctx.api.SolutionGetStepSize(solution.ctx.h))
}

func (solution *ISolution) Set_StepSize(value float64) error {
	solution.ctx.api.SolutionSetStepSize(solution.ctx.h, value)
	return solution.ctx.check()
}

// Set Stepsize in minutes.
func (solution *ISolution) Set_StepsizeMin(value float64) error {
	solution.ctx.api.SolutionSetStepsizeMin(solution.ctx.h, value)
	return solution.ctx.check()
}

// Set Hour for time series solutions.
func (solution *ISolution) Get_Hour() (int32, error) {
	return solution.ctx.int32Result(solution.ctx.api.SolutionGetHour(solution.ctx.h))
}

func (solution *ISolution) Set_Hour(value int32) error {
	solution.ctx.api.SolutionSetHour(solution.ctx.h, value)
	return solution.ctx.check()
}

// Hour as a double, including fractional part.
func (solution *ISolution) Get_dblHour() (float64, error) {
	return solution.ctx.float64Result(solution.ctx.api.SolutionGetDblHour(solution.ctx.h))
}

func (solution *ISolution) Set_dblHour(value float64) error {
	solution.ctx.api.SolutionSetDblHour(solution.ctx.h, value)
	return solution.ctx.check()
}

// Seconds from top of the hour.
func (solution *ISolution) Get_Seconds() (float64, error) {
	return solution.ctx.float64Result(solution.ctx.api.SolutionGetSeconds(solution.ctx.h))
}

func (solution *ISolution) Set_Seconds(value float64) error {
	solution.ctx.api.SolutionSetSeconds(solution.ctx.h, value)
	return solution.ctx.check()
}

// Default load multiplier applied to all non-fixed loads.
func (solution *ISolution) Get_LoadMult() (float64, error) {
	return solution.ctx.float64Result(solution.ctx.api.SolutionGetLoadMult(solution.ctx.h))
}

func (solution *ISolution) Set_LoadMult(value float64) error {
	solution.ctx.api.SolutionSetLoadMult(solution.ctx.h, value)
	return solution.ctx.check()
}

// Flag to indicate whether the circuit solution converged.
func (solution *ISolution) Get_Converged() (bool, error) {
	return solution.ctx.boolResult(solution.ctx.api.SolutionConverged(solution.ctx.h))
}

// Number of iterations taken for last solution.
func (solution *ISolution) Iterations() (int32, error) {
	return solution.ctx.int32Result(solution.ctx.api.SolutionIterations(solution.ctx.h))
}

// Max allowable iterations.
func (solution *ISolution) Get_MaxIterations() (int32, error) {
	return solution.ctx.int32Result(solution.ctx.api.SolutionGetMaxIterations(solution.ctx.h))
}

func (solution *ISolution) Set_MaxIterations(value int32) error {
	solution.ctx.api.SolutionSetMaxIterations(solution.ctx.h, value)
	return solution.ctx.check()
}

// Solution convergence tolerance.
func (solution *ISolution) Get_Tolerance() (float64, error) {
	return solution.ctx.float64Result(solution.ctx.api.SolutionGetTolerance(solution.ctx.h))
}

func (solution *ISolution) Set_Tolerance(value float64) error {
	solution.ctx.api.SolutionSetTolerance(solution.ctx.h, value)
	return solution.ctx.check()
}

// Set the Frequency for next solution.
func (solution *ISolution) Get_Frequency() (float64, error) {
	return solution.ctx.float64Result(solution.ctx.api.SolutionGetFrequency(solution.ctx.h))
}

func (solution *ISolution) Set_Frequency(value float64) error {
	solution.ctx.api.SolutionSetFrequency(solution.ctx.h, value)
	return solution.ctx.check()
}

// Present control mode.
func (solution *ISolution) Get_ControlMode() (ControlModes, error) {
	v, err := solution.ctx.int32Result(solution.ctx.api.SolutionGetControlMode(solution.ctx.h))
	return ControlModes(v), err
}

func (solution *ISolution) Set_ControlMode(value ControlModes) error {
	solution.ctx.api.SolutionSetControlMode(solution.ctx.h, int32(value))
	return solution.ctx.check()
}

// Max allowable control iterations.
func (solution *ISolution) Get_MaxControlIterations() (int32, error) {
	return solution.ctx.int32Result(solution.ctx.api.SolutionGetMaxControlIterations(solution.ctx.h))
}

func (solution *ISolution) Set_MaxControlIterations(value int32) error {
	solution.ctx.api.SolutionSetMaxControlIterations(solution.ctx.h, value)
	return solution.ctx.check()
}

// Total iterations including control iterations for most recent solution.
func (solution *ISolution) TotalIterations() (int32, error) {
	return solution.ctx.int32Result(solution.ctx.api.SolutionTotalIterations(solution.ctx.h))
}

// Gets the time required to perform the latest solution, in milliseconds.
func (solution *ISolution) ProcessTime() (float64, error) {
	return solution.ctx.float64Result(solution.ctx.api.SolutionProcessTime(solution.ctx.h))
}
