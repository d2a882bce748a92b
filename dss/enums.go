package dss

type SolveModes int32

const (
	SolveModes_SnapShot   SolveModes = 0  // Solve a single snapshot power flow
	SolveModes_Daily      SolveModes = 1  // Solve following Daily load shapes
	SolveModes_Yearly     SolveModes = 2  // Solve following Yearly load shapes
	SolveModes_Monte1     SolveModes = 3  // Monte Carlo Mode 1
	SolveModes_LD1        SolveModes = 4  // Load-duration Mode 1
	SolveModes_PeakDay    SolveModes = 5  // Solves for Peak Day using Daily load curve
	SolveModes_DutyCycle  SolveModes = 6  // Solve following Duty Cycle load shapes
	SolveModes_Direct     SolveModes = 7  // Solve direct (forced admittance model)
	SolveModes_MonteFault SolveModes = 8  // Monte carlo Fault Study
	SolveModes_FaultStudy SolveModes = 9  // Fault study at all buses
	SolveModes_Monte2     SolveModes = 10 // Monte Carlo Mode 2
	SolveModes_Monte3     SolveModes = 11 // Monte Carlo Mode 3
	SolveModes_LD2        SolveModes = 12 // Load-Duration Mode 2
	SolveModes_AutoAdd    SolveModes = 13 // Auto add generators or capacitors
	SolveModes_Dynamic    SolveModes = 14 // Solve for dynamics
	SolveModes_Harmonic   SolveModes = 15 // Harmonic solution mode
	SolveModes_Time       SolveModes = 16
	SolveModes_HarmonicT  SolveModes = 17
)

type ControlModes int32

const (
	ControlModes_Static    ControlModes = 0  // Control Mode option - Static
	ControlModes_Event     ControlModes = 1  // Control Mode Option - Event driven solution mode
	ControlModes_Time      ControlModes = 2  // Control mode option - Time driven mode
	ControlModes_Multirate ControlModes = 3  // Control mode option - Multirate mode
	ControlModes_Off       ControlModes = -1 // Control Mode OFF
)

type LoadModels int32

const (
	LoadModels_ConstPQ      LoadModels = 1
	LoadModels_ConstZ       LoadModels = 2
	LoadModels_Motor        LoadModels = 3
	LoadModels_CVR          LoadModels = 4
	LoadModels_ConstI       LoadModels = 5
	LoadModels_ConstPFixedQ LoadModels = 6
	LoadModels_ConstPFixedX LoadModels = 7
	LoadModels_ZIPV         LoadModels = 8
)

type LoadStatus int32

const (
	LoadStatus_Variable LoadStatus = 0
	LoadStatus_Fixed    LoadStatus = 1
	LoadStatus_Exempt   LoadStatus = 2
)

type LineUnits int32

const (
	LineUnits_none  LineUnits = 0 // No line length unit
	LineUnits_Miles LineUnits = 1 // Line length units in miles
	LineUnits_kFt   LineUnits = 2 // Line length units are in thousand feet
	LineUnits_km    LineUnits = 3 // Line length units are km
	LineUnits_meter LineUnits = 4 // Line length units are meters
	LineUnits_ft    LineUnits = 5 // Line units in feet
	LineUnits_inch  LineUnits = 6 // Line length units are inches
	LineUnits_cm    LineUnits = 7 // Line units are cm
	LineUnits_mm    LineUnits = 8 // Line length units are mm
)
