package dss

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dss-extensions/godss/internal/engine/enginetest"
)

func buildTestCircuit(t *testing.T) *IDSS {
	t.Helper()
	d, _ := newTestDSS(t)
	require.NoError(t, d.Command(testCircuit))
	return d
}

func TestCircuitInventory(t *testing.T) {
	d := buildTestCircuit(t)
	circuit := &d.ActiveCircuit

	buses, err := circuit.AllBusNames()
	require.NoError(t, err)
	require.Equal(t, []string{"sourcebus", "650", "632", "671"}, buses)

	n, err := circuit.NumBuses()
	require.NoError(t, err)
	require.Equal(t, int32(len(buses)), n)

	nodes, err := circuit.AllNodeNames()
	require.NoError(t, err)
	require.Contains(t, nodes, "632.1")

	nn, err := circuit.NumNodes()
	require.NoError(t, err)
	require.Equal(t, int32(len(nodes)), nn)

	elements, err := circuit.AllElementNames()
	require.NoError(t, err)
	require.Equal(t, []string{"Load.671", "Line.650632"}, elements)

	vmagPu, err := circuit.AllBusVmagPu()
	require.NoError(t, err)
	require.Len(t, vmagPu, len(nodes))

	volts, err := circuit.AllBusVolts()
	require.NoError(t, err)
	require.Len(t, volts, len(nodes))
}

func TestCircuitPowerAndLosses(t *testing.T) {
	d := buildTestCircuit(t)
	circuit := &d.ActiveCircuit

	power, err := circuit.TotalPower()
	require.NoError(t, err)
	require.Equal(t, complex(-1155, -660), power)

	require.NoError(t, circuit.Solution.Set_LoadMult(0.5))
	power, err = circuit.TotalPower()
	require.NoError(t, err)
	require.Equal(t, complex(-577.5, -330), power)

	_, err = circuit.Losses()
	require.NoError(t, err)
	_, err = circuit.LineLosses()
	require.NoError(t, err)
	_, err = circuit.SubstationLosses()
	require.NoError(t, err)
}

func TestCircuitElementIteration(t *testing.T) {
	d := buildTestCircuit(t)
	circuit := &d.ActiveCircuit

	require.NoError(t, circuit.Disable("Load.671"))
	power, err := circuit.TotalPower()
	require.NoError(t, err)
	require.Equal(t, complex(0, 0), power)
	require.NoError(t, circuit.Enable("Load.671"))

	i, err := circuit.FirstPCElement()
	require.NoError(t, err)
	require.Equal(t, int32(1), i)
	name, err := circuit.ActiveCktElement.Name()
	require.NoError(t, err)
	require.Equal(t, "Load.671", name)
	i, err = circuit.NextPCElement()
	require.NoError(t, err)
	require.Zero(t, i)

	i, err = circuit.FirstPDElement()
	require.NoError(t, err)
	require.Equal(t, int32(1), i)
	name, err = circuit.ActiveCktElement.Name()
	require.NoError(t, err)
	require.Equal(t, "Line.650632", name)
}

func TestBusProperties(t *testing.T) {
	d := buildTestCircuit(t)
	circuit := &d.ActiveCircuit
	bus := &circuit.ActiveBus

	idx, err := circuit.SetActiveBus("632")
	require.NoError(t, err)
	require.Equal(t, int32(2), idx)

	name, err := bus.Name()
	require.NoError(t, err)
	require.Equal(t, "632", name)

	kvBase, err := bus.Get_kVBase()
	require.NoError(t, err)
	require.Equal(t, 12.47, kvBase)

	nodes, err := bus.Nodes()
	require.NoError(t, err)
	require.Equal(t, []int32{1, 2, 3}, nodes)

	voltages, err := bus.Voltages()
	require.NoError(t, err)
	require.Len(t, voltages, len(nodes))

	vma, err := bus.VMagAngle()
	require.NoError(t, err)
	require.Len(t, vma, 2*len(nodes))

	puvma, err := bus.PUVMagAngle()
	require.NoError(t, err)
	require.Equal(t, 1.0, puvma[0])

	// unknown bus must not disturb the active one
	_, err = circuit.SetActiveBus("nosuchbus")
	var engErr *EngineError
	require.ErrorAs(t, err, &engErr)
	name, err = bus.Name()
	require.NoError(t, err)
	require.Equal(t, "632", name)
}

func TestBusCoordinates(t *testing.T) {
	d := buildTestCircuit(t)
	circuit := &d.ActiveCircuit
	bus := &circuit.ActiveBus

	_, err := circuit.SetActiveBus("671")
	require.NoError(t, err)

	defined, err := bus.Coorddefined()
	require.NoError(t, err)
	require.False(t, defined)

	require.NoError(t, bus.Set_x(120.5))
	require.NoError(t, bus.Set_y(-35.25))

	defined, err = bus.Coorddefined()
	require.NoError(t, err)
	require.True(t, defined)

	x, err := bus.Get_x()
	require.NoError(t, err)
	require.Equal(t, 120.5, x)
	y, err := bus.Get_y()
	require.NoError(t, err)
	require.Equal(t, -35.25, y)
}

func TestBusShortCircuitAndConnectivity(t *testing.T) {
	d := buildTestCircuit(t)
	circuit := &d.ActiveCircuit
	bus := &circuit.ActiveBus

	_, err := circuit.SetActiveBus("632")
	require.NoError(t, err)

	ok, err := bus.ZscRefresh()
	require.NoError(t, err)
	require.True(t, ok)

	z1, err := bus.Zsc1()
	require.NoError(t, err)
	require.Equal(t, complex(0.11, 0.33), z1)

	zm, err := bus.ZscMatrix()
	require.NoError(t, err)
	require.Len(t, zm, 9)
	require.Equal(t, z1, zm[0])

	lines, err := bus.LineList()
	require.NoError(t, err)
	require.Equal(t, []string{"LINE.650632"}, lines)

	_, err = circuit.SetActiveBus("671")
	require.NoError(t, err)
	loads, err := bus.LoadList()
	require.NoError(t, err)
	require.Equal(t, []string{"LOAD.671"}, loads)

	pce, err := bus.AllPCEatBus()
	require.NoError(t, err)
	require.Equal(t, loads, pce)
}

func TestCktElementProperties(t *testing.T) {
	d := buildTestCircuit(t)
	circuit := &d.ActiveCircuit
	element := &circuit.ActiveCktElement

	_, err := circuit.SetActiveElement("Load.671")
	require.NoError(t, err)

	phases, err := element.NumPhases()
	require.NoError(t, err)
	require.Equal(t, int32(1), phases)

	terminals, err := element.NumTerminals()
	require.NoError(t, err)
	require.Equal(t, int32(1), terminals)

	conductors, err := element.NumConductors()
	require.NoError(t, err)
	require.Equal(t, int32(2), conductors)

	buses, err := element.Get_BusNames()
	require.NoError(t, err)
	require.Equal(t, []string{"671.1.2.3"}, buses)

	powers, err := element.Powers()
	require.NoError(t, err)
	require.Len(t, powers, int(conductors*terminals))
	require.Equal(t, complex(1155, 660), powers[0])

	currents, err := element.Currents()
	require.NoError(t, err)
	require.Len(t, currents, int(conductors*terminals))

	losses, err := element.Losses()
	require.NoError(t, err)
	require.Equal(t, complex(42.0, 11.5), losses)

	props, err := element.AllPropertyNames()
	require.NoError(t, err)
	require.Contains(t, props, "kW")

	enabled, err := element.Get_Enabled()
	require.NoError(t, err)
	require.True(t, enabled)
	require.NoError(t, element.Set_Enabled(false))
	enabled, err = element.Get_Enabled()
	require.NoError(t, err)
	require.False(t, enabled)
}

func TestSolutionRoundTrips(t *testing.T) {
	d := buildTestCircuit(t)
	solution := &d.ActiveCircuit.Solution

	mode, err := solution.Get_Mode()
	require.NoError(t, err)
	require.Equal(t, SolveModes_SnapShot, mode)

	require.NoError(t, solution.Set_Mode(SolveModes_Daily))
	mode, err = solution.Get_Mode()
	require.NoError(t, err)
	require.Equal(t, SolveModes_Daily, mode)

	require.NoError(t, solution.Set_Number(24))
	n, err := solution.Get_Number()
	require.NoError(t, err)
	require.Equal(t, int32(24), n)

	require.NoError(t, solution.Set_StepsizeMin(60))
	step, err := solution.Get_StepSize()
	require.NoError(t, err)
	require.Equal(t, 3600.0, step)

	require.NoError(t, solution.Set_Hour(13))
	dblHour, err := solution.Get_dblHour()
	require.NoError(t, err)
	require.Equal(t, 13.0, dblHour)

	require.NoError(t, solution.Set_ControlMode(ControlModes_Off))
	cm, err := solution.Get_ControlMode()
	require.NoError(t, err)
	require.Equal(t, ControlModes_Off, cm)

	require.NoError(t, solution.Set_MaxIterations(30))
	require.NoError(t, solution.Set_Tolerance(1e-6))
	require.NoError(t, solution.Set_Frequency(50))
}

func TestSolutionValidation(t *testing.T) {
	d := buildTestCircuit(t)
	solution := &d.ActiveCircuit.Solution

	var engErr *EngineError

	err := solution.Set_Mode(SolveModes(99))
	require.ErrorAs(t, err, &engErr)
	require.Equal(t, int32(enginetest.ErrBadProperty), engErr.Code)

	err = solution.Set_Tolerance(-1)
	require.ErrorAs(t, err, &engErr)

	err = solution.Set_MaxIterations(0)
	require.ErrorAs(t, err, &engErr)

	err = solution.Set_Frequency(0)
	require.ErrorAs(t, err, &engErr)

	// rejected values must not stick
	tol, err := solution.Get_Tolerance()
	require.NoError(t, err)
	require.Equal(t, 0.0001, tol)
}

func TestSolve(t *testing.T) {
	d := buildTestCircuit(t)
	solution := &d.ActiveCircuit.Solution

	require.NoError(t, solution.Solve())

	converged, err := solution.Get_Converged()
	require.NoError(t, err)
	require.True(t, converged)

	iterations, err := solution.Iterations()
	require.NoError(t, err)
	require.Equal(t, int32(2), iterations)

	total, err := solution.TotalIterations()
	require.NoError(t, err)
	require.GreaterOrEqual(t, total, iterations)

	pt, err := solution.ProcessTime()
	require.NoError(t, err)
	require.Greater(t, pt, 0.0)
}

func TestSolveWithoutCircuit(t *testing.T) {
	d, _ := newTestDSS(t)

	err := d.ActiveCircuit.Solution.Solve()
	var engErr *EngineError
	require.ErrorAs(t, err, &engErr)
	require.Equal(t, int32(enginetest.ErrNoCircuit), engErr.Code)
	require.NotEmpty(t, engErr.Message)
}

func TestLoadsProperties(t *testing.T) {
	d := buildTestCircuit(t)
	loads := &d.ActiveCircuit.Loads

	names, err := loads.AllNames()
	require.NoError(t, err)
	require.Equal(t, []string{"671"}, names)

	i, err := loads.First()
	require.NoError(t, err)
	require.Equal(t, int32(1), i)

	name, err := loads.Get_Name()
	require.NoError(t, err)
	require.Equal(t, "671", name)

	kw, err := loads.Get_kW()
	require.NoError(t, err)
	require.Equal(t, 1155.0, kw)

	require.NoError(t, loads.Set_kW(500))
	kw, err = loads.Get_kW()
	require.NoError(t, err)
	require.Equal(t, 500.0, kw)

	require.NoError(t, loads.Set_kvar(120))
	kvar, err := loads.Get_kvar()
	require.NoError(t, err)
	require.Equal(t, 120.0, kvar)

	require.NoError(t, loads.Set_kV(2.4))
	kv, err := loads.Get_kV()
	require.NoError(t, err)
	require.Equal(t, 2.4, kv)

	model, err := loads.Get_Model()
	require.NoError(t, err)
	require.Equal(t, LoadModels_ConstPQ, model)
	require.NoError(t, loads.Set_Model(LoadModels_ZIPV))

	require.NoError(t, loads.Set_Status(LoadStatus_Fixed))
	status, err := loads.Get_Status()
	require.NoError(t, err)
	require.Equal(t, LoadStatus_Fixed, status)

	zipv := []float64{0.5, 0.25, 0.25, 0.5, 0.25, 0.25, 0.8}
	require.NoError(t, loads.Set_ZIPV(zipv))
	got, err := loads.Get_ZIPV()
	require.NoError(t, err)
	require.Equal(t, zipv, got)

	require.NoError(t, loads.Set_Daily("residential"))
	daily, err := loads.Get_Daily()
	require.NoError(t, err)
	require.Equal(t, "residential", daily)

	i, err = loads.Next()
	require.NoError(t, err)
	require.Zero(t, i)
}

func TestLoadsInvalidKV(t *testing.T) {
	d := buildTestCircuit(t)
	loads := &d.ActiveCircuit.Loads

	_, err := loads.First()
	require.NoError(t, err)

	err = loads.Set_kV(-13.8)
	var engErr *EngineError
	require.ErrorAs(t, err, &engErr)
	require.Equal(t, int32(enginetest.ErrBadProperty), engErr.Code)

	kv, err := loads.Get_kV()
	require.NoError(t, err)
	require.Equal(t, 12.47, kv)
}

func TestLinesProperties(t *testing.T) {
	d := buildTestCircuit(t)
	lines := &d.ActiveCircuit.Lines

	n, err := lines.Count()
	require.NoError(t, err)
	require.Equal(t, int32(1), n)

	i, err := lines.First()
	require.NoError(t, err)
	require.Equal(t, int32(1), i)

	name, err := lines.Get_Name()
	require.NoError(t, err)
	require.Equal(t, "650632", name)

	bus1, err := lines.Get_Bus1()
	require.NoError(t, err)
	require.Equal(t, "650.1.2.3", bus1)

	length, err := lines.Get_Length()
	require.NoError(t, err)
	require.Equal(t, 2000.0, length)

	err = lines.Set_Length(-5)
	var engErr *EngineError
	require.ErrorAs(t, err, &engErr)

	phases, err := lines.Get_Phases()
	require.NoError(t, err)
	require.Equal(t, int32(3), phases)

	require.NoError(t, lines.Set_R1(0.0987))
	r1, err := lines.Get_R1()
	require.NoError(t, err)
	require.Equal(t, 0.0987, r1)

	require.NoError(t, lines.Set_Units(LineUnits_km))
	units, err := lines.Get_Units()
	require.NoError(t, err)
	require.Equal(t, LineUnits_km, units)

	rm := []float64{0.3465, 0.156, 0.158, 0.156, 0.3375, 0.1535, 0.158, 0.1535, 0.3414}
	require.NoError(t, lines.Set_Rmatrix(rm))
	got, err := lines.Get_Rmatrix()
	require.NoError(t, err)
	require.Equal(t, rm, got)
}

func TestMeters(t *testing.T) {
	d := buildTestCircuit(t)
	meters := &d.ActiveCircuit.Meters

	names, err := meters.AllNames()
	require.NoError(t, err)
	require.Equal(t, []string{"main"}, names)

	i, err := meters.First()
	require.NoError(t, err)
	require.Equal(t, int32(1), i)

	regNames, err := meters.RegisterNames()
	require.NoError(t, err)
	lossIdx := -1
	for j, rn := range regNames {
		if rn == "Zone Losses kWh" {
			lossIdx = j
		}
	}
	require.GreaterOrEqual(t, lossIdx, 0)

	// the script solved once at loadmult 1
	values, err := meters.RegisterValues()
	require.NoError(t, err)
	require.Equal(t, 10.0, values[lossIdx])

	totals, err := meters.Totals()
	require.NoError(t, err)
	require.Equal(t, values[lossIdx], totals[lossIdx])

	require.NoError(t, meters.ResetAll())
	values, err = meters.RegisterValues()
	require.NoError(t, err)
	require.Zero(t, values[lossIdx])

	require.NoError(t, d.ActiveCircuit.Solution.Set_LoadMult(0.5))
	require.NoError(t, d.ActiveCircuit.Solution.Solve())
	values, err = meters.RegisterValues()
	require.NoError(t, err)
	require.Equal(t, 5.0, values[lossIdx])

	require.NoError(t, meters.SampleAll())
	require.NoError(t, meters.SaveAll())
}

func TestActiveClass(t *testing.T) {
	d := buildTestCircuit(t)
	activeClass := &d.ActiveCircuit.ActiveClass

	idx, err := d.SetActiveClass("Load")
	require.NoError(t, err)
	require.Positive(t, idx)

	className, err := activeClass.ActiveClassName()
	require.NoError(t, err)
	require.Equal(t, "Load", className)

	parent, err := activeClass.ActiveClassParent()
	require.NoError(t, err)
	require.Equal(t, "TPCElement", parent)

	names, err := activeClass.AllNames()
	require.NoError(t, err)
	require.Equal(t, []string{"671"}, names)

	n, err := activeClass.NumElements()
	require.NoError(t, err)
	require.Equal(t, int32(1), n)

	i, err := activeClass.First()
	require.NoError(t, err)
	require.Equal(t, int32(1), i)
	name, err := activeClass.Get_Name()
	require.NoError(t, err)
	require.Equal(t, "671", name)
	i, err = activeClass.Next()
	require.NoError(t, err)
	require.Zero(t, i)

	_, err = d.SetActiveClass("NoSuchClass")
	var engErr *EngineError
	require.ErrorAs(t, err, &engErr)
}
