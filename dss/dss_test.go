package dss

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dss-extensions/godss/internal/engine"
	"github.com/dss-extensions/godss/internal/engine/enginetest"
)

// testCircuit is a small feeder: one line, one load, one meter.
const testCircuit = `clear
new circuit.test
new line.650632 bus1=650.1.2.3 bus2=632.1.2.3 phases=3 length=2000
new load.671 bus1=671.1.2.3 kw=1155 kvar=660
new energymeter.main element=line.650632
set mode=snap
solve`

func TestVersionAndClasses(t *testing.T) {
	d, _ := newTestDSS(t)

	v, err := d.Version()
	require.NoError(t, err)
	require.NotEmpty(t, v)

	n, err := d.NumClasses()
	require.NoError(t, err)

	classes, err := d.Classes()
	require.NoError(t, err)
	require.Len(t, classes, int(n))
	require.Contains(t, classes, "Load")
}

func TestNewCircuit(t *testing.T) {
	d, _ := newTestDSS(t)

	n, err := d.NumCircuits()
	require.NoError(t, err)
	require.Zero(t, n)

	circuit, err := d.NewCircuit("feeder")
	require.NoError(t, err)
	require.Same(t, &d.ActiveCircuit, circuit)

	name, err := circuit.Name()
	require.NoError(t, err)
	require.Equal(t, "feeder", name)

	n, err = d.NumCircuits()
	require.NoError(t, err)
	require.Equal(t, int32(1), n)

	require.NoError(t, d.ClearAll())
	n, err = d.NumCircuits()
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestTextCommandRoundTrip(t *testing.T) {
	d, _ := newTestDSS(t)

	require.NoError(t, d.Text.Set_Command("new circuit.demo"))
	cmd, err := d.Text.Get_Command()
	require.NoError(t, err)
	require.Equal(t, "new circuit.demo", cmd)

	_, err = d.Text.Result()
	require.NoError(t, err)
}

func TestBehaviorToggles(t *testing.T) {
	d, _ := newTestDSS(t)

	for _, tc := range []struct {
		get func() (bool, error)
		set func(bool) error
	}{
		{d.Get_ErrorEarlyAbort, d.Set_ErrorEarlyAbort},
		{d.Get_ErrorExtendedErrors, d.Set_ErrorExtendedErrors},
		{d.Get_AllowChangeDir, d.Set_AllowChangeDir},
		{d.Get_AllowForms, d.Set_AllowForms},
	} {
		v, err := tc.get()
		require.NoError(t, err)
		require.True(t, v)

		require.NoError(t, tc.set(false))
		v, err = tc.get()
		require.NoError(t, err)
		require.False(t, v)

		require.NoError(t, tc.set(true))
	}
}

func TestDataPathRoundTrip(t *testing.T) {
	d, _ := newTestDSS(t)

	require.NoError(t, d.Set_DataPath("/tmp/dss-out"))
	p, err := d.Get_DataPath()
	require.NoError(t, err)
	require.Equal(t, "/tmp/dss-out", p)
}

// oddComplexAPI returns malformed complex buffers so the pairing
// checks can be exercised.
type oddComplexAPI struct {
	*enginetest.Fake
}

func (o *oddComplexAPI) CircuitLosses(engine.Handle) []float64 {
	return []float64{1.5, 2.5, 3.5}
}

func (o *oddComplexAPI) BusVoltages(engine.Handle) []float64 {
	return []float64{1, 2, 3, 4, 5}
}

func TestMalformedComplexBuffers(t *testing.T) {
	d, err := newContext(&oddComplexAPI{enginetest.New()})
	require.NoError(t, err)
	defer d.Close()

	_, err = d.ActiveCircuit.Losses()
	var mErr *MarshalError
	require.ErrorAs(t, err, &mErr)
	require.Equal(t, "Circuit.Losses", mErr.Op)
	require.Equal(t, 2, mErr.Want)
	require.Equal(t, 3, mErr.Got)

	_, err = d.ActiveCircuit.ActiveBus.Voltages()
	mErr = nil
	require.ErrorAs(t, err, &mErr)
	require.Equal(t, "Bus.Voltages", mErr.Op)
	require.Equal(t, 5, mErr.Got)
}

// emptyComplexAPI returns the one-element buffer the engine uses as
// the placeholder for an empty complex array.
type emptyComplexAPI struct {
	*enginetest.Fake
}

func (e *emptyComplexAPI) CircuitAllBusVolts(engine.Handle) []float64 {
	return []float64{0}
}

func (e *emptyComplexAPI) BusZscMatrix(engine.Handle) []float64 {
	return []float64{0}
}

func TestEmptyComplexBuffers(t *testing.T) {
	d, err := newContext(&emptyComplexAPI{enginetest.New()})
	require.NoError(t, err)
	defer d.Close()

	volts, err := d.ActiveCircuit.AllBusVolts()
	require.NoError(t, err)
	require.Empty(t, volts)

	zsc, err := d.ActiveCircuit.ActiveBus.ZscMatrix()
	require.NoError(t, err)
	require.Empty(t, zsc)
}
