package dss

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dss-extensions/godss/internal/engine"
	"github.com/dss-extensions/godss/internal/engine/enginetest"
)

func newTestDSS(t *testing.T) (*IDSS, *enginetest.Fake) {
	t.Helper()
	api := enginetest.New()
	d, err := newContext(api)
	require.NoError(t, err)
	t.Cleanup(d.Close)
	return d, api
}

func TestCloseDisposesExactlyOnce(t *testing.T) {
	api := enginetest.New()
	d, err := newContext(api)
	require.NoError(t, err)
	require.Equal(t, 2, api.LiveContexts()) // prime + ours

	d.Close()
	require.Equal(t, 1, api.LiveContexts())
	require.Equal(t, 1, api.DisposeCount(d.ctx.h))

	// closing again must not reach the engine
	d.Close()
	require.Equal(t, 1, api.DisposeCount(d.ctx.h))
}

func TestPrimeCloseIsNoop(t *testing.T) {
	api := enginetest.New()
	d := wrap(api, api.Prime(), true)

	d.Close()
	d.Close()
	require.Equal(t, 1, api.LiveContexts())
	require.Equal(t, 0, api.DisposeCount(api.Prime()))

	// still usable after Close
	_, err := d.Version()
	require.NoError(t, err)
}

func TestNewContextFailureIsInitializationError(t *testing.T) {
	d, api := newTestDSS(t)

	boom := errors.New("engine out of contexts")
	api.FailNextContext(boom)

	other, err := d.NewContext()
	require.Nil(t, other)

	var initErr *InitializationError
	require.ErrorAs(t, err, &initErr)
	require.ErrorIs(t, err, boom)
}

func TestUnbuiltBindingsError(t *testing.T) {
	err := &InitializationError{Err: engine.ErrNotBuilt}
	require.ErrorIs(t, err, engine.ErrNotBuilt)
}

func TestErrorAttributionAndClearing(t *testing.T) {
	d, _ := newTestDSS(t)

	err := d.Command("frobnicate")
	var engErr *EngineError
	require.ErrorAs(t, err, &engErr)
	require.Equal(t, int32(enginetest.ErrUnknownCommand), engErr.Code)
	require.Contains(t, engErr.Message, "frobnicate")
	require.Contains(t, engErr.Error(), "(DSSError#")

	// the failure must not leak into the next operation
	_, err = d.Version()
	require.NoError(t, err)
}

func TestContextsAreIsolated(t *testing.T) {
	d1, _ := newTestDSS(t)

	d2, err := d1.NewContext()
	require.NoError(t, err)
	defer d2.Close()

	require.NoError(t, d1.Command("new circuit.alpha"))

	// d2 has no circuit and must not see d1's state
	name, err := d1.ActiveCircuit.Name()
	require.NoError(t, err)
	require.Equal(t, "alpha", name)

	_, err = d2.ActiveCircuit.Name()
	var engErr *EngineError
	require.ErrorAs(t, err, &engErr)
	require.Equal(t, int32(enginetest.ErrNoCircuit), engErr.Code)

	// the error on d2 must not have touched d1
	_, err = d1.ActiveCircuit.Name()
	require.NoError(t, err)
}

func TestConcurrentContextsIndependentOutcomes(t *testing.T) {
	d1, _ := newTestDSS(t)
	d2, err := d1.NewContext()
	require.NoError(t, err)
	defer d2.Close()

	require.NoError(t, d1.Command("new circuit.alpha"))

	const rounds = 200
	var wg sync.WaitGroup
	wg.Add(2)

	validErrs := make([]error, rounds)
	invalidErrs := make([]error, rounds)

	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_, validErrs[i] = d1.ActiveCircuit.Name()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			invalidErrs[i] = d2.Command("frobnicate")
		}
	}()
	wg.Wait()

	for i := 0; i < rounds; i++ {
		require.NoError(t, validErrs[i])
		var engErr *EngineError
		require.ErrorAs(t, invalidErrs[i], &engErr)
		require.Equal(t, int32(enginetest.ErrUnknownCommand), engErr.Code)
		require.NotEmpty(t, engErr.Message)
	}
}
