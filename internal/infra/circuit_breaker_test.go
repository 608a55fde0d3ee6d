package infra

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUpstream = errors.New("storage down")

func newTestCB(openTimeout time.Duration) *CircuitBreaker {
	return NewCircuitBreaker(CircuitBreakerConfig{
		FailureThreshold: 3,
		SuccessThreshold: 2,
		OpenTimeout:      openTimeout,
	})
}

func TestCircuitBreakerAbreTrasFallasConsecutivas(t *testing.T) {
	cb := newTestCB(time.Minute)

	for i := 0; i < 3; i++ {
		err := cb.Execute(func() error { return errUpstream })
		require.ErrorIs(t, err, errUpstream)
	}
	assert.Equal(t, CBOpen, cb.State())

	// abierto: fast-fail sin invocar fn
	invocado := false
	err := cb.Execute(func() error { invocado = true; return nil })
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, invocado)
}

func TestCircuitBreakerSeRecuperaViaHalfOpen(t *testing.T) {
	cb := newTestCB(10 * time.Millisecond)

	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return errUpstream })
	}
	require.Equal(t, CBOpen, cb.State())

	time.Sleep(15 * time.Millisecond)
	require.Equal(t, CBHalfOpen, cb.State())

	// dos sondas exitosas cierran el circuito
	require.NoError(t, cb.Execute(func() error { return nil }))
	require.NoError(t, cb.Execute(func() error { return nil }))
	assert.Equal(t, CBClosed, cb.State())
}

func TestCircuitBreakerSondaFallidaVuelveAAbrir(t *testing.T) {
	cb := newTestCB(10 * time.Millisecond)

	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return errUpstream })
	}
	time.Sleep(15 * time.Millisecond)
	require.Equal(t, CBHalfOpen, cb.State())

	err := cb.Execute(func() error { return errUpstream })
	require.ErrorIs(t, err, errUpstream)
	assert.Equal(t, CBOpen, cb.State())
}

func TestCircuitBreakerExitoResetaContadorEnClosed(t *testing.T) {
	cb := newTestCB(time.Minute)

	_ = cb.Execute(func() error { return errUpstream })
	_ = cb.Execute(func() error { return errUpstream })
	require.NoError(t, cb.Execute(func() error { return nil }))

	// las dos fallas previas ya no cuentan
	_ = cb.Execute(func() error { return errUpstream })
	_ = cb.Execute(func() error { return errUpstream })
	assert.Equal(t, CBClosed, cb.State())
}
