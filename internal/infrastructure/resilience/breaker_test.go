package resilience

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func succeed(b *Breaker) error {
	_, err := Do(b, func() (struct{}, error) { return struct{}{}, nil })
	return err
}

func fail(b *Breaker) error {
	_, err := Do(b, func() (struct{}, error) { return struct{}{}, errBoom })
	return err
}

func TestBreakerStateString(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "unknown", State(99).String())
}

func TestBreakerPassesResults(t *testing.T) {
	b := New("test", Settings{})

	v, err := Do(b, func() (int, error) { return 42, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = Do(b, func() (int, error) { return 0, errBoom })
	assert.ErrorIs(t, err, errBoom)
}

func TestBreakerCounts(t *testing.T) {
	b := New("test", Settings{})

	require.NoError(t, succeed(b))
	require.NoError(t, succeed(b))
	require.ErrorIs(t, fail(b), errBoom)

	counts := b.Counts()
	assert.Equal(t, uint32(3), counts.Requests)
	assert.Equal(t, uint32(2), counts.TotalSuccesses)
	assert.Equal(t, uint32(1), counts.TotalFailures)
	assert.Equal(t, uint32(1), counts.ConsecutiveFailures)
	assert.Equal(t, uint32(0), counts.ConsecutiveSuccesses)
}

func TestBreakerTrips(t *testing.T) {
	var transitions []State
	b := New("test", Settings{
		ReadyToTrip: func(c Counts) bool { return c.ConsecutiveFailures >= 3 },
		OnStateChange: func(name string, from, to State) {
			transitions = append(transitions, to)
		},
	})

	for i := 0; i < 3; i++ {
		require.ErrorIs(t, fail(b), errBoom)
	}
	assert.Equal(t, StateOpen, b.State())
	assert.Equal(t, []State{StateOpen}, transitions)

	// Open state rejects without invoking the request.
	called := false
	_, err := Do(b, func() (struct{}, error) {
		called = true
		return struct{}{}, nil
	})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

func TestBreakerRecovery(t *testing.T) {
	b := New("test", Settings{
		MaxRequests: 2,
		Timeout:     20 * time.Millisecond,
		ReadyToTrip: func(c Counts) bool { return c.ConsecutiveFailures >= 1 },
	})

	require.ErrorIs(t, fail(b), errBoom)
	require.Equal(t, StateOpen, b.State())

	time.Sleep(30 * time.Millisecond)
	require.Equal(t, StateHalfOpen, b.State())

	// MaxRequests successful probes close the circuit again.
	require.NoError(t, succeed(b))
	require.NoError(t, succeed(b))
	assert.Equal(t, StateClosed, b.State())
}

func TestBreakerHalfOpenFailureReopens(t *testing.T) {
	b := New("test", Settings{
		Timeout:     20 * time.Millisecond,
		ReadyToTrip: func(c Counts) bool { return c.ConsecutiveFailures >= 1 },
	})

	require.ErrorIs(t, fail(b), errBoom)
	time.Sleep(30 * time.Millisecond)
	require.Equal(t, StateHalfOpen, b.State())

	require.ErrorIs(t, fail(b), errBoom)
	assert.Equal(t, StateOpen, b.State())
}

func TestBreakerHalfOpenLimitsProbes(t *testing.T) {
	b := New("test", Settings{
		MaxRequests: 1,
		Timeout:     20 * time.Millisecond,
		ReadyToTrip: func(c Counts) bool { return c.ConsecutiveFailures >= 1 },
	})

	require.ErrorIs(t, fail(b), errBoom)
	time.Sleep(30 * time.Millisecond)
	require.Equal(t, StateHalfOpen, b.State())

	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		Do(b, func() (struct{}, error) {
			<-release
			return struct{}{}, nil
		})
		close(done)
	}()

	// Give the probe time to occupy the only half-open slot.
	time.Sleep(10 * time.Millisecond)
	_, err := Do(b, func() (struct{}, error) { return struct{}{}, nil })
	assert.ErrorIs(t, err, ErrTooManyRequests)

	close(release)
	<-done
	assert.Equal(t, StateClosed, b.State())
}

func TestBreakerPanicCountsAsFailure(t *testing.T) {
	b := New("test", Settings{
		ReadyToTrip: func(c Counts) bool { return c.ConsecutiveFailures >= 1 },
	})

	assert.Panics(t, func() {
		Do(b, func() (struct{}, error) { panic("kaboom") })
	})
	assert.Equal(t, StateOpen, b.State())
}

func TestBreakerIntervalResetsCounts(t *testing.T) {
	b := New("test", Settings{Interval: 20 * time.Millisecond})

	require.ErrorIs(t, fail(b), errBoom)
	require.Equal(t, uint32(1), b.Counts().TotalFailures)

	time.Sleep(30 * time.Millisecond)
	require.NoError(t, succeed(b))
	counts := b.Counts()
	assert.Equal(t, uint32(0), counts.TotalFailures)
	assert.Equal(t, uint32(1), counts.TotalSuccesses)
}

func TestBreakerDefaults(t *testing.T) {
	b := New("test", Settings{})
	assert.Equal(t, "test", b.Name())
	assert.Equal(t, StateClosed, b.State())

	// Default trip threshold is more than five consecutive failures.
	for i := 0; i < 5; i++ {
		require.ErrorIs(t, fail(b), errBoom)
	}
	assert.Equal(t, StateClosed, b.State())
	require.ErrorIs(t, fail(b), errBoom)
	assert.Equal(t, StateOpen, b.State())
}
