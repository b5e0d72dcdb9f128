package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errFailed = errors.New("failed")

// fakeClock lets tests move the breaker through cooldowns without sleeping.
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestBreaker(settings Settings) (*Breaker, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	b := New("test", settings)
	b.now = clock.Now
	b.expiry = clock.Now().Add(b.settings.Window)
	return b, clock
}

func run(b *Breaker, success bool) error {
	return b.Do(func() error {
		if success {
			return nil
		}
		return errFailed
	})
}

func TestBreakerStateTransitions(t *testing.T) {
	tests := []struct {
		name          string
		settings      Settings
		requests      []bool // true = success, false = failure
		expectedState State
	}{
		{
			name:          "stays closed on successes",
			requests:      []bool{true, true, true},
			expectedState: StateClosed,
		},
		{
			name: "opens after consecutive failures",
			settings: Settings{
				ShouldTrip: func(counts Counts) bool {
					return counts.ConsecutiveFailures >= 3
				},
			},
			requests:      []bool{false, false, false},
			expectedState: StateOpen,
		},
		{
			name: "success resets the failure streak",
			settings: Settings{
				ShouldTrip: func(counts Counts) bool {
					return counts.ConsecutiveFailures >= 2
				},
			},
			requests:      []bool{false, true, false},
			expectedState: StateClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breaker, _ := newTestBreaker(tt.settings)
			for _, success := range tt.requests {
				_ = run(breaker, success)
			}
			assert.Equal(t, tt.expectedState, breaker.State())
		})
	}
}

func TestBreakerCounts(t *testing.T) {
	breaker, _ := newTestBreaker(Settings{})

	require.NoError(t, run(breaker, true))

	counts := breaker.Counts()
	assert.Equal(t, uint32(1), counts.Requests)
	assert.Equal(t, uint32(1), counts.TotalSuccesses)
	assert.Equal(t, uint32(1), counts.ConsecutiveSuccesses)

	assert.ErrorIs(t, run(breaker, false), errFailed)

	counts = breaker.Counts()
	assert.Equal(t, uint32(2), counts.Requests)
	assert.Equal(t, uint32(1), counts.TotalFailures)
	assert.Equal(t, uint32(1), counts.ConsecutiveFailures)
	assert.Equal(t, uint32(0), counts.ConsecutiveSuccesses)
}

func TestBreakerWindowResetsCounts(t *testing.T) {
	breaker, clock := newTestBreaker(Settings{Window: time.Minute})

	_ = run(breaker, false)
	assert.Equal(t, uint32(1), breaker.Counts().TotalFailures)

	clock.Advance(2 * time.Minute)
	assert.Equal(t, StateClosed, breaker.State())
	assert.Equal(t, Counts{}, breaker.Counts())
}

func TestBreakerOpenState(t *testing.T) {
	breaker, _ := newTestBreaker(Settings{
		ShouldTrip: func(counts Counts) bool {
			return counts.ConsecutiveFailures >= 2
		},
	})

	_ = run(breaker, false)
	_ = run(breaker, false)
	assert.Equal(t, StateOpen, breaker.State())

	called := false
	err := breaker.Do(func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

func TestBreakerHalfOpenState(t *testing.T) {
	breaker, clock := newTestBreaker(Settings{
		HalfOpenProbes: 2,
		Cooldown:       time.Second,
		ShouldTrip: func(counts Counts) bool {
			return counts.ConsecutiveFailures >= 2
		},
	})

	_ = run(breaker, false)
	_ = run(breaker, false)
	require.Equal(t, StateOpen, breaker.State())

	clock.Advance(2 * time.Second)
	assert.Equal(t, StateHalfOpen, breaker.State())

	require.NoError(t, run(breaker, true))
	assert.Equal(t, StateHalfOpen, breaker.State())
	require.NoError(t, run(breaker, true))
	assert.Equal(t, StateClosed, breaker.State())
}

func TestBreakerHalfOpenFailureReopens(t *testing.T) {
	breaker, clock := newTestBreaker(Settings{
		Cooldown: time.Second,
		ShouldTrip: func(counts Counts) bool {
			return counts.ConsecutiveFailures >= 1
		},
	})

	_ = run(breaker, false)
	clock.Advance(2 * time.Second)
	require.Equal(t, StateHalfOpen, breaker.State())

	_ = run(breaker, false)
	assert.Equal(t, StateOpen, breaker.State())
}

func TestBreakerIgnoresNonFailures(t *testing.T) {
	breaker, _ := newTestBreaker(Settings{
		ShouldTrip: func(counts Counts) bool {
			return counts.ConsecutiveFailures >= 1
		},
		IsFailure: func(err error) bool {
			return err != nil && !errors.Is(err, context.Canceled)
		},
	})

	err := breaker.Do(func() error { return context.Canceled })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateClosed, breaker.State())
	assert.Equal(t, uint32(1), breaker.Counts().TotalSuccesses)
}

func TestBreakerPanicCountsAsFailure(t *testing.T) {
	breaker, _ := newTestBreaker(Settings{
		ShouldTrip: func(counts Counts) bool {
			return counts.ConsecutiveFailures >= 1
		},
	})

	assert.Panics(t, func() {
		_ = breaker.Do(func() error { panic("boom") })
	})
	assert.Equal(t, StateOpen, breaker.State())
}

func TestBreakerCallbacks(t *testing.T) {
	var transitions []string

	breaker, clock := newTestBreaker(Settings{
		Cooldown: 10 * time.Millisecond,
		ShouldTrip: func(counts Counts) bool {
			return counts.ConsecutiveFailures >= 2
		},
		OnStateChange: func(name string, from State, to State) {
			transitions = append(transitions, from.String()+"->"+to.String())
		},
	})

	_ = run(breaker, false)
	_ = run(breaker, false)
	clock.Advance(20 * time.Millisecond)

	assert.Equal(t, StateHalfOpen, breaker.State())
	assert.Equal(t, []string{"closed->open", "open->half-open"}, transitions)
}
