package resilience

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrCircuitOpen     = errors.New("circuit breaker is open")
	ErrTooManyRequests = errors.New("too many requests while circuit is half-open")
)

// State represents the circuit breaker state
type State int

const (
	StateClosed State = iota
	StateHalfOpen
	StateOpen
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateHalfOpen:
		return "half-open"
	case StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Settings configures the circuit breaker behavior
type Settings struct {
	// HalfOpenProbes is how many calls may run while half-open; the same
	// number of consecutive successes closes the circuit again.
	HalfOpenProbes uint32
	// Window is how often closed-state counts are cleared.
	Window time.Duration
	// Cooldown is how long the circuit stays open before probing.
	Cooldown time.Duration
	// ShouldTrip decides, after a failure in closed state, whether to open.
	ShouldTrip func(counts Counts) bool
	// IsFailure classifies a call result. Errors it rejects (for example a
	// 404 from the API or a cancelled context) do not count against the circuit.
	IsFailure func(err error) bool
	// OnStateChange is called whenever the state changes, with the lock held.
	OnStateChange func(name string, from State, to State)
}

// Counts holds the statistics for the current window
type Counts struct {
	Requests             uint32
	TotalSuccesses       uint32
	TotalFailures        uint32
	ConsecutiveSuccesses uint32
	ConsecutiveFailures  uint32
}

// Breaker guards calls to a remote dependency
type Breaker struct {
	name     string
	settings Settings
	now      func() time.Time

	mu         sync.Mutex
	state      State
	counts     Counts
	generation uint64
	expiry     time.Time
}

// New creates a new circuit breaker with the given settings
func New(name string, settings Settings) *Breaker {
	if settings.HalfOpenProbes == 0 {
		settings.HalfOpenProbes = 1
	}
	if settings.Window <= 0 {
		settings.Window = time.Minute
	}
	if settings.Cooldown <= 0 {
		settings.Cooldown = 30 * time.Second
	}
	if settings.ShouldTrip == nil {
		settings.ShouldTrip = func(counts Counts) bool {
			return counts.ConsecutiveFailures >= 5
		}
	}
	if settings.IsFailure == nil {
		settings.IsFailure = func(err error) bool { return err != nil }
	}

	b := &Breaker{
		name:     name,
		settings: settings,
		now:      time.Now,
		state:    StateClosed,
	}
	b.expiry = b.now().Add(settings.Window)
	return b
}

// Name returns the name of the circuit breaker
func (b *Breaker) Name() string {
	return b.name
}

// State returns the current state of the circuit breaker
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()

	state, _ := b.current(b.now())
	return state
}

// Counts returns a copy of the counts for the current window
func (b *Breaker) Counts() Counts {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.counts
}

// Do runs fn if the circuit accepts it and records the outcome.
// A panic inside fn is recorded as a failure and re-raised.
func (b *Breaker) Do(fn func() error) error {
	generation, err := b.admit()
	if err != nil {
		return err
	}

	completed := false
	defer func() {
		if !completed {
			b.record(generation, false)
		}
	}()

	err = fn()
	completed = true
	b.record(generation, !b.settings.IsFailure(err))
	return err
}

func (b *Breaker) admit() (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	state, generation := b.current(b.now())
	switch {
	case state == StateOpen:
		return generation, ErrCircuitOpen
	case state == StateHalfOpen && b.counts.Requests >= b.settings.HalfOpenProbes:
		return generation, ErrTooManyRequests
	}

	b.counts.Requests++
	return generation, nil
}

func (b *Breaker) record(admitted uint64, success bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	state, generation := b.current(now)
	if generation != admitted {
		// The window rolled over or the state changed while the call ran.
		return
	}

	if success {
		b.counts.TotalSuccesses++
		b.counts.ConsecutiveSuccesses++
		b.counts.ConsecutiveFailures = 0
		if state == StateHalfOpen && b.counts.ConsecutiveSuccesses >= b.settings.HalfOpenProbes {
			b.transition(StateClosed, now)
		}
		return
	}

	b.counts.TotalFailures++
	b.counts.ConsecutiveFailures++
	b.counts.ConsecutiveSuccesses = 0
	switch state {
	case StateClosed:
		if b.settings.ShouldTrip(b.counts) {
			b.transition(StateOpen, now)
		}
	case StateHalfOpen:
		b.transition(StateOpen, now)
	}
}

// current advances time-driven transitions and returns the state and generation.
func (b *Breaker) current(now time.Time) (State, uint64) {
	switch b.state {
	case StateClosed:
		if b.expiry.Before(now) {
			b.newGeneration(now)
		}
	case StateOpen:
		if b.expiry.Before(now) {
			b.transition(StateHalfOpen, now)
		}
	}
	return b.state, b.generation
}

func (b *Breaker) transition(to State, now time.Time) {
	if b.state == to {
		return
	}
	from := b.state
	b.state = to
	b.newGeneration(now)

	if b.settings.OnStateChange != nil {
		b.settings.OnStateChange(b.name, from, to)
	}
}

func (b *Breaker) newGeneration(now time.Time) {
	b.generation++
	b.counts = Counts{}

	switch b.state {
	case StateClosed:
		b.expiry = now.Add(b.settings.Window)
	case StateOpen:
		b.expiry = now.Add(b.settings.Cooldown)
	default:
		b.expiry = time.Time{}
	}
}
