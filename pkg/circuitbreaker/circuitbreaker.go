package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"
)

// State is the current circuit breaker state.
type State int

const (
	// Closed allows calls through.
	Closed State = iota
	// Open rejects calls until the cooldown has passed.
	Open
	// HalfOpen lets calls through to probe recovery.
	HalfOpen
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case HalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

var ErrCircuitOpen = errors.New("circuit breaker is open")

type Config struct {
	FailureThreshold int           // consecutive failures before opening
	RecoveryTimeout  time.Duration // time spent open before probing
	SuccessThreshold int           // probe successes needed to close again

	// IsFailure decides which errors count against the circuit. Nil counts
	// every non-nil error.
	IsFailure func(error) bool

	// OnStateChange is called outside the lock after each transition.
	OnStateChange func(from, to State)
}

func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5,
		RecoveryTimeout:  30 * time.Second,
		SuccessThreshold: 1,
	}
}

// Breaker guards calls to a dependency and opens after repeated failures.
type Breaker struct {
	config Config
	now    func() time.Time

	mutex       sync.Mutex
	state       State
	failures    int
	successes   int
	nextAttempt time.Time
}

// New returns a closed breaker. Zero thresholds and timeouts take the defaults.
func New(config Config) *Breaker {
	defaults := DefaultConfig()
	if config.FailureThreshold <= 0 {
		config.FailureThreshold = defaults.FailureThreshold
	}
	if config.RecoveryTimeout <= 0 {
		config.RecoveryTimeout = defaults.RecoveryTimeout
	}
	if config.SuccessThreshold <= 0 {
		config.SuccessThreshold = defaults.SuccessThreshold
	}

	return &Breaker{
		config: config,
		now:    time.Now,
		state:  Closed,
	}
}

// Call runs fn unless the circuit is open, in which case it returns
// ErrCircuitOpen without calling fn. A cancelled context is not a failure.
func (b *Breaker) Call(ctx context.Context, fn func(context.Context) error) error {
	b.mutex.Lock()
	from, allowed := b.state, b.allow()
	to := b.state
	b.mutex.Unlock()
	b.notify(from, to)

	if !allowed {
		return ErrCircuitOpen
	}

	// Never call user code while holding the lock.
	err := fn(ctx)

	b.mutex.Lock()
	from = b.state
	switch {
	case err == nil:
		b.recordSuccess()
	case ctx.Err() != nil:
	case b.isFailure(err):
		b.recordFailure()
	default:
		b.recordSuccess()
	}
	to = b.state
	b.mutex.Unlock()
	b.notify(from, to)

	return err
}

func (b *Breaker) State() State {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.state
}

func (b *Breaker) Reset() {
	b.mutex.Lock()
	from := b.state
	b.state = Closed
	b.failures = 0
	b.successes = 0
	b.mutex.Unlock()
	b.notify(from, Closed)
}

func (b *Breaker) allow() bool {
	if b.state == Open && !b.now().Before(b.nextAttempt) {
		b.state = HalfOpen
		b.successes = 0
	}
	return b.state != Open
}

func (b *Breaker) isFailure(err error) bool {
	if b.config.IsFailure == nil {
		return true
	}
	return b.config.IsFailure(err)
}

func (b *Breaker) recordFailure() {
	b.failures++

	switch b.state {
	case Closed:
		if b.failures >= b.config.FailureThreshold {
			b.trip()
		}
	case HalfOpen:
		b.trip()
	}
}

func (b *Breaker) trip() {
	b.state = Open
	b.successes = 0
	b.nextAttempt = b.now().Add(b.config.RecoveryTimeout)
}

func (b *Breaker) recordSuccess() {
	b.failures = 0

	if b.state == HalfOpen {
		b.successes++
		if b.successes >= b.config.SuccessThreshold {
			b.state = Closed
			b.successes = 0
		}
	}
}

func (b *Breaker) notify(from, to State) {
	if from != to && b.config.OnStateChange != nil {
		b.config.OnStateChange(from, to)
	}
}
