package events

import (
	"context"
	"errors"
	"sync"
	"time"

	"finance-dashboard/internal/models"

	"github.com/rs/zerolog"
)

var ErrBrokerUnavailable = errors.New("event broker unavailable")

type BreakerState int

const (
	StateClosed BreakerState = iota
	StateOpen
	StateHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "closed"
	}
}

type BreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 2,
	}
}

// BreakerPublisher stops calling the wrapped publisher after MaxFailures
// consecutive failures and fails fast with ErrBrokerUnavailable until
// ResetTimeout has passed.
type BreakerPublisher struct {
	next   Publisher
	config BreakerConfig
	logger zerolog.Logger
	now    func() time.Time

	mu                sync.Mutex
	state             BreakerState
	failures          int
	halfOpenSuccesses int
	trialInFlight     bool
	openedAt          time.Time
}

func NewBreakerPublisher(next Publisher, config BreakerConfig, logger zerolog.Logger) *BreakerPublisher {
	return &BreakerPublisher{
		next:   next,
		config: config,
		logger: logger,
		now:    time.Now,
	}
}

func (b *BreakerPublisher) PublishTransactionRecorded(ctx context.Context, transaction *models.Transaction) error {
	ok, trial := b.allow()
	if !ok {
		return ErrBrokerUnavailable
	}

	err := b.next.PublishTransactionRecorded(ctx, transaction)
	if err != nil {
		b.recordFailure(trial)
		return err
	}

	b.recordSuccess(trial)
	return nil
}

func (b *BreakerPublisher) Close() error {
	return b.next.Close()
}

func (b *BreakerPublisher) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Ready fails while the breaker is open.
func (b *BreakerPublisher) Ready(context.Context) error {
	if b.State() == StateOpen {
		return ErrBrokerUnavailable
	}
	return nil
}

// allow reports whether a publish may go ahead and whether it is the single
// trial call the half-open state lets through.
func (b *BreakerPublisher) allow() (ok, trial bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		return true, false
	case StateOpen:
		if b.now().Sub(b.openedAt) <= b.config.ResetTimeout {
			return false, false
		}
		b.setState(StateHalfOpen)
		b.halfOpenSuccesses = 0
	}

	if b.trialInFlight {
		return false, false
	}
	b.trialInFlight = true
	return true, true
}

// Results of calls let through before the breaker left the closed state are
// ignored while half-open; only trial calls decide it.
func (b *BreakerPublisher) recordSuccess(trial bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateHalfOpen:
		if !trial {
			return
		}
		b.trialInFlight = false
		b.halfOpenSuccesses++
		if b.halfOpenSuccesses >= b.config.HalfOpenMaxSucc {
			b.failures = 0
			b.setState(StateClosed)
		}
	case StateClosed:
		b.failures = 0
	}
}

func (b *BreakerPublisher) recordFailure(trial bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateHalfOpen:
		if trial {
			b.open()
		}
	case StateClosed:
		b.failures++
		if b.failures >= b.config.MaxFailures {
			b.open()
		}
	}
}

func (b *BreakerPublisher) open() {
	b.openedAt = b.now()
	b.halfOpenSuccesses = 0
	b.trialInFlight = false
	b.setState(StateOpen)
}

// caller holds b.mu
func (b *BreakerPublisher) setState(state BreakerState) {
	if b.state == state {
		return
	}
	b.logger.Warn().
		Str("from", b.state.String()).
		Str("to", state.String()).
		Int("failures", b.failures).
		Msg("event publisher breaker state changed")
	b.state = state
}
