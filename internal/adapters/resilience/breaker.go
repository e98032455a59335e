// Package resilience holds the circuit breaker shared by outbound provider
// clients. A tripped breaker makes a dead provider fail fast so callers
// drop to their fallbacks without waiting on timeouts.
package resilience

import (
	"context"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

// Default breaker configuration constants.
const (
	DefaultMaxFailures = 5
	DefaultOpenFor     = 30 * time.Second
	halfOpenRequests   = 1
	countsInterval     = time.Minute
)

// BreakerConfig configures NewBreaker.
type BreakerConfig struct {
	Name string
	// MaxFailures consecutive failures open the breaker.
	MaxFailures uint32
	// OpenFor is how long the breaker stays open before probing again.
	OpenFor time.Duration
	// IsSuccessful classifies errors that should not count as failures.
	// Nil counts every error.
	IsSuccessful func(err error) bool
	Logger       logger.Logger
}

// NewBreaker builds a breaker that publishes its state as a metric.
func NewBreaker[T any](cfg BreakerConfig) *gobreaker.CircuitBreaker[T] {
	if cfg.MaxFailures == 0 {
		cfg.MaxFailures = DefaultMaxFailures
	}
	if cfg.OpenFor <= 0 {
		cfg.OpenFor = DefaultOpenFor
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Named("breaker")
	}

	metrics.UpdateBreakerState(cfg.Name, StateValue(gobreaker.StateClosed))

	return gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:         cfg.Name,
		MaxRequests:  halfOpenRequests,
		Interval:     countsInterval,
		Timeout:      cfg.OpenFor,
		IsSuccessful: cfg.IsSuccessful,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn(context.Background(), "breaker state changed",
				logger.String("breaker", name),
				logger.String("from", from.String()),
				logger.String("to", to.String()))
			metrics.UpdateBreakerState(name, StateValue(to))
		},
	})
}

// StateValue encodes a breaker state for the breaker_state gauge.
func StateValue(s gobreaker.State) int {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
