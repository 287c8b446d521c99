package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

const (
	breakerFailureThreshold = 5
	breakerOpenTimeout      = 60 * time.Second

	retryAttempts     = 3
	retryInitialDelay = 2 * time.Second
)

// ErrBreakerOpen is returned once the circuit breaker has given up on
// the API. Callers should abort the run rather than hammer a dead
// endpoint chunk by chunk.
var ErrBreakerOpen = errors.New("translation API circuit breaker is open")

// ResilientProvider wraps a Provider with per-call retries and a
// circuit breaker, so one flaky request is retried but a dead API
// endpoint fails the run quickly instead of timing out once per chunk.
type ResilientProvider struct {
	inner      Provider
	breaker    *gobreaker.CircuitBreaker
	logger     *logrus.Logger
	retryDelay time.Duration
}

// NewResilientProvider wraps a provider with retry and circuit-breaker
// behavior.
func NewResilientProvider(inner Provider, logger *logrus.Logger) *ResilientProvider {
	if logger == nil {
		logger = logrus.New()
	}

	settings := gobreaker.Settings{
		Name:    inner.Name(),
		Timeout: breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"provider": name,
				"from":     from.String(),
				"to":       to.String(),
			}).Warn("Translation API circuit breaker state changed")
		},
	}

	return &ResilientProvider{
		inner:      inner,
		breaker:    gobreaker.NewCircuitBreaker(settings),
		logger:     logger,
		retryDelay: retryInitialDelay,
	}
}

// Translate calls the wrapped provider through the breaker, retrying
// transient failures with exponential backoff.
func (p *ResilientProvider) Translate(ctx context.Context, req Request) (string, error) {
	var lastErr error
	delay := p.retryDelay

	for attempt := 1; attempt <= retryAttempts; attempt++ {
		result, err := p.breaker.Execute(func() (interface{}, error) {
			return p.inner.Translate(ctx, req)
		})
		if err == nil {
			return result.(string), nil
		}

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("%w: %v", ErrBreakerOpen, err)
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		lastErr = err
		if attempt < retryAttempts {
			p.logger.WithFields(logrus.Fields{
				"provider": p.inner.Name(),
				"attempt":  attempt,
				"delay":    delay.String(),
			}).WithError(err).Warn("Translation request failed, retrying")

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
			delay *= 2
		}
	}

	return "", fmt.Errorf("translation failed after %d attempts: %w", retryAttempts, lastErr)
}

// Name returns the wrapped provider's name
func (p *ResilientProvider) Name() string {
	return p.inner.Name()
}

// IsAvailable checks the wrapped provider's configuration
func (p *ResilientProvider) IsAvailable() error {
	return p.inner.IsAvailable()
}
