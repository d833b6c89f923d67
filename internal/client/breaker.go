package client

import (
	"net/http"
	"time"

	"github.com/failsafe-go/failsafe-go/circuitbreaker"

	"github.com/Shuvikm/sonyliv-clone/internal/config"
)

const (
	defaultBreakerThreshold = 5
	defaultBreakerDelay     = 30 * time.Second
)

// newBreaker builds the circuit breaker guarding one provider. While it is
// open, requests to that provider short-circuit to the fallback catalog.
func newBreaker(name string, threshold uint, delay time.Duration) circuitbreaker.CircuitBreaker[any] {
	if threshold == 0 {
		threshold = defaultBreakerThreshold
	}
	if delay <= 0 {
		delay = defaultBreakerDelay
	}
	logger := config.GetLogger()
	return circuitbreaker.NewBuilder[any]().
		WithFailureThreshold(threshold).
		WithDelay(delay).
		OnOpen(func(circuitbreaker.StateChangedEvent) {
			logger.Warn().Str("provider", name).Dur("delay", delay).Msg("Provider circuit opened")
		}).
		OnHalfOpen(func(circuitbreaker.StateChangedEvent) {
			logger.Info().Str("provider", name).Msg("Provider circuit half-open, probing")
		}).
		OnClose(func(circuitbreaker.StateChangedEvent) {
			logger.Info().Str("provider", name).Msg("Provider circuit closed")
		}).
		Build()
}

// upstreamFailure reports whether a response status says the provider itself
// is unhealthy. Other 4xx answers are about the request and keep the circuit closed.
func upstreamFailure(status int) bool {
	return status >= http.StatusInternalServerError || status == http.StatusTooManyRequests
}
