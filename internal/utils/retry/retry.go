// Package retry runs an operation again with exponential backoff
package retry

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// Condition reports whether err is worth another attempt
type Condition func(error) bool

// Callback is invoked before each retry
type Callback func(attempt int, delay time.Duration, err error)

type Config struct {
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	TotalTimeout time.Duration // 0 disables the overall deadline

	BackoffFactor float64
	Jitter        bool
	JitterFactor  float64 // 0.0 - 1.0

	RetryCondition Condition

	OnRetry   Callback
	OnFailure func(error)
}

// DefaultConfig retries three times with exponential backoff starting at 2s
func DefaultConfig() *Config {
	return &Config{
		MaxRetries:    3,
		InitialDelay:  2 * time.Second,
		MaxDelay:      30 * time.Second,
		BackoffFactor: 2.0,
		Jitter:        true,
		JitterFactor:  0.1,
	}
}

type Retry struct {
	config *Config
}

func NewRetry(config *Config) *Retry {
	if config == nil {
		config = DefaultConfig()
	}
	return &Retry{config: config}
}

// Do runs operation until it succeeds, the retries are exhausted, the
// condition rejects the error or ctx is done.
func (r *Retry) Do(ctx context.Context, operation func() error) error {
	if r.config.TotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.TotalTimeout)
		defer cancel()
	}

	var lastErr error
	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := r.calculateDelay(attempt)
			if r.config.OnRetry != nil {
				r.config.OnRetry(attempt, delay, lastErr)
			}
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}

		err := operation()
		if err == nil {
			return nil
		}
		lastErr = err

		if !r.shouldRetry(err) {
			break
		}
	}

	if r.config.OnFailure != nil {
		r.config.OnFailure(lastErr)
	}
	return lastErr
}

// DoWithResult is Do for operations that return a value
func DoWithResult[T any](ctx context.Context, config *Config, operation func() (T, error)) (T, error) {
	var result T
	err := NewRetry(config).Do(ctx, func() error {
		var err error
		result, err = operation()
		return err
	})
	return result, err
}

func (r *Retry) calculateDelay(attempt int) time.Duration {
	factor := r.config.BackoffFactor
	if factor <= 0 {
		factor = 1
	}
	delay := time.Duration(float64(r.config.InitialDelay) * math.Pow(factor, float64(attempt-1)))

	if r.config.MaxDelay > 0 && delay > r.config.MaxDelay {
		delay = r.config.MaxDelay
	}

	if r.config.Jitter {
		delay += time.Duration(float64(delay) * r.config.JitterFactor * (rand.Float64()*2 - 1))
	}
	if delay < 0 {
		delay = 0
	}
	return delay
}

func (r *Retry) shouldRetry(err error) bool {
	if err == nil {
		return false
	}
	if r.config.RetryCondition != nil {
		return r.config.RetryCondition(err)
	}
	return true
}
