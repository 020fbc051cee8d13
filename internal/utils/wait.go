package utils

import (
	"context"
	"math/rand"
	"time"
)

// JitterDelay returns base scaled by a uniform factor in [1,2)
func JitterDelay(base time.Duration) time.Duration {
	if base <= 0 {
		return 0
	}
	d := time.Duration(float64(base) * (1 + rand.Float64()))
	// float rounding can land exactly on 2*base for huge values
	if d >= 2*base {
		d = 2*base - 1
	}
	if d < base {
		d = base
	}
	return d
}

// Wait suspends the caller for JitterDelay(base). It returns early with the
// context error when ctx is cancelled.
func Wait(ctx context.Context, base time.Duration) error {
	d := JitterDelay(base)
	if d == 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
