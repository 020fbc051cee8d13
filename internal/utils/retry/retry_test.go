package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastConfig(maxRetries int) *Config {
	return &Config{
		MaxRetries:    maxRetries,
		InitialDelay:  time.Millisecond,
		MaxDelay:      5 * time.Millisecond,
		BackoffFactor: 2,
	}
}

func TestDo_RetryThenSuccess(t *testing.T) {
	calls := 0
	r := NewRetry(fastConfig(3))
	err := r.Do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("browser not ready")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestDo_Exhausted(t *testing.T) {
	calls := 0
	var failed error
	cfg := fastConfig(2)
	cfg.OnFailure = func(err error) { failed = err }

	err := NewRetry(cfg).Do(context.Background(), func() error {
		calls++
		return errors.New("launch failed")
	})
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if calls != 3 { // initial + 2 retries
		t.Errorf("expected 3 calls, got %d", calls)
	}
	if failed == nil {
		t.Error("OnFailure was not called")
	}
}

func TestDo_ConditionStopsRetry(t *testing.T) {
	permanent := errors.New("executable not found")
	cfg := fastConfig(5)
	cfg.RetryCondition = func(err error) bool { return !errors.Is(err, permanent) }

	calls := 0
	err := NewRetry(cfg).Do(context.Background(), func() error {
		calls++
		return permanent
	})
	if !errors.Is(err, permanent) {
		t.Fatalf("expected permanent error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestDo_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := fastConfig(3)
	cfg.InitialDelay = time.Hour
	cfg.MaxDelay = time.Hour

	err := NewRetry(cfg).Do(ctx, func() error {
		cancel()
		return errors.New("fail")
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestCalculateDelay(t *testing.T) {
	tests := []struct {
		name    string
		factor  float64
		attempt int
		want    time.Duration
	}{
		{"first", 2, 1, 100 * time.Millisecond},
		{"third", 2, 3, 400 * time.Millisecond},
		{"no factor is fixed", 0, 4, 100 * time.Millisecond},
		{"capped", 2, 10, time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRetry(&Config{
				InitialDelay:  100 * time.Millisecond,
				MaxDelay:      time.Second,
				BackoffFactor: tt.factor,
			})
			if got := r.calculateDelay(tt.attempt); got != tt.want {
				t.Errorf("calculateDelay(%d) = %v, want %v", tt.attempt, got, tt.want)
			}
		})
	}
}

func TestDoWithResult(t *testing.T) {
	calls := 0
	got, err := DoWithResult(context.Background(), fastConfig(2), func() (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("transient")
		}
		return "ok", nil
	})
	if err != nil || got != "ok" {
		t.Fatalf("DoWithResult() = %q, %v", got, err)
	}
}

func TestDo_TotalTimeout(t *testing.T) {
	cfg := fastConfig(100)
	cfg.InitialDelay = 20 * time.Millisecond
	cfg.MaxDelay = 20 * time.Millisecond
	cfg.TotalTimeout = 50 * time.Millisecond

	calls := 0
	err := NewRetry(cfg).Do(context.Background(), func() error {
		calls++
		return errors.New("still starting")
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if calls >= 100 {
		t.Errorf("total timeout did not stop retries, %d calls", calls)
	}
}
