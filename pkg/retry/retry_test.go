package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastConfig(maxRetries int) *Config {
	return &Config{
		MaxRetries:      maxRetries,
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
		Multiplier:      2.0,
	}
}

func TestDoSucceedsAfterTransientFailures(t *testing.T) {
	r := New(fastConfig(3))

	attempts := 0
	err := r.Do(context.Background(), func(_ context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}

func TestDoReturnsLastErrorWhenExhausted(t *testing.T) {
	r := New(fastConfig(2))

	lastErr := errors.New("still down")
	attempts := 0
	err := r.Do(context.Background(), func(_ context.Context) error {
		attempts++
		return lastErr
	})
	if !errors.Is(err, lastErr) {
		t.Errorf("expected last error, got %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected initial + 2 retries, got %d attempts", attempts)
	}
}

func TestDoStopsOnPermanentError(t *testing.T) {
	r := New(fastConfig(5))

	cause := errors.New("bad request")
	attempts := 0
	err := r.Do(context.Background(), func(_ context.Context) error {
		attempts++
		return Permanent(cause)
	})
	if !errors.Is(err, cause) {
		t.Errorf("expected unwrapped cause, got %v", err)
	}
	if attempts != 1 {
		t.Errorf("permanent error retried: %d attempts", attempts)
	}
}

func TestDoHonorsCanceledContext(t *testing.T) {
	r := New(fastConfig(5))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Do(ctx, func(_ context.Context) error {
		t.Error("operation ran with canceled context")
		return nil
	})
	if !errors.Is(err, ErrContextCanceled) {
		t.Errorf("expected ErrContextCanceled, got %v", err)
	}
}
