package retry

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"
)

// ErrContextCanceled reports that the context ended before the
// operation succeeded.
var ErrContextCanceled = errors.New("context canceled during retry")

// Config contains retry configuration for exponential backoff.
type Config struct {
	// MaxRetries is the number of retry attempts after the initial one.
	MaxRetries int
	// InitialInterval is the first backoff interval (default 100ms).
	InitialInterval time.Duration
	// MaxInterval caps the backoff interval (default 5s).
	MaxInterval time.Duration
	// Multiplier grows the interval after each attempt (default 2.0).
	Multiplier float64
	// JitterFactor (0-1) randomizes each interval by ±factor.
	JitterFactor float64
}

// DefaultConfig suits short in-process operations such as cache writes
// and pub/sub publishes: 3 retries at 100ms, 200ms, 400ms.
func DefaultConfig() *Config {
	return &Config{
		MaxRetries:      3,
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		Multiplier:      2.0,
		JitterFactor:    0.1,
	}
}

// PermanentError wraps an error that must not be retried.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }

// Permanent marks an error as not retryable.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Err: err}
}

// Operation is the function to be retried.
type Operation func(ctx context.Context) error

// Retrier runs operations with exponential backoff.
type Retrier struct {
	config *Config
}

// New creates a Retrier. A nil config selects DefaultConfig.
func New(config *Config) *Retrier {
	if config == nil {
		config = DefaultConfig()
	}
	if config.InitialInterval <= 0 {
		config.InitialInterval = 100 * time.Millisecond
	}
	if config.MaxInterval <= 0 {
		config.MaxInterval = 5 * time.Second
	}
	if config.Multiplier <= 0 {
		config.Multiplier = 2.0
	}
	if config.JitterFactor < 0 {
		config.JitterFactor = 0
	}
	if config.JitterFactor > 1 {
		config.JitterFactor = 1
	}
	return &Retrier{config: config}
}

// Do runs the operation until it succeeds, returns a permanent error,
// the context ends, or the attempts run out. The returned error is the
// last operation error, or ErrContextCanceled when the context ended
// between attempts.
func (r *Retrier) Do(ctx context.Context, op Operation) error {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if ctx.Err() != nil {
			return ErrContextCanceled
		}

		err := op(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		var permErr *PermanentError
		if errors.As(err, &permErr) {
			return permErr.Err
		}
		if attempt == r.config.MaxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return ErrContextCanceled
		case <-time.After(r.interval(attempt)):
		}
	}
	return lastErr
}

func (r *Retrier) interval(attempt int) time.Duration {
	interval := float64(r.config.InitialInterval) * math.Pow(r.config.Multiplier, float64(attempt))
	if interval > float64(r.config.MaxInterval) {
		interval = float64(r.config.MaxInterval)
	}
	if r.config.JitterFactor > 0 {
		jitter := interval * r.config.JitterFactor
		interval += (rand.Float64()*2 - 1) * jitter
	}
	if interval < 0 {
		interval = 0
	}
	return time.Duration(interval)
}
