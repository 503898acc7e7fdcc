package logic

import (
	"context"
	"fmt"
)

// Retry calls fn up to maxAttempts times, stopping at the first success.
// The attempt number passed to fn starts at 0. It returns how many attempts
// were made. When every attempt fails the last error is wrapped in
// ErrRetriesExhausted. A cancelled context stops further attempts.
func Retry(ctx context.Context, maxAttempts int, fn func(attempt int) error) (int, error) {
	var lastErr error
	attempts := 0
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return attempts, err
		}
		attempts++
		if lastErr = fn(attempt); lastErr == nil {
			return attempts, nil
		}
	}
	if lastErr == nil {
		return attempts, ErrRetriesExhausted
	}
	return attempts, fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, attempts, lastErr)
}
