package util

import (
	"context"
	"fmt"
	"time"
)

// RetryWithBackoff calls fn up to maxRetries+1 times with exponential backoff
// (1s, 2s, 4s, ...). fn receives the 0-indexed attempt number and should
// return nil on success. A cancelled context aborts immediately with the
// context error.
func RetryWithBackoff(ctx context.Context, maxRetries int, fn func(attempt int) error) error {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		lastErr = fn(attempt)
		if lastErr == nil {
			return nil
		}
		if attempt == maxRetries {
			break
		}
		backoff := time.Duration(1<<attempt) * time.Second
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
	return fmt.Errorf("failed after %d retries: %w", maxRetries, lastErr)
}
