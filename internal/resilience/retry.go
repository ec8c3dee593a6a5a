// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package resilience

import (
	"context"
	"time"
)

// RetryConfig holds retry configuration.
type RetryConfig struct {
	MaxRetries int                          // Maximum number of retry attempts
	Interval   time.Duration                // Fixed delay between attempts
	OnRetry    func(attempt int, err error) // Optional callback invoked before each retry
}

// RenameRetryConfig returns the retry policy for directory renames: a small
// fixed bound with a fixed delay, long enough for an Explorer window or
// indexer to let go of the path.
func RenameRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 5,
		Interval:   1500 * time.Millisecond,
	}
}

// RetryableOperation represents an operation that can be retried.
type RetryableOperation func(ctx context.Context) error

// Retry executes an operation, retrying transient failures up to
// MaxRetries times with a fixed Interval between attempts. Permanent errors
// return immediately. Context cancellation stops the wait.
func Retry(ctx context.Context, config RetryConfig, operation RetryableOperation) error {
	var lastErr error

	for attempt := 0; attempt <= config.MaxRetries; attempt++ {
		if attempt > 0 {
			if config.OnRetry != nil {
				config.OnRetry(attempt, lastErr)
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(config.Interval):
			}
		}

		err := operation(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if !ClassifyError(err).IsRetryable() {
			return err
		}
	}

	return lastErr
}
