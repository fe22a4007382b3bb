// Package retry wraps a service call with a bounded retry policy for
// transient failures. The policy is composed explicitly at the call site, and
// only connection and timeout failures are retried: authentication and
// rate-limit failures never are.
package retry

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/hellodash/hellodash/apierror"
)

const baseDelay = 200 * time.Millisecond

// Do runs fn up to attempts times, backing off between attempts. A failure is
// retried only when apierror.Classify marks its category retryable. The last
// error is returned unwrapped so callers can classify it.
func Do(ctx context.Context, attempts uint, fn func() error) error {
	if attempts == 0 {
		attempts = 1
	}
	return retry.Do(
		fn,
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(baseDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return apierror.Classify(err).Retryable()
		}),
	)
}
