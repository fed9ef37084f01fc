package marvel

import (
	"context"
	"errors"
	"time"

	"github.com/avast/retry-go"
)

// maxBackoff caps the exponential backoff between attempts.
const maxBackoff = 60 * time.Second

// isTransient reports whether an error is worth retrying. Network failures,
// gateway 5xx responses and rate limits are transient; authentication,
// not-found and validation failures are permanent given the same input.
func isTransient(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Temporary()
	}
	return false
}

// doWithRetry runs attemptFn up to maxRetries times total, backing off
// exponentially between attempts. A rate-limited response that carries a
// Retry-After hint overrides the computed backoff for that wait. On
// exhaustion the last classified error is returned as-is, not a synthetic
// "retries exhausted" wrapper. Context cancellation aborts the loop.
//
// attemptFn re-signs the request on every invocation, so each retry carries
// a fresh timestamp and hash.
func (c *Client) doWithRetry(ctx context.Context, requestURL string, attemptFn func() error) error {
	return retry.Do(
		attemptFn,
		retry.Attempts(uint(c.maxRetries)),
		retry.Delay(c.retryDelay),
		retry.MaxDelay(maxBackoff),
		retry.DelayType(rateLimitAwareDelay),
		retry.RetryIf(isTransient),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
		retry.OnRetry(func(attempt uint, err error) {
			c.logger.Warn().
				Err(err).
				Uint("attempt", attempt+1).
				Str("url", requestURL).
				Msg("Marvel API request failed, retrying")
		}),
	)
}

// rateLimitAwareDelay is exponential backoff that defers to the gateway's
// Retry-After hint when one was returned.
func rateLimitAwareDelay(n uint, err error, config *retry.Config) time.Duration {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Kind == KindRateLimit && apiErr.RetryAfter > 0 {
		return time.Duration(apiErr.RetryAfter) * time.Second
	}
	return retry.BackOffDelay(n, err, config)
}
