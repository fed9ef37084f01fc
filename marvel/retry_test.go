package marvel

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avast/retry-go"
)

func newRetryClient(t *testing.T, maxRetries int) *Client {
	t.Helper()
	client, err := NewClient("pub", "priv", zerolog.Nop(),
		WithMaxRetries(maxRetries),
		WithRetryDelay(time.Millisecond),
	)
	require.NoError(t, err)
	return client
}

func TestDoWithRetryTransientThenSuccess(t *testing.T) {
	client := newRetryClient(t, 3)

	attempts := 0
	err := client.doWithRetry(context.Background(), "http://x", func() error {
		attempts++
		if attempts < 3 {
			return &APIError{Kind: KindServer, Message: "Server error occurred", StatusCode: 500}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestDoWithRetryPermanentNotRetried(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		code int
	}{
		{"authentication", KindAuthentication, 401},
		{"not found", KindNotFound, 404},
		{"validation", KindValidation, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newRetryClient(t, 3)

			attempts := 0
			err := client.doWithRetry(context.Background(), "http://x", func() error {
				attempts++
				return &APIError{Kind: tt.kind, StatusCode: tt.code, Message: "nope"}
			})

			require.Error(t, err)
			assert.Equal(t, 1, attempts)
			assert.Equal(t, tt.kind, ErrorKind(err))
		})
	}
}

func TestDoWithRetryExhaustionReturnsLastError(t *testing.T) {
	client := newRetryClient(t, 3)

	attempts := 0
	last := &APIError{Kind: KindServer, Message: "Server error occurred", StatusCode: 503}
	err := client.doWithRetry(context.Background(), "http://x", func() error {
		attempts++
		return last
	})

	require.Error(t, err)
	assert.Equal(t, 3, attempts)

	// The last classified error comes back as-is, not a synthetic wrapper.
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 503, apiErr.StatusCode)
}

func TestDoWithRetryContextCancellation(t *testing.T) {
	client := newRetryClient(t, 5)

	ctx, cancel := context.WithCancel(context.Background())

	attempts := 0
	err := client.doWithRetry(ctx, "http://x", func() error {
		attempts++
		cancel()
		return &APIError{Kind: KindNetwork, Message: "request failed"}
	})

	require.Error(t, err)
	// Cancellation during backoff stops the loop; no further attempts run.
	assert.Equal(t, 1, attempts)
}

func TestRateLimitAwareDelay(t *testing.T) {
	config := &retry.Config{}

	hinted := &APIError{Kind: KindRateLimit, RetryAfter: 2}
	assert.Equal(t, 2*time.Second, rateLimitAwareDelay(0, hinted, config))

	// Without a hint, the exponential default applies.
	unhinted := &APIError{Kind: KindRateLimit}
	assert.Equal(t, retry.BackOffDelay(1, unhinted, config), rateLimitAwareDelay(1, unhinted, config))

	server := &APIError{Kind: KindServer}
	assert.Equal(t, retry.BackOffDelay(0, server, config), rateLimitAwareDelay(0, server, config))
}

func TestIsTransient(t *testing.T) {
	assert.True(t, isTransient(&APIError{Kind: KindNetwork}))
	assert.True(t, isTransient(&APIError{Kind: KindServer}))
	assert.True(t, isTransient(&APIError{Kind: KindRateLimit}))
	assert.False(t, isTransient(&APIError{Kind: KindAuthentication}))
	assert.False(t, isTransient(&APIError{Kind: KindNotFound}))
	assert.False(t, isTransient(&APIError{Kind: KindValidation}))
	assert.False(t, isTransient(errors.New("unclassified")))
}
