package marvel

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL    string
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration
	httpClient *http.Client
	clock      Clock
	hash       HashFunc
}

// WithBaseURL points the client at a different gateway, e.g. a test server.
// A trailing slash is stripped.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithTimeout sets the per-attempt HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithMaxRetries sets the total number of attempts per call, the first
// attempt included.
func WithMaxRetries(retries int) Option {
	return func(o *clientOptions) {
		if retries >= 1 {
			o.maxRetries = retries
		}
	}
}

// WithRetryDelay sets the base delay for exponential backoff between
// attempts.
func WithRetryDelay(delay time.Duration) Option {
	return func(o *clientOptions) {
		o.retryDelay = delay
	}
}

// WithHTTPClient replaces the default pooled HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithClock replaces the wall clock used for request signing.
// Intended for tests.
func WithClock(clock Clock) Option {
	return func(o *clientOptions) {
		o.clock = clock
	}
}

// WithHashFunc replaces the signature hash used for request signing.
// Intended for tests; the gateway only accepts MD5.
func WithHashFunc(hash HashFunc) Option {
	return func(o *clientOptions) {
		o.hash = hash
	}
}
