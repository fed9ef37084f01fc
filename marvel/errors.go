package marvel

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// Common errors returned by the Marvel client.
var (
	// ErrInvalidConfig indicates invalid client configuration.
	ErrInvalidConfig = errors.New("invalid marvel client configuration")
	// ErrDecode marks validation failures raised while decoding a response
	// body, as opposed to a 400 the gateway returned for the request itself.
	ErrDecode = errors.New("response validation failed")
)

// Kind classifies an APIError into one bucket of the failure taxonomy.
type Kind int

const (
	// KindAPI is the catch-all for non-2xx statuses with no specific mapping.
	KindAPI Kind = iota
	// KindAuthentication indicates a rejected key/hash pair (401).
	KindAuthentication
	// KindNotFound indicates a missing resource (404).
	KindNotFound
	// KindValidation indicates a rejected request (400) or a response body
	// that failed local validation.
	KindValidation
	// KindRateLimit indicates the daily or burst quota was exceeded (429).
	KindRateLimit
	// KindServer indicates a gateway-side failure (5xx).
	KindServer
	// KindNetwork indicates a transport failure with no HTTP status.
	KindNetwork
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindRateLimit:
		return "rate_limit"
	case KindServer:
		return "server"
	case KindNetwork:
		return "network"
	default:
		return "api"
	}
}

// APIError is the root error type for everything this package raises.
// Kind-specific fields are populated only where they apply.
type APIError struct {
	Kind       Kind
	Message    string
	StatusCode int // 0 when no HTTP status was received
	Body       []byte
	RequestURL string

	// RetryAfter carries the rate-limit hint in seconds, when present.
	RetryAfter int
	// ResourceType and ResourceID annotate not-found errors when the caller
	// supplied them.
	ResourceType string
	ResourceID   string
	// ValidationErrors lists individual validation failures, upstream or local.
	ValidationErrors []string

	cause error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (Status: %d)", e.Message, e.StatusCode)
	}
	return e.Message
}

// Unwrap exposes the underlying cause, if any.
func (e *APIError) Unwrap() error { return e.cause }

// Temporary reports whether retrying the same request may succeed.
func (e *APIError) Temporary() bool {
	switch e.Kind {
	case KindNetwork, KindServer, KindRateLimit:
		return true
	default:
		return false
	}
}

// IsNotFound checks if the error indicates a missing resource.
func (e *APIError) IsNotFound() bool { return e.Kind == KindNotFound }

// IsUnauthorized checks if the error indicates an authentication failure.
func (e *APIError) IsUnauthorized() bool { return e.Kind == KindAuthentication }

// ErrorKind extracts the Kind from err, or KindAPI if err is not from this
// package.
func ErrorKind(err error) Kind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindAPI
}

// errorBody is the shape the gateway uses for error payloads. Both key
// spellings appear in the wild depending on the failure path.
type errorBody struct {
	Code    json.RawMessage `json:"code"`
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Errors  []string        `json:"errors"`
}

// classifyStatus maps a non-2xx HTTP response to an APIError. The mapping is
// total: every status lands in exactly one Kind.
func classifyStatus(statusCode int, body []byte, requestURL, retryAfter string) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Body:       body,
		RequestURL: requestURL,
	}

	var parsed errorBody
	_ = json.Unmarshal(body, &parsed)

	switch {
	case statusCode == http.StatusUnauthorized:
		apiErr.Kind = KindAuthentication
		apiErr.Message = "Authentication failed"
	case statusCode == http.StatusNotFound:
		apiErr.Kind = KindNotFound
		apiErr.Message = "Resource not found"
	case statusCode == http.StatusBadRequest:
		apiErr.Kind = KindValidation
		apiErr.Message = "Validation failed"
		apiErr.ValidationErrors = parsed.Errors
		if len(apiErr.ValidationErrors) == 0 && parsed.Status != "" {
			apiErr.ValidationErrors = []string{parsed.Status}
		}
	case statusCode == http.StatusTooManyRequests:
		apiErr.Kind = KindRateLimit
		apiErr.Message = "Rate limit exceeded"
		if secs, err := strconv.Atoi(retryAfter); err == nil && secs > 0 {
			apiErr.RetryAfter = secs
		}
	case statusCode >= 500 && statusCode < 600:
		apiErr.Kind = KindServer
		apiErr.Message = "Server error occurred"
	default:
		apiErr.Kind = KindAPI
		switch {
		case parsed.Message != "":
			apiErr.Message = parsed.Message
		case parsed.Status != "":
			apiErr.Message = parsed.Status
		default:
			apiErr.Message = http.StatusText(statusCode)
		}
	}

	return apiErr
}

// classifyTransport wraps a transport-level failure (connect error, timeout)
// into a network-kind APIError with no status code.
func classifyTransport(err error, requestURL string) *APIError {
	return &APIError{
		Kind:       KindNetwork,
		Message:    fmt.Sprintf("request failed: %v", err),
		RequestURL: requestURL,
		cause:      err,
	}
}

// newDecodeError builds a validation-kind error for a response body that did
// not match the expected schema. Distinguishable from an upstream 400 via
// errors.Is(err, ErrDecode).
func newDecodeError(statusCode int, body []byte, details []string) *APIError {
	return &APIError{
		Kind:             KindValidation,
		Message:          ErrDecode.Error(),
		StatusCode:       statusCode,
		Body:             body,
		ValidationErrors: details,
		cause:            ErrDecode,
	}
}
