package marvel

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		status    int
		wantKind  Kind
		wantMsg   string
		transient bool
	}{
		{401, KindAuthentication, "Authentication failed", false},
		{404, KindNotFound, "Resource not found", false},
		{400, KindValidation, "Validation failed", false},
		{429, KindRateLimit, "Rate limit exceeded", true},
		{500, KindServer, "Server error occurred", true},
		{503, KindServer, "Server error occurred", true},
		{599, KindServer, "Server error occurred", true},
		{418, KindAPI, "I'm a teapot", false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.status), func(t *testing.T) {
			err := classifyStatus(tt.status, nil, "http://example.com", "")
			assert.Equal(t, tt.wantKind, err.Kind)
			assert.Equal(t, tt.wantMsg, err.Message)
			assert.Equal(t, tt.status, err.StatusCode)
			assert.Equal(t, tt.transient, err.Temporary())
		})
	}
}

func TestClassifyStatusRetryAfter(t *testing.T) {
	err := classifyStatus(429, nil, "", "12")
	assert.Equal(t, 12, err.RetryAfter)

	err = classifyStatus(429, nil, "", "")
	assert.Zero(t, err.RetryAfter)

	err = classifyStatus(429, nil, "", "soon")
	assert.Zero(t, err.RetryAfter)
}

func TestClassifyStatusValidationBody(t *testing.T) {
	body := []byte(`{"code":"InvalidParameter","status":"limit out of range","errors":["limit must be greater than 0"]}`)
	err := classifyStatus(400, body, "", "")

	assert.Equal(t, KindValidation, err.Kind)
	assert.Equal(t, []string{"limit must be greater than 0"}, err.ValidationErrors)

	// Without an explicit errors list, the status string stands in.
	err = classifyStatus(400, []byte(`{"code":"409","status":"You may not order by that field"}`), "", "")
	assert.Equal(t, []string{"You may not order by that field"}, err.ValidationErrors)
}

func TestClassifyStatusGenericMessageFromBody(t *testing.T) {
	err := classifyStatus(409, []byte(`{"message":"conflicting request"}`), "", "")
	assert.Equal(t, "conflicting request", err.Message)
	assert.Equal(t, KindAPI, err.Kind)
}

func TestClassifyTransport(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := classifyTransport(cause, "http://example.com")

	assert.Equal(t, KindNetwork, err.Kind)
	assert.Zero(t, err.StatusCode)
	assert.True(t, err.Temporary())
	assert.ErrorIs(t, err, cause)
}

func TestAPIErrorString(t *testing.T) {
	withStatus := &APIError{Kind: KindNotFound, Message: "Resource not found", StatusCode: 404}
	assert.Equal(t, "Resource not found (Status: 404)", withStatus.Error())

	withoutStatus := &APIError{Kind: KindNetwork, Message: "request failed: timeout"}
	assert.Equal(t, "request failed: timeout", withoutStatus.Error())
}

func TestAPIErrorHelpers(t *testing.T) {
	notFound := &APIError{Kind: KindNotFound, StatusCode: 404}
	assert.True(t, notFound.IsNotFound())
	assert.False(t, notFound.IsUnauthorized())

	auth := &APIError{Kind: KindAuthentication, StatusCode: 401}
	assert.True(t, auth.IsUnauthorized())

	assert.Equal(t, KindAuthentication, ErrorKind(fmt.Errorf("wrapped: %w", auth)))
	assert.Equal(t, KindAPI, ErrorKind(errors.New("plain")))
}

func TestNewDecodeError(t *testing.T) {
	err := newDecodeError(200, []byte(`{}`), []string{"envelope.ETag: required"})

	require.True(t, errors.Is(err, ErrDecode))
	assert.Equal(t, KindValidation, err.Kind)
	assert.Equal(t, []string{"envelope.ETag: required"}, err.ValidationErrors)
	assert.False(t, err.Temporary())
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindAPI, "api"},
		{KindAuthentication, "authentication"},
		{KindNotFound, "not_found"},
		{KindValidation, "validation"},
		{KindRateLimit, "rate_limit"},
		{KindServer, "server"},
		{KindNetwork, "network"},
		{Kind(99), "api"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.kind.String())
	}
}
