package apierror

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Category
	}{
		{
			name: "401 status",
			err:  &StatusError{Service: "tmdb", StatusCode: 401},
			want: Authentication,
		},
		{
			name: "403 status",
			err:  &StatusError{Service: "openai", StatusCode: 403},
			want: Authentication,
		},
		{
			name: "429 status",
			err:  &StatusError{Service: "openai", StatusCode: 429},
			want: RateLimit,
		},
		{
			name: "500 status",
			err:  &StatusError{Service: "tmdb", StatusCode: 500},
			want: Generic,
		},
		{
			name: "wrapped status error",
			err:  fmt.Errorf("search failed: %w", &StatusError{Service: "tmdb", StatusCode: 429}),
			want: RateLimit,
		},
		{
			name: "context deadline",
			err:  context.DeadlineExceeded,
			want: Timeout,
		},
		{
			name: "net timeout",
			err:  timeoutErr{},
			want: Timeout,
		},
		{
			name: "dns failure",
			err:  &net.DNSError{Err: "no such host", Name: "api.themoviedb.org"},
			want: Connection,
		},
		{
			name: "connection refused",
			err:  &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")},
			want: Connection,
		},
		{
			name: "plain error",
			err:  errors.New("something odd"),
			want: Generic,
		},
		{
			name: "nil error",
			err:  nil,
			want: Generic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
			// Classification must be idempotent.
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestRetryable(t *testing.T) {
	assert.True(t, Connection.Retryable())
	assert.True(t, Timeout.Retryable())
	assert.False(t, Authentication.Retryable())
	assert.False(t, RateLimit.Retryable())
	assert.False(t, Generic.Retryable())
}

func TestMessageIsFixed(t *testing.T) {
	// Messages must not leak upstream detail; each category maps to exactly
	// one pre-written sentence.
	for _, c := range []Category{Authentication, RateLimit, Connection, Timeout, Generic} {
		msg := Message(c)
		assert.NotEmpty(t, msg)
		assert.Equal(t, msg, Message(c))
	}
	assert.NotEmpty(t, Hint(Authentication))
	assert.Empty(t, Hint(Generic))
}

func TestStatusErrorError(t *testing.T) {
	err := &StatusError{Service: "tmdb", StatusCode: 404, Body: "not found"}
	assert.Equal(t, "tmdb: unexpected status 404", err.Error())
	assert.NotContains(t, err.Error(), "not found")
}
