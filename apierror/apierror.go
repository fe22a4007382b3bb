// Package apierror converts transport and HTTP failures from the external
// service clients into a closed set of categories, each with a fixed
// user-facing message. Raw upstream error text never crosses this boundary;
// it belongs in the diagnostic log only.
package apierror

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Category identifies a class of service failure.
type Category int

const (
	// Authentication means the service rejected the credential (401/403).
	Authentication Category = iota
	// RateLimit means the service throttled the request (429).
	RateLimit
	// Connection means the service could not be reached (DNS, refused, reset).
	Connection
	// Timeout means the request exceeded its deadline.
	Timeout
	// Generic covers every other failure.
	Generic
)

// String returns a stable name for the category.
func (c Category) String() string {
	switch c {
	case Authentication:
		return "authentication"
	case RateLimit:
		return "rate_limit"
	case Connection:
		return "connection"
	case Timeout:
		return "timeout"
	default:
		return "generic"
	}
}

// Retryable reports whether failures in this category are worth retrying.
// Authentication and rate-limit failures are not transient.
func (c Category) Retryable() bool {
	return c == Connection || c == Timeout
}

// StatusError is the structured error both service clients return for a
// non-2xx response. Body is capped by the client and is for logging only.
type StatusError struct {
	Service    string
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Service, e.StatusCode)
}

// Classify maps err to exactly one Category. It is total and deterministic:
// every error the clients can produce lands in one category, and the same
// error always lands in the same one.
func Classify(err error) Category {
	if err == nil {
		return Generic
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.StatusCode {
		case 401, 403:
			return Authentication
		case 429:
			return RateLimit
		default:
			return Generic
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return Timeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return Timeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return Connection
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return Connection
	}

	return Generic
}

// Message returns the fixed, user-facing sentence for a category. No server
// text is ever interpolated.
func Message(c Category) string {
	switch c {
	case Authentication:
		return "Invalid API key. Please check your key and try again."
	case RateLimit:
		return "Rate limit exceeded. Please try again later."
	case Connection:
		return "Could not connect to the service. Please check your connection and try again."
	case Timeout:
		return "The request timed out. Please try again."
	default:
		return "The service returned an unexpected error. Please try again later."
	}
}

// Hint returns an optional actionable follow-up for a category, or "" when
// there is nothing useful to add.
func Hint(c Category) string {
	switch c {
	case Authentication:
		return "You can create a new API key in the service's account settings."
	case RateLimit:
		return "Wait a minute before sending another request."
	default:
		return ""
	}
}
