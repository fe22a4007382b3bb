// Package health classifies credential health-check probes into a small,
// closed set of results. The probes themselves live on the service clients;
// this package only decides what an outcome means.
package health

import "encoding/json"

// Result is the outcome of a credential health check.
type Result int

const (
	// Valid means the service accepted the credential.
	Valid Result = iota
	// Invalid means the service explicitly rejected the credential.
	Invalid
	// TransientError means the check could not be completed. It is distinct
	// from Invalid: the credential may still be good.
	TransientError
)

// String returns a human-readable name for the result.
func (r Result) String() string {
	switch r {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "transient_error"
	}
}

// ClassifyResponse maps an HTTP validation response to a Result.
//
// A 200 with a parseable JSON body is the only Valid outcome. A 200 with a
// body that fails to parse is treated as an infrastructure anomaly, not a
// credential problem. Only a 401 marks the credential as known-bad.
func ClassifyResponse(statusCode int, body []byte) Result {
	switch {
	case statusCode == 200:
		if !json.Valid(body) {
			return TransientError
		}
		return Valid
	case statusCode == 401:
		return Invalid
	default:
		return TransientError
	}
}

// ClassifyTransport maps a transport-level failure (connection error,
// timeout, DNS) to a Result. The cause belongs in the caller's diagnostic
// log, never in user-facing output.
func ClassifyTransport(err error) Result {
	return TransientError
}
