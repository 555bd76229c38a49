package usecase

import "fmt"

// ErrorCode identifies the failure class of a chat turn. Validation failures
// are distinguishable from upstream-service failures so callers know whether
// to fix their input or retry later.
type ErrorCode string

const (
	// ErrorInvalidRequest covers caller-supplied input that fails validation.
	// It is resolved locally; the generation service is never contacted.
	ErrorInvalidRequest ErrorCode = "INVALID_REQUEST"

	// ErrorUpstreamUnavailable marks network-level failures reaching the
	// generation service (connection refused, DNS, reset).
	ErrorUpstreamUnavailable ErrorCode = "UPSTREAM_UNAVAILABLE"

	// ErrorUpstreamTimeout marks a generation call that exceeded its bound.
	ErrorUpstreamTimeout ErrorCode = "UPSTREAM_TIMEOUT"

	// ErrorUpstream marks a non-success status returned by the generation
	// service; the upstream status travels in the wrapped error.
	ErrorUpstream ErrorCode = "UPSTREAM_ERROR"

	// ErrorUpstreamProtocol marks a generation response whose shape could not
	// be interpreted (malformed JSON, no choices, empty reply).
	ErrorUpstreamProtocol ErrorCode = "UPSTREAM_PROTOCOL_ERROR"

	// ErrorConfiguration marks missing or invalid service configuration,
	// such as an absent API credential.
	ErrorConfiguration ErrorCode = "CONFIGURATION_ERROR"

	// ErrorInternal covers everything that is not attributable to the caller
	// or the generation service.
	ErrorInternal ErrorCode = "INTERNAL_ERROR"
)

// Error is the typed failure returned by ChatService. Reason is a stable
// machine-readable label; Err carries the wrapped cause for logging and is
// never exposed to callers verbatim.
type Error struct {
	Code   ErrorCode
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("usecase: %s (%s)", e.Code, e.Reason)
	}
	return fmt.Sprintf("usecase: %s (%s): %v", e.Code, e.Reason, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newError(code ErrorCode, reason string, err error) *Error {
	return &Error{Code: code, Reason: reason, Err: err}
}
