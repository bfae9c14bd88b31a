package errors

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// Kind classifies a failed fragment operation so callers can branch on it.
type Kind string

const (
	// KindAuthRequired means the operation was attempted without a usable session.
	KindAuthRequired Kind = "AUTH_REQUIRED"
	// KindTransportFailure means no response was received.
	KindTransportFailure Kind = "TRANSPORT_FAILURE"
	// KindRemoteRejected means the store answered with a non-2xx status or an unreadable body.
	KindRemoteRejected Kind = "REMOTE_REJECTED"
	// KindValidationFailure means the input was refused before any request was sent.
	KindValidationFailure Kind = "VALIDATION_FAILURE"
)

// FragmentError is the classified failure returned by every client and controller operation.
type FragmentError struct {
	kind    Kind
	status  int    // HTTP status for KindRemoteRejected, 0 otherwise
	reason  string // status text or short human-readable cause
	details string // server-supplied message or validation detail
	cause   error
}

// Sentinels for errors.Is. A FragmentError matches a sentinel of the same kind; a
// sentinel with a status only matches that status.
var (
	ErrAuthRequired      = &FragmentError{kind: KindAuthRequired, reason: "sign in required"}
	ErrTransportFailure  = &FragmentError{kind: KindTransportFailure, reason: "fragment store unreachable"}
	ErrRemoteRejected    = &FragmentError{kind: KindRemoteRejected, reason: "rejected by fragment store"}
	ErrValidationFailure = &FragmentError{kind: KindValidationFailure, reason: "invalid input"}
)

// NewAuthRequired reports an operation attempted while no session exists.
func NewAuthRequired(details string) *FragmentError {
	return &FragmentError{kind: KindAuthRequired, reason: ErrAuthRequired.reason, details: details}
}

// NewTransportFailure wraps a network-level error.
func NewTransportFailure(cause error) *FragmentError {
	return &FragmentError{kind: KindTransportFailure, reason: ErrTransportFailure.reason, cause: cause}
}

// NewRemoteRejected records a non-2xx answer. reason is the status text exactly as received.
func NewRemoteRejected(status int, reason, details string) *FragmentError {
	if reason == "" {
		reason = http.StatusText(status)
	}

	return &FragmentError{kind: KindRemoteRejected, status: status, reason: reason, details: details}
}

// NewMalformedResponse records a 2xx answer whose body does not have the expected shape.
func NewMalformedResponse(status int, cause error) *FragmentError {
	return &FragmentError{kind: KindRemoteRejected, status: status, reason: "malformed response", cause: cause}
}

// NewValidationFailure reports input refused before sending.
func NewValidationFailure(details string) *FragmentError {
	return &FragmentError{kind: KindValidationFailure, reason: ErrValidationFailure.reason, details: details}
}

// Error renders "<status> <reason>" for remote rejections, the shape users see in diagnostics.
func (e *FragmentError) Error() string {
	var b strings.Builder
	if e.kind == KindRemoteRejected && e.status != 0 {
		fmt.Fprintf(&b, "%d %s", e.status, e.reason)
	} else {
		b.WriteString(e.reason)
	}
	if e.details != "" {
		b.WriteString(": ")
		b.WriteString(e.details)
	}
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}

	return b.String()
}

// Unwrap exposes the underlying transport or decode error.
func (e *FragmentError) Unwrap() error {
	return e.cause
}

// Is implements kind-based matching against the sentinels.
func (e *FragmentError) Is(target error) bool {
	t, ok := target.(*FragmentError)
	if !ok {
		return false
	}

	return t.kind == e.kind && (t.status == 0 || t.status == e.status)
}

// Kind returns the failure classification.
func (e *FragmentError) Kind() Kind {
	return e.kind
}

// Status returns the HTTP status for remote rejections, 0 otherwise.
func (e *FragmentError) Status() int {
	return e.status
}

// Reason returns the status text or short cause.
func (e *FragmentError) Reason() string {
	return e.reason
}

// HTTPCode maps the failure onto an HTTP status for AppError consumers.
func (e *FragmentError) HTTPCode() int {
	switch e.kind {
	case KindRemoteRejected:
		if e.status != 0 {
			return e.status
		}

		return http.StatusBadGateway
	case KindAuthRequired:
		return http.StatusUnauthorized
	case KindValidationFailure:
		return http.StatusBadRequest
	default:
		return http.StatusServiceUnavailable
	}
}

// ErrorCode returns the kind as a business error code.
func (e *FragmentError) ErrorCode() string {
	return string(e.kind)
}

// Message returns the user-facing summary.
func (e *FragmentError) Message() string {
	return e.reason
}

// Details returns the server message or validation detail.
func (e *FragmentError) Details() string {
	return e.details
}

// RemoteStatus builds a sentinel matching a rejection with a specific status,
// e.g. errors.Is(err, RemoteStatus(http.StatusNotFound)).
func RemoteStatus(status int) *FragmentError {
	return &FragmentError{kind: KindRemoteRejected, status: status}
}

// AsFragmentError finds the classified failure in err's chain.
func AsFragmentError(err error) (*FragmentError, bool) {
	var fe *FragmentError
	if errors.As(err, &fe) {
		return fe, true
	}

	return nil, false
}

// KindOf returns the classification of err, or "" when err is not classified.
func KindOf(err error) Kind {
	if fe, ok := AsFragmentError(err); ok {
		return fe.kind
	}

	return ""
}
