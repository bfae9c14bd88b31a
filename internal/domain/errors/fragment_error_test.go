package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFragmentError_RemoteRejectedKeepsStatusText(t *testing.T) {
	err := NewRemoteRejected(http.StatusNotFound, "Not Found", "no fragment with id abc123")

	assert.Equal(t, "404 Not Found: no fragment with id abc123", err.Error())
	assert.Equal(t, KindRemoteRejected, err.Kind())
	assert.Equal(t, http.StatusNotFound, err.Status())
	assert.Equal(t, "Not Found", err.Reason())
	assert.Equal(t, http.StatusNotFound, err.HTTPCode())
}

func TestFragmentError_DefaultsReasonFromStatus(t *testing.T) {
	err := NewRemoteRejected(http.StatusServiceUnavailable, "", "")

	assert.Equal(t, "503 Service Unavailable", err.Error())
}

func TestFragmentError_IsMatchesKindAndStatus(t *testing.T) {
	wrapped := errors.Wrap(NewRemoteRejected(http.StatusNotFound, "Not Found", ""), "delete fragment")

	assert.ErrorIs(t, wrapped, ErrRemoteRejected)
	assert.ErrorIs(t, wrapped, RemoteStatus(http.StatusNotFound))
	assert.NotErrorIs(t, wrapped, RemoteStatus(http.StatusUnauthorized))
	assert.NotErrorIs(t, wrapped, ErrTransportFailure)
}

func TestFragmentError_TransportUnwrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewTransportFailure(cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrTransportFailure)
	assert.Equal(t, http.StatusServiceUnavailable, err.HTTPCode())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidationFailure, KindOf(errors.WithStack(NewValidationFailure("empty content"))))
	assert.Equal(t, KindAuthRequired, KindOf(NewAuthRequired("")))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestAsFragmentError(t *testing.T) {
	fe, ok := AsFragmentError(errors.Wrap(NewMalformedResponse(http.StatusOK, errors.New("missing fragments")), "list"))

	require.True(t, ok)
	assert.Equal(t, KindRemoteRejected, fe.Kind())
	assert.Equal(t, "malformed response", fe.Reason())
}

func TestBaseError_IsMatchesDetailedCopy(t *testing.T) {
	err := ErrFragmentNotFound.WithDetails("abc123")

	assert.ErrorIs(t, err, ErrFragmentNotFound)
	assert.NotErrorIs(t, err, ErrUnsupportedType)
	assert.Equal(t, "abc123", err.Details())
}
