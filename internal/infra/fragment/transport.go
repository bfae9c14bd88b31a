package fragment

import (
	"net/http"

	"github.com/google/uuid"
)

// HeaderRequestID correlates a client request with the store's logs.
const HeaderRequestID = "X-Request-Id"

// transport stamps every outgoing request with the client's identity and a fresh request id.
type transport struct {
	base      http.RoundTripper
	userAgent string
}

func newTransport(base http.RoundTripper, userAgent string) *transport {
	if base == nil {
		base = http.DefaultTransport
	}

	return &transport{base: base, userAgent: userAgent}
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", t.userAgent)
	if req.Header.Get(HeaderRequestID) == "" {
		req.Header.Set(HeaderRequestID, uuid.NewString())
	}

	return t.base.RoundTrip(req)
}
