package http

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestIDInjector is an Interceptor that tags each request with a random UUID header
// unless the caller already set one.
type RequestIDInjector struct {
	// header is the canonical name of the request ID header.
	header string
}

// NewRequestIDInjector creates and returns a new instance of RequestIDInjector.
// If header is empty, DefaultRequestIDHeader is used.
func NewRequestIDInjector(header string) *RequestIDInjector {
	if header == "" {
		header = DefaultRequestIDHeader
	}

	return &RequestIDInjector{header: http.CanonicalHeaderKey(header)}
}

// Intercept sets the request ID header if it is missing and proceeds.
func (t *RequestIDInjector) Intercept(chain Chain) (*http.Response, error) {
	req := chain.Request()
	if req.Header.Get(t.header) == "" {
		req = req.Clone(req.Context())
		req.Header.Set(t.header, uuid.NewString())
	}

	return chain.Proceed(req)
}
