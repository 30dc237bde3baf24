package http

//go:generate $MOCKGEN -source=chain.go -destination=mocks/chain_mock.go

import (
	"errors"
	"fmt"
	"net/http"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ErrNilRequest indicates that the HTTP request is nil.
var ErrNilRequest = errors.New("request is nil")

// Interceptor observes or rewrites a single exchange.
// It must call chain.Proceed at most once and return its response or error.
type Interceptor interface {
	// Intercept handles the exchange represented by chain.
	Intercept(chain Chain) (*http.Response, error)
}

// InterceptorFunc adapts an ordinary function to the Interceptor interface.
type InterceptorFunc func(chain Chain) (*http.Response, error)

// Intercept calls f(chain).
func (f InterceptorFunc) Intercept(chain Chain) (*http.Response, error) {
	return f(chain)
}

// Chain is one step of the interceptor pipeline.
type Chain interface {
	// Request returns the pending request.
	Request() *http.Request
	// Proceed passes req to the next interceptor, or to the transport at the end of the pipeline.
	Proceed(req *http.Request) (*http.Response, error)
	// Connection returns the connection known for the request's host, or nil.
	Connection() Connection
}

// Connection describes an established connection to a host.
type Connection interface {
	// Protocol returns the negotiated protocol, e.g. "HTTP/2.0".
	Protocol() string
}

// InterceptorTransport is an http.RoundTripper that runs interceptors in order
// before handing the request to the wrapped round tripper.
type InterceptorTransport struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// interceptors run in the order they were given.
	interceptors []Interceptor
	// protocols maps a host to the protocol last negotiated with it.
	protocols *lru.Cache[string, string]
}

// NewInterceptorTransport creates an InterceptorTransport.
// If next is nil, http.DefaultTransport is used.
// If protocolCacheSize is less than or equal to 0, it defaults to DefaultProtocolCacheSize.
func NewInterceptorTransport(
	next http.RoundTripper,
	protocolCacheSize int,
	interceptors ...Interceptor,
) (*InterceptorTransport, error) {
	if next == nil {
		next = http.DefaultTransport
	}

	if protocolCacheSize <= 0 {
		protocolCacheSize = DefaultProtocolCacheSize
	}

	protocols, err := lru.New[string, string](protocolCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create protocol cache: %w", err)
	}

	return &InterceptorTransport{
		next:         next,
		interceptors: interceptors,
		protocols:    protocols,
	}, nil
}

// RoundTrip runs the request through the interceptors and the underlying transport.
// It implements the http.RoundTripper interface.
func (t *InterceptorTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	return (&pipelineChain{transport: t, request: req}).proceed()
}

// pipelineChain is the Chain handed to the interceptor at position index.
type pipelineChain struct {
	transport *InterceptorTransport
	index     int
	request   *http.Request
}

func (c *pipelineChain) Request() *http.Request {
	return c.request
}

func (c *pipelineChain) Proceed(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	next := &pipelineChain{
		transport: c.transport,
		index:     c.index + 1,
		request:   req,
	}

	return next.proceed()
}

func (c *pipelineChain) Connection() Connection {
	if c.request.URL == nil {
		return nil
	}

	protocol, ok := c.transport.protocols.Get(c.request.URL.Host)
	if !ok {
		return nil
	}

	return negotiatedConnection(protocol)
}

// proceed runs the interceptor at c.index, or the transport when all interceptors are done.
func (c *pipelineChain) proceed() (*http.Response, error) {
	if c.index < len(c.transport.interceptors) {
		return c.transport.interceptors[c.index].Intercept(c)
	}

	resp, err := c.transport.next.RoundTrip(c.request)
	if err != nil {
		return nil, err
	}

	if c.request.URL != nil && resp.Proto != "" {
		c.transport.protocols.Add(c.request.URL.Host, resp.Proto)
	}

	return resp, nil
}

// negotiatedConnection is a Connection known only by its protocol.
type negotiatedConnection string

func (c negotiatedConnection) Protocol() string {
	return string(c)
}
