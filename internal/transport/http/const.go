package http

import "time"

const (
	// DefaultTimeout is the default timeout duration for HTTP requests.
	DefaultTimeout = 60 * time.Second

	// DefaultUserAgent is the default User-Agent string used for HTTP requests.
	DefaultUserAgent = "httplog/1.0"

	// DefaultProtocol is reported for requests to hosts with no negotiated protocol yet.
	DefaultProtocol = "HTTP/1.1"

	// DefaultProtocolCacheSize is the default number of hosts whose negotiated protocol is remembered.
	DefaultProtocolCacheSize = 256

	// DefaultRequestIDHeader is the header RequestIDInjector fills in.
	DefaultRequestIDHeader = "X-Request-ID"
)
