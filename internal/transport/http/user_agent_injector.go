package http

import (
	"net/http"

	"github.com/oshokin/httplog/internal/utils"
)

// UserAgentInjector is an Interceptor that injects a User-Agent header into HTTP requests.
// It ensures that a User-Agent header is present in every request passing through the pipeline.
type UserAgentInjector struct {
	// userAgentProvider provides the User-Agent string to inject.
	userAgentProvider utils.UserAgentProvider
}

// userAgentHeader is the HTTP header name for User-Agent.
const userAgentHeader = "User-Agent"

// NewUserAgentInjector creates and returns a new instance of UserAgentInjector.
// It takes a UserAgentProvider to supply the User-Agent string.
func NewUserAgentInjector(userAgentProvider utils.UserAgentProvider) *UserAgentInjector {
	return &UserAgentInjector{
		userAgentProvider: userAgentProvider,
	}
}

// Intercept injects a User-Agent header if it is missing and proceeds.
// The caller's request is left untouched; a clone carries the header.
func (t *UserAgentInjector) Intercept(chain Chain) (*http.Response, error) {
	req := chain.Request()
	if req.Header.Get(userAgentHeader) == "" {
		req = req.Clone(req.Context())
		req.Header.Set(userAgentHeader, t.userAgentProvider.GetUserAgent())
	}

	return chain.Proceed(req)
}
