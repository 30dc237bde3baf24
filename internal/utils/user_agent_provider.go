package utils

import (
	"strings"

	"github.com/oshokin/httplog/internal/version"
)

//go:generate $MOCKGEN -source=user_agent_provider.go -destination=mocks/user_agent_provider_mock.go

// UserAgentProvider is an interface that defines a method for retrieving a User-Agent string.
type UserAgentProvider interface {
	// GetUserAgent returns a User-Agent string.
	GetUserAgent() string
}

// SimpleUserAgentProvider returns the User-Agent configured for the run.
type SimpleUserAgentProvider struct {
	userAgent string
}

// buildUserAgent is the product token sent when no User-Agent is configured.
func buildUserAgent() string {
	return "httplog/" + version.Short()
}

// NewSimpleUserAgentProvider creates a provider for userAgent.
// Surrounding whitespace is dropped; a blank value falls back to the build's product token.
func NewSimpleUserAgentProvider(userAgent string) UserAgentProvider {
	userAgent = strings.TrimSpace(userAgent)
	if userAgent == "" {
		userAgent = buildUserAgent()
	}

	return &SimpleUserAgentProvider{userAgent: userAgent}
}

// GetUserAgent returns a User-Agent string.
func (p *SimpleUserAgentProvider) GetUserAgent() string {
	return p.userAgent
}
