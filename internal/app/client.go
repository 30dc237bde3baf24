package app

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/oshokin/httplog/internal/config"
	http_transport "github.com/oshokin/httplog/internal/transport/http"
	"github.com/oshokin/httplog/internal/utils"
)

// ErrUnexpectedTransport indicates that http.DefaultTransport was replaced by a foreign type.
var ErrUnexpectedTransport = errors.New("default transport is not *http.Transport")

// NewTracingClient builds an HTTP client whose transport runs the interceptor pipeline
// described by cfg: request ID, user agent, metrics (when registerer is not nil) and tracing.
// Trace blocks go to lineLogger; nil selects the application logger.
func NewTracingClient(
	cfg *config.Config,
	registerer prometheus.Registerer,
	lineLogger http_transport.LineLogger,
) (*http.Client, error) {
	var interceptors []http_transport.Interceptor

	if cfg.RequestIDHeader != "" {
		interceptors = append(interceptors, http_transport.NewRequestIDInjector(cfg.RequestIDHeader))
	}

	interceptors = append(interceptors,
		http_transport.NewUserAgentInjector(utils.NewSimpleUserAgentProvider(cfg.UserAgent)))

	if registerer != nil {
		metrics, err := http_transport.NewMetricsInterceptor(registerer)
		if err != nil {
			return nil, fmt.Errorf("failed to create metrics interceptor: %w", err)
		}

		interceptors = append(interceptors, metrics)
	}

	logInterceptor, err := http_transport.NewLogInterceptor(
		lineLogger,
		cfg.Debug,
		http_transport.WithRedactedHeaders(cfg.RedactHeaders...),
	).SetLevel(cfg.ParsedTraceLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to set trace level: %w", err)
	}

	interceptors = append(interceptors, logInterceptor)

	next, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnexpectedTransport, http.DefaultTransport)
	}

	transport, err := http_transport.NewInterceptorTransport(next.Clone(), cfg.ProtocolCacheSize, interceptors...)
	if err != nil {
		return nil, fmt.Errorf("failed to create transport: %w", err)
	}

	// Cookies set by one response are sent with the following requests of the run.
	cookies, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &http.Client{
		Transport: transport,
		Jar:       cookies,
		Timeout:   cfg.ParsedTimeout,
	}, nil
}
