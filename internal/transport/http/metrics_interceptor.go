package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// metricsNamespace prefixes every metric name.
const metricsNamespace = "httplog"

// errorCodeLabel is the code label value of requests that failed in the transport.
const errorCodeLabel = "error"

// MetricsInterceptor is an Interceptor that counts requests and observes their duration.
type MetricsInterceptor struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetricsInterceptor creates a MetricsInterceptor and registers its collectors on registerer.
// Collectors already registered by a previous instance are reused.
func NewMetricsInterceptor(registerer prometheus.Registerer) (*MetricsInterceptor, error) {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "requests_total",
		Help:      "Number of outbound HTTP requests by method and status code.",
	}, []string{"method", "code"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of outbound HTTP requests until response headers arrive.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	var err error

	if requests, err = register(registerer, requests); err != nil {
		return nil, err
	}

	if duration, err = register(registerer, duration); err != nil {
		return nil, err
	}

	return &MetricsInterceptor{
		requests: requests,
		duration: duration,
	}, nil
}

// Intercept proceeds and records the outcome.
func (m *MetricsInterceptor) Intercept(chain Chain) (*http.Response, error) {
	req := chain.Request()
	startTime := time.Now()

	resp, err := chain.Proceed(req)

	m.duration.WithLabelValues(req.Method).Observe(time.Since(startTime).Seconds())

	if err != nil {
		m.requests.WithLabelValues(req.Method, errorCodeLabel).Inc()

		return nil, err
	}

	m.requests.WithLabelValues(req.Method, strconv.Itoa(resp.StatusCode)).Inc()

	return resp, nil
}

func register[T prometheus.Collector](registerer prometheus.Registerer, collector T) (T, error) {
	err := registerer.Register(collector)
	if err == nil {
		return collector, nil
	}

	var alreadyRegistered prometheus.AlreadyRegisteredError
	if errors.As(err, &alreadyRegistered) {
		if existing, ok := alreadyRegistered.ExistingCollector.(T); ok {
			return existing, nil
		}
	}

	return collector, fmt.Errorf("failed to register metrics collector: %w", err)
}
