// Package http provides an interceptor pipeline on top of http.RoundTripper
// and the interceptors that run in it: request/response tracing at four levels of detail,
// User-Agent and request ID injection, and Prometheus request metrics.
// Interceptors see each exchange as a chain: the pending request, a way to proceed,
// and the protocol previously negotiated with the target host.
package http
