package app

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/httplog/internal/config"
	http_transport "github.com/oshokin/httplog/internal/transport/http"
)

// traceRecorder is a LineLogger that keeps every logged block.
type traceRecorder struct {
	mu     sync.Mutex
	blocks []string
}

func (r *traceRecorder) LogLine(_ context.Context, line string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.blocks = append(r.blocks, line)
}

func (r *traceRecorder) Joined() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return strings.Join(r.blocks, "")
}

// newTestConfig returns a validated configuration with the given trace level.
func newTestConfig(t *testing.T, traceLevel string) *config.Config {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.TraceLevel = traceLevel
	require.NoError(t, config.ValidateConfig(cfg))

	return cfg
}

// newEchoServer returns a server that answers with the received headers of interest.
func newEchoServer(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Set-Cookie", "session=secret")
		_, _ = io.WriteString(w, "request-id="+r.Header.Get("X-Request-ID")+"\n")
		_, _ = io.WriteString(w, "user-agent="+r.Header.Get("User-Agent")+"\n")
	}))
	t.Cleanup(server.Close)

	return server
}

// TestNewTracingClient tests that the pipeline built from the configuration is applied.
func TestNewTracingClient(t *testing.T) {
	t.Parallel()

	server := newEchoServer(t)
	cfg := newTestConfig(t, "body")
	recorder := &traceRecorder{}
	registry := prometheus.NewRegistry()

	client, err := NewTracingClient(cfg, registry, recorder)
	require.NoError(t, err)
	assert.Equal(t, cfg.ParsedTimeout, client.Timeout)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL+"/echo", http.NoBody)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer token")

	resp, err := client.Do(req)
	require.NoError(t, err)

	content, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Regexp(t, `request-id=[0-9a-f-]{36}\n`, string(content))
	assert.Contains(t, string(content), "user-agent="+http_transport.DefaultUserAgent+"\n")

	trace := recorder.Joined()
	assert.Contains(t, trace, "--> GET "+server.URL+"/echo HTTP/1.1\n")
	assert.Contains(t, trace, "\tAuthorization: ██\n")
	assert.Contains(t, trace, "\tSet-Cookie: ██\n")
	assert.Contains(t, trace, "\tUser-Agent: "+http_transport.DefaultUserAgent+"\n")
	assert.Contains(t, trace, "\tbody:"+string(content)+"\n")
	assert.Contains(t, trace, "<-- END HTTP\n")

	count, err := testutil.GatherAndCount(registry, "httplog_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

// TestNewTracingClient_Options tests the optional parts of the pipeline.
func TestNewTracingClient_Options(t *testing.T) {
	t.Parallel()

	server := newEchoServer(t)

	cfg := newTestConfig(t, "none")
	cfg.RequestIDHeader = ""
	cfg.UserAgent = "custom/1.0"

	recorder := &traceRecorder{}

	client, err := NewTracingClient(cfg, nil, recorder)
	require.NoError(t, err)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, http.NoBody)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)

	content, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, "request-id=\nuser-agent=custom/1.0\n", string(content))
	assert.Empty(t, recorder.Joined())
}

// TestNewTracingClient_InvalidLevel tests that an unknown trace level is rejected.
func TestNewTracingClient_InvalidLevel(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(t, "basic")
	cfg.ParsedTraceLevel = http_transport.Level(42)

	client, err := NewTracingClient(cfg, nil, &traceRecorder{})
	require.ErrorIs(t, err, http_transport.ErrInvalidLevel)
	assert.Nil(t, client)
}

// TestNewTracingClient_Cookies tests that cookies are carried between requests of a run.
func TestNewTracingClient_Cookies(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/login" {
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc", Path: "/"})

			return
		}

		cookie, err := r.Cookie("session")
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)

			return
		}

		_, _ = io.WriteString(w, cookie.Value)
	}))
	t.Cleanup(server.Close)

	client, err := NewTracingClient(newTestConfig(t, "none"), nil, &traceRecorder{})
	require.NoError(t, err)

	for _, path := range []string{"/login", "/profile"} {
		req, reqErr := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL+path, http.NoBody)
		require.NoError(t, reqErr)

		resp, doErr := client.Do(req)
		require.NoError(t, doErr)

		content, readErr := io.ReadAll(resp.Body)
		require.NoError(t, readErr)
		require.NoError(t, resp.Body.Close())

		if path == "/profile" {
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "abc", string(content))
		}
	}
}
