package app

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/httplog/internal/constants"
	"github.com/oshokin/httplog/internal/utils"
)

const testPlainContentType = "text/plain; charset=utf-8"

// newContentServer returns a server answering every request with body.
// A POST request gets its own body echoed back instead.
func newContentServer(t *testing.T, body string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", testPlainContentType)

		if r.Method == http.MethodPost {
			_, _ = io.Copy(w, r.Body)

			return
		}

		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)

	return server
}

// mustParseURL parses rawURL or fails the test.
func mustParseURL(t *testing.T, rawURL string) *url.URL {
	t.Helper()

	parsed, err := url.Parse(rawURL)
	require.NoError(t, err)

	return parsed
}

// TestRunner_Run_Stdout tests that response bodies are printed when no output directory is set.
func TestRunner_Run_Stdout(t *testing.T) {
	t.Parallel()

	server := newContentServer(t, "hello")
	cfg := newTestConfig(t, "basic")

	client, err := NewTracingClient(cfg, nil, &traceRecorder{})
	require.NoError(t, err)

	var stdout bytes.Buffer

	runner := NewRunner(cfg, client, &RequestOptions{}, WithStdout(&stdout))

	err = runner.Run(context.Background(), []*url.URL{
		mustParseURL(t, server.URL+"/first"),
		mustParseURL(t, server.URL+"/second"),
	})
	require.NoError(t, err)

	assert.Equal(t, "hellohello", stdout.String())

	stats := runner.Statistics()
	assert.Equal(t, 2, stats.RequestsSent)
	assert.Zero(t, stats.RequestsFailed)
	assert.Equal(t, int64(10), stats.BytesReceived)
	assert.False(t, stats.StartTime.IsZero())
	assert.False(t, stats.EndTime.Before(stats.StartTime))
}

// TestRunner_Run_Body tests that the request body and headers reach the server.
func TestRunner_Run_Body(t *testing.T) {
	t.Parallel()

	server := newContentServer(t, "")
	cfg := newTestConfig(t, "body")
	recorder := &traceRecorder{}

	client, err := NewTracingClient(cfg, nil, recorder)
	require.NoError(t, err)

	var stdout bytes.Buffer

	options := &RequestOptions{
		Headers: []string{"Content-Type: application/x-www-form-urlencoded"},
		Data:    "name=a%20b",
	}

	runner := NewRunner(cfg, client, options, WithStdout(&stdout))

	require.NoError(t, runner.Run(context.Background(), []*url.URL{mustParseURL(t, server.URL)}))

	assert.Equal(t, "name=a%20b", stdout.String())
	assert.Contains(t, recorder.Joined(), "--> POST "+server.URL+" HTTP/1.1\n")
	assert.Contains(t, recorder.Joined(), "\tbody:name=a b\n")
}

// TestRunner_Run_InvalidOptions tests that bad request options stop the run before any request.
func TestRunner_Run_InvalidOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		options       *RequestOptions
		expectedError error
	}{
		{
			name:          "invalid header",
			options:       &RequestOptions{Headers: []string{"broken"}},
			expectedError: ErrInvalidHeader,
		},
		{
			name:          "conflicting body",
			options:       &RequestOptions{Data: "a", DataFile: "b"},
			expectedError: ErrConflictingBody,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := newTestConfig(t, "none")

			runner := NewRunner(cfg, http.DefaultClient, tt.options, WithStdout(io.Discard))

			err := runner.Run(context.Background(), []*url.URL{mustParseURL(t, "http://127.0.0.1:1/")})
			require.ErrorIs(t, err, tt.expectedError)
			assert.Zero(t, runner.Statistics().RequestsSent+runner.Statistics().RequestsFailed)
		})
	}
}

// TestRunner_Run_Failures tests that a failed URL is counted and the run continues.
func TestRunner_Run_Failures(t *testing.T) {
	t.Parallel()

	server := newContentServer(t, "ok")

	closedServer := httptest.NewServer(http.NotFoundHandler())
	closedURL := closedServer.URL
	closedServer.Close()

	cfg := newTestConfig(t, "basic")
	recorder := &traceRecorder{}

	client, err := NewTracingClient(cfg, nil, recorder)
	require.NoError(t, err)

	var stdout bytes.Buffer

	runner := NewRunner(cfg, client, &RequestOptions{}, WithStdout(&stdout))

	err = runner.Run(context.Background(), []*url.URL{
		mustParseURL(t, closedURL),
		mustParseURL(t, server.URL),
	})
	require.NoError(t, err)

	assert.Equal(t, "ok", stdout.String())
	assert.Equal(t, 1, runner.Statistics().RequestsSent)
	assert.Equal(t, 1, runner.Statistics().RequestsFailed)
	assert.Contains(t, recorder.Joined(), "<-- HTTP FAILED: ")
}

// TestRunner_Run_Cancelled tests that a cancelled context stops the run.
func TestRunner_Run_Cancelled(t *testing.T) {
	t.Parallel()

	server := newContentServer(t, "ok")
	cfg := newTestConfig(t, "none")

	client, err := NewTracingClient(cfg, nil, &traceRecorder{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := NewRunner(cfg, client, &RequestOptions{}, WithStdout(io.Discard))

	require.NoError(t, runner.Run(ctx, []*url.URL{mustParseURL(t, server.URL)}))
	assert.Zero(t, runner.Statistics().RequestsSent+runner.Statistics().RequestsFailed)
}

// TestRunner_Run_OutputPath tests saving response bodies, skipping and replacing files.
func TestRunner_Run_OutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		replaceFiles    bool
		existingContent string
		expectedContent string
		expectedWritten int
		expectedSkipped int
	}{
		{
			name:            "new file",
			expectedContent: "fresh",
			expectedWritten: 1,
		},
		{
			name:            "existing file is kept",
			existingContent: "stale",
			expectedContent: "stale",
			expectedSkipped: 1,
		},
		{
			name:            "existing file is replaced",
			replaceFiles:    true,
			existingContent: "stale",
			expectedContent: "fresh",
			expectedWritten: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := newContentServer(t, "fresh")
			target := mustParseURL(t, server.URL+"/files/report")

			cfg := newTestConfig(t, "none")
			cfg.OutputPath = filepath.Join(t.TempDir(), "nested", "out")
			cfg.ReplaceFiles = tt.replaceFiles

			filePath := filepath.Join(cfg.OutputPath, utils.FilenameFromURL(target, testPlainContentType))

			if tt.existingContent != "" {
				require.NoError(t, os.MkdirAll(cfg.OutputPath, constants.DefaultFolderPermissions))
				require.NoError(t, os.WriteFile(filePath, []byte(tt.existingContent), constants.DefaultFilePermissions))
			}

			client, err := NewTracingClient(cfg, nil, &traceRecorder{})
			require.NoError(t, err)

			var stdout bytes.Buffer

			runner := NewRunner(cfg, client, &RequestOptions{}, WithStdout(&stdout))
			require.NoError(t, runner.Run(context.Background(), []*url.URL{target}))

			content, err := os.ReadFile(filePath)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedContent, string(content))
			assert.Empty(t, stdout.String())

			assert.NoFileExists(t, filePath+partFileExtension)

			stats := runner.Statistics()
			assert.Equal(t, 1, stats.RequestsSent)
			assert.Equal(t, tt.expectedWritten, stats.FilesWritten)
			assert.Equal(t, tt.expectedSkipped, stats.FilesSkipped)
		})
	}
}
