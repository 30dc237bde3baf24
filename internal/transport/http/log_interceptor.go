package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/oshokin/httplog/internal/logger"
)

const (
	// bodySkippedLine replaces bodies that are binary or of unknown kind.
	bodySkippedLine = "\tbody: maybe [file part] , too large too print , ignored!\n"
	// redactedValue replaces the value of redacted headers.
	redactedValue = "██"
)

// LogInterceptor is an Interceptor that traces requests and responses
// at a configurable Level.
type LogInterceptor struct {
	// level holds the current Level; it may change while requests are in flight.
	level atomic.Int32
	// lineLogger receives the trace blocks.
	lineLogger LineLogger
	// redactedHeaders holds canonical names of headers whose values are hidden.
	redactedHeaders map[string]struct{}
}

// LogInterceptorOption customizes a LogInterceptor.
type LogInterceptorOption func(i *LogInterceptor)

// WithRedactedHeaders hides the values of the named headers in traces.
func WithRedactedHeaders(names ...string) LogInterceptorOption {
	return func(i *LogInterceptor) {
		for _, name := range names {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}

			i.redactedHeaders[http.CanonicalHeaderKey(name)] = struct{}{}
		}
	}
}

// NewLogInterceptor creates and returns a new instance of LogInterceptor.
// The initial level is DefaultLevel(debug). If lineLogger is nil, NewZapLineLogger is used.
func NewLogInterceptor(lineLogger LineLogger, debug bool, opts ...LogInterceptorOption) *LogInterceptor {
	if lineLogger == nil {
		lineLogger = NewZapLineLogger()
	}

	i := &LogInterceptor{
		lineLogger:      lineLogger,
		redactedHeaders: make(map[string]struct{}),
	}

	i.level.Store(int32(DefaultLevel(debug)))

	for _, opt := range opts {
		opt(i)
	}

	return i
}

// Level returns the current trace level.
func (i *LogInterceptor) Level() Level {
	return Level(i.level.Load())
}

// SetLevel changes the trace level and returns the interceptor for chaining.
// An unknown level is rejected with ErrInvalidLevel and the current level is kept.
func (i *LogInterceptor) SetLevel(level Level) (*LogInterceptor, error) {
	if !level.IsValid() {
		return i, fmt.Errorf("%w: %s", ErrInvalidLevel, level)
	}

	i.level.Store(int32(level))

	return i, nil
}

// Intercept traces the exchange and forwards it unchanged.
// With LevelBody a plaintext response body is read and replaced by an in-memory copy.
func (i *LogInterceptor) Intercept(chain Chain) (*http.Response, error) {
	req := chain.Request()

	level := i.Level()
	if level == LevelNone {
		return chain.Proceed(req)
	}

	ctx := req.Context()

	req = i.logForRequest(ctx, req, chain.Connection(), level)

	startTime := time.Now()

	resp, err := chain.Proceed(req)
	if err != nil {
		i.lineLogger.LogLine(ctx, "<-- HTTP FAILED: "+err.Error())

		return nil, err
	}

	tookMs := time.Since(startTime).Milliseconds()

	return i.logForResponse(ctx, req, resp, tookMs, level), nil
}

// logForRequest writes the request trace and returns the request to send.
// The result differs from req only when the body had to be read to be logged.
func (i *LogInterceptor) logForRequest(
	ctx context.Context,
	req *http.Request,
	conn Connection,
	level Level,
) (outgoing *http.Request) {
	var (
		logBody    = level == LevelBody
		logHeaders = level == LevelBody || level == LevelHeaders
		protocol   = DefaultProtocol
		buffer     strings.Builder
	)

	outgoing = req

	if conn != nil {
		protocol = conn.Protocol()
	}

	defer func() {
		if r := recover(); r != nil {
			i.lineLogger.LogLine(ctx, fmt.Sprint(r))
		}

		buffer.WriteString("--> END " + req.Method + "\n")
		i.lineLogger.LogLine(ctx, buffer.String())
	}()

	buffer.WriteString("--> " + req.Method + " " + req.URL.String() + " " + protocol + "\n")

	if !logHeaders {
		return outgoing
	}

	i.writeHeaders(&buffer, req.Header)

	if !logBody || !requestHasBody(req) {
		return outgoing
	}

	mediaType, err := ParseMediaType(req.Header.Get(contentTypeHeader))
	if err != nil {
		i.lineLogger.LogLine(ctx, err.Error())

		return outgoing
	}

	isPlaintext, err := IsPlaintext(mediaType)
	if err != nil {
		i.lineLogger.LogLine(ctx, err.Error())

		return outgoing
	}

	if !isPlaintext {
		buffer.WriteString(bodySkippedLine)

		return outgoing
	}

	buffer.WriteString("\t" + mediaType.String() + "\n")

	raw, outgoing, err := copyRequestBody(req)
	if err != nil {
		i.lineLogger.LogLine(ctx, err.Error())

		return outgoing
	}

	text, err := decodeRequestBody(raw, mediaType)
	if err != nil {
		logger.Debugf(ctx, "Failed to decode request body for trace: %v", err)

		return outgoing
	}

	buffer.WriteString("\tbody:" + text)

	return outgoing
}

// logForResponse writes the response trace and returns the response to hand back.
func (i *LogInterceptor) logForResponse(
	ctx context.Context,
	req *http.Request,
	resp *http.Response,
	tookMs int64,
	level Level,
) (result *http.Response) {
	var (
		logBody    = level == LevelBody
		logHeaders = level == LevelBody || level == LevelHeaders
		buffer     strings.Builder
	)

	result = resp

	defer func() {
		if r := recover(); r != nil {
			i.lineLogger.LogLine(ctx, fmt.Sprint(r))
		}

		buffer.WriteString("<-- END HTTP\n")
		i.lineLogger.LogLine(ctx, buffer.String())
	}()

	requestURL := req.URL
	if resp.Request != nil && resp.Request.URL != nil {
		requestURL = resp.Request.URL
	}

	fmt.Fprintf(&buffer, "<-- %d %s %s (%dms)\n", resp.StatusCode, statusMessage(resp), requestURL, tookMs)

	if !logHeaders {
		return result
	}

	i.writeHeaders(&buffer, resp.Header)

	if !logBody || !promisesBody(resp) {
		return result
	}

	// http.NoBody is an empty body, not an absent one.
	if resp.Body == nil {
		buffer.WriteString(bodySkippedLine)

		return result
	}

	mediaType, err := ParseMediaType(resp.Header.Get(contentTypeHeader))
	if err != nil {
		i.lineLogger.LogLine(ctx, err.Error())

		return result
	}

	isPlaintext, err := IsPlaintext(mediaType)
	if err != nil {
		i.lineLogger.LogLine(ctx, err.Error())

		return result
	}

	if !isPlaintext {
		buffer.WriteString(bodySkippedLine)

		return result
	}

	raw, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	// Whatever was read is handed back, so the caller sees the same bytes and the same failure.
	replacement := *resp
	replacement.Body = replayBody(raw, err)
	replacement.ContentLength = int64(len(raw))
	result = &replacement

	if err != nil {
		i.lineLogger.LogLine(ctx, fmt.Sprintf("failed to read response body: %v", err))

		return result
	}

	text, err := decodeCharset(raw, mediaType.Charset())
	if err != nil {
		i.lineLogger.LogLine(ctx, err.Error())

		return result
	}

	buffer.WriteString("\tbody:" + text + "\n")

	return result
}

// writeHeaders writes one tab-indented line per header value, followed by a blank line.
func (i *LogInterceptor) writeHeaders(buffer *strings.Builder, header http.Header) {
	names := make([]string, 0, len(header))
	for name := range header {
		names = append(names, name)
	}

	slices.Sort(names)

	for _, name := range names {
		_, isRedacted := i.redactedHeaders[http.CanonicalHeaderKey(name)]

		for _, value := range header[name] {
			if isRedacted {
				value = redactedValue
			}

			buffer.WriteString("\t" + name + ": " + value + "\n")
		}
	}

	buffer.WriteString("\n")
}

// copyRequestBody returns the request body bytes and the request to send in place of req.
// GetBody is preferred so req.Body stays untouched; otherwise the body is read once
// and a clone replays it downstream.
func copyRequestBody(req *http.Request) ([]byte, *http.Request, error) {
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, req, fmt.Errorf("failed to copy request body: %w", err)
		}

		defer body.Close() //nolint:errcheck // The copy is in memory or owned by us.

		raw, err := io.ReadAll(body)
		if err != nil {
			return nil, req, fmt.Errorf("failed to read request body copy: %w", err)
		}

		return raw, req, nil
	}

	raw, readErr := io.ReadAll(req.Body)
	_ = req.Body.Close()

	outgoing := req.Clone(req.Context())
	outgoing.Body = replayBody(raw, readErr)

	if readErr != nil {
		return nil, outgoing, fmt.Errorf("failed to read request body: %w", readErr)
	}

	if len(raw) == 0 {
		outgoing.Body = http.NoBody
	}

	outgoing.GetBody = func() (io.ReadCloser, error) {
		if len(raw) == 0 {
			return http.NoBody, nil
		}

		return replayBody(raw, nil), nil
	}

	return raw, outgoing, nil
}

// statusMessage returns the reason phrase of resp without the status code.
func statusMessage(resp *http.Response) string {
	code := strconv.Itoa(resp.StatusCode)
	if message, ok := strings.CutPrefix(resp.Status, code+" "); ok {
		return message
	}

	if resp.Status != "" && resp.Status != code {
		return resp.Status
	}

	return http.StatusText(resp.StatusCode)
}
