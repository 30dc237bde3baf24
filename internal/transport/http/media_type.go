package http

import (
	"bytes"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

const (
	// contentTypeHeader is the HTTP header name for Content-Type.
	contentTypeHeader = "Content-Type"
	// charsetParam is the media type parameter holding the character encoding.
	charsetParam = "charset"
	// defaultCharset is used when a media type carries no charset parameter.
	defaultCharset = "utf-8"
)

var (
	// ErrMissingMediaType indicates that a body declares no media type.
	ErrMissingMediaType = errors.New("media type is absent")

	// plaintextSubtypeMarkers are subtype fragments of human-readable bodies.
	//nolint:gochecknoglobals // Immutable lookup table.
	plaintextSubtypeMarkers = []string{"x-www-form-urlencoded", "json", "xml", "html"}
)

// MediaType is a parsed Content-Type value.
type MediaType struct {
	// Type is the primary type, e.g. "application".
	Type string
	// Subtype is the part after the slash, e.g. "json".
	Subtype string
	// Params holds the lower-cased parameter names and their values.
	Params map[string]string
	// raw is the header value as it was received.
	raw string
}

// ParseMediaType parses a Content-Type header value.
func ParseMediaType(contentType string) (*MediaType, error) {
	if strings.TrimSpace(contentType) == "" {
		return nil, ErrMissingMediaType
	}

	fullType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to parse media type '%s': %w", contentType, err)
	}

	primary, subtype, _ := strings.Cut(fullType, "/")

	return &MediaType{
		Type:    primary,
		Subtype: subtype,
		Params:  params,
		raw:     contentType,
	}, nil
}

// Charset returns the charset parameter, or utf-8 when absent.
func (m *MediaType) Charset() string {
	if charset := m.Params[charsetParam]; charset != "" {
		return charset
	}

	return defaultCharset
}

func (m *MediaType) String() string {
	return m.raw
}

// IsPlaintext reports whether a body of the given media type is human-readable text.
func IsPlaintext(mediaType *MediaType) (bool, error) {
	if mediaType == nil {
		return false, ErrMissingMediaType
	}

	if mediaType.Type == "text" {
		return true, nil
	}

	subtype := strings.ToLower(mediaType.Subtype)
	for _, marker := range plaintextSubtypeMarkers {
		if strings.Contains(subtype, marker) {
			return true, nil
		}
	}

	return false, nil
}

// decodeCharset converts raw bytes in the given charset to a UTF-8 string.
func decodeCharset(raw []byte, charset string) (string, error) {
	encoding, err := htmlindex.Get(charset)
	if err != nil {
		return "", fmt.Errorf("unsupported charset '%s': %w", charset, err)
	}

	if name, _ := htmlindex.Name(encoding); name == defaultCharset {
		return string(raw), nil
	}

	decoded, err := encoding.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s body: %w", charset, err)
	}

	return string(decoded), nil
}

// decodeRequestBody renders a request body for the trace.
// The text is charset-decoded and then always form-unescaped,
// so a literal '+' or '%' in a JSON body is altered or fails to decode.
func decodeRequestBody(raw []byte, mediaType *MediaType) (string, error) {
	text, err := decodeCharset(raw, mediaType.Charset())
	if err != nil {
		return "", err
	}

	unescaped, err := url.QueryUnescape(text + "\n")
	if err != nil {
		return "", fmt.Errorf("failed to unescape body: %w", err)
	}

	return unescaped, nil
}

// promisesBody reports whether a response may carry a body worth reading.
// HEAD responses never do; 1xx, 204 and 304 only when they still declare a length or chunked encoding.
func promisesBody(resp *http.Response) bool {
	if resp.Request != nil && resp.Request.Method == http.MethodHead {
		return false
	}

	code := resp.StatusCode
	if (code < http.StatusContinue || code >= http.StatusOK) &&
		code != http.StatusNoContent &&
		code != http.StatusNotModified {
		return true
	}

	return resp.ContentLength > 0 || slices.Contains(resp.TransferEncoding, "chunked")
}

// requestHasBody reports whether req carries a body to trace, possibly an empty one.
// http.NoBody without a Content-Type is the usual spelling of a bodiless request.
func requestHasBody(req *http.Request) bool {
	if req.Body == nil {
		return false
	}

	return req.Body != http.NoBody || req.Header.Get(contentTypeHeader) != ""
}

// replayBody returns a reader that yields raw and then readErr, if any.
func replayBody(raw []byte, readErr error) *replayReader {
	return &replayReader{reader: bytes.NewReader(raw), err: readErr}
}

// replayReader replays previously read bytes followed by the original read error.
type replayReader struct {
	reader *bytes.Reader
	err    error
}

func (r *replayReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	if err != nil && r.err != nil {
		return n, r.err
	}

	return n, err
}

func (r *replayReader) Close() error {
	return nil
}
