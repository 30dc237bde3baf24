package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/oshokin/httplog/internal/utils"
)

// RequestOptions describes the request sent to every URL.
type RequestOptions struct {
	// Method is the HTTP method. Empty means GET, or POST when a body is given.
	Method string
	// Headers holds raw "Name: value" pairs.
	Headers []string
	// Data is the literal request body.
	Data string
	// DataFile is the path of a file whose content is the request body.
	DataFile string
}

var (
	// ErrInvalidHeader indicates that a header is not in "Name: value" form.
	ErrInvalidHeader = errors.New("invalid header, expected 'Name: value'")
	// ErrConflictingBody indicates that both a literal body and a body file were given.
	ErrConflictingBody = errors.New("data and data-file are mutually exclusive")
)

// LoadBody returns the request body described by the options, or nil when there is none.
func (o *RequestOptions) LoadBody() ([]byte, error) {
	if o.Data != "" && o.DataFile != "" {
		return nil, ErrConflictingBody
	}

	if o.Data != "" {
		return []byte(o.Data), nil
	}

	if o.DataFile == "" {
		return nil, nil
	}

	body, err := os.ReadFile(filepath.Clean(o.DataFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body file: %w", err)
	}

	return body, nil
}

// ParseHeaders converts the raw header pairs into an http.Header.
// Repeated names keep every value in the given order.
func (o *RequestOptions) ParseHeaders() (http.Header, error) {
	header := make(http.Header, len(o.Headers))

	for _, raw := range o.Headers {
		name, value, found := strings.Cut(raw, ":")

		name = strings.TrimSpace(name)
		if !found || name == "" {
			return nil, fmt.Errorf("%w: '%s'", ErrInvalidHeader, raw)
		}

		header.Add(name, strings.TrimSpace(value))
	}

	return header, nil
}

// method returns the HTTP method to use for a request with or without a body.
func (o *RequestOptions) method(hasBody bool) string {
	if method := strings.TrimSpace(o.Method); method != "" {
		return strings.ToUpper(method)
	}

	if hasBody {
		return http.MethodPost
	}

	return http.MethodGet
}

// newRequest builds a request to target. A body without a Content-Type header gets a sniffed one.
func newRequest(
	ctx context.Context,
	target *url.URL,
	options *RequestOptions,
	header http.Header,
	body []byte,
) (*http.Request, error) {
	var bodyReader *bytes.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	method := options.method(body != nil)

	var (
		req *http.Request
		err error
	)

	// A typed nil reader must not reach NewRequestWithContext.
	if bodyReader != nil {
		req, err = http.NewRequestWithContext(ctx, method, target.String(), bodyReader)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, target.String(), http.NoBody)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header = header.Clone()
	if req.Header == nil {
		req.Header = make(http.Header)
	}

	if body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", utils.DetectContentType(body))
	}

	return req, nil
}
