package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"

	"github.com/oshokin/httplog/internal/config"
	"github.com/oshokin/httplog/internal/constants"
	"github.com/oshokin/httplog/internal/logger"
	"github.com/oshokin/httplog/internal/utils"
)

// partFileExtension marks files that are still being written.
const partFileExtension = ".part"

// Runner sends the configured request to each URL and stores or prints the responses.
type Runner struct {
	// cfg is the validated application configuration.
	cfg *config.Config
	// client sends requests through the interceptor pipeline.
	client *http.Client
	// options describes the request sent to every URL.
	options *RequestOptions
	// stdout receives response bodies when no output directory is configured.
	stdout io.Writer
	// showProgress enables a progress bar while saving files.
	showProgress bool
	// stats accumulates the outcome of the run.
	stats *Statistics
}

// RunnerOption customizes a Runner.
type RunnerOption func(r *Runner)

// WithStdout sets where response bodies are printed. The default is os.Stdout.
func WithStdout(w io.Writer) RunnerOption {
	return func(r *Runner) {
		r.stdout = w
	}
}

// WithProgressBar enables or disables the progress bar shown while saving files.
func WithProgressBar(enabled bool) RunnerOption {
	return func(r *Runner) {
		r.showProgress = enabled
	}
}

// NewRunner creates and returns a new instance of Runner.
func NewRunner(
	cfg *config.Config,
	client *http.Client,
	options *RequestOptions,
	opts ...RunnerOption,
) *Runner {
	r := &Runner{
		cfg:     cfg,
		client:  client,
		options: options,
		stdout:  os.Stdout,
		stats:   &Statistics{},
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Statistics returns the statistics accumulated so far.
func (r *Runner) Statistics() *Statistics {
	return r.stats
}

// Run sends one request per target. A failed target is logged and the next one is tried.
// The returned error reports only problems with the request options.
func (r *Runner) Run(ctx context.Context, targets []*url.URL) error {
	header, err := r.options.ParseHeaders()
	if err != nil {
		return err
	}

	body, err := r.options.LoadBody()
	if err != nil {
		return err
	}

	r.stats.start()
	defer r.stats.finish()

	for _, target := range targets {
		if ctx.Err() != nil {
			logger.Warnf(ctx, "Stopping: %v", ctx.Err())

			break
		}

		bytesReceived, fetchErr := r.fetch(ctx, target, header, body)
		if fetchErr != nil {
			logger.Errorf(ctx, "Failed to process '%s': %v", target, fetchErr)
			r.stats.addFailure()

			continue
		}

		r.stats.addResponse(bytesReceived)
	}

	return nil
}

func (r *Runner) fetch(ctx context.Context, target *url.URL, header http.Header, body []byte) (int64, error) {
	req, err := newRequest(ctx, target, r.options, header, body)
	if err != nil {
		return 0, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck // Error on close is not critical here.

	logger.Debugf(ctx, "Received %s from '%s'", resp.Status, target)

	if r.cfg.OutputPath == "" {
		n, copyErr := io.Copy(r.stdout, resp.Body)
		if copyErr != nil {
			return n, fmt.Errorf("failed to print response body: %w", copyErr)
		}

		return n, nil
	}

	return r.saveResponse(ctx, resp)
}

// saveResponse writes the response body to a file named after the request URL.
// The body is written to a .part file first and renamed when complete.
func (r *Runner) saveResponse(ctx context.Context, resp *http.Response) (int64, error) {
	if err := os.MkdirAll(r.cfg.OutputPath, constants.DefaultFolderPermissions); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := utils.FilenameFromURL(resp.Request.URL, resp.Header.Get("Content-Type"))
	filePath := filepath.Join(r.cfg.OutputPath, filename)

	isExist, err := utils.IsFileExist(filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to check output file: %w", err)
	}

	if isExist && !r.cfg.ReplaceFiles {
		logger.Infof(ctx, "File '%s' already exists, skipping", filePath)

		n, _ := io.Copy(io.Discard, resp.Body)
		r.stats.addFile(false)

		return n, nil
	}

	tempPath := filePath + partFileExtension

	f, err := os.OpenFile(
		filepath.Clean(tempPath),
		os.O_CREATE|os.O_WRONLY|os.O_TRUNC,
		constants.DefaultFilePermissions)
	if err != nil {
		return 0, fmt.Errorf("failed to create temporary file: %w", err)
	}

	var writer io.Writer = f

	if r.showProgress {
		bar := progressbar.DefaultBytes(resp.ContentLength, "Downloading "+filename)
		writer = io.MultiWriter(f, bar)
	}

	n, copyErr := io.Copy(writer, resp.Body)
	closeErr := f.Close()

	if err = errors.Join(copyErr, closeErr); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil && !os.IsNotExist(removeErr) {
			logger.Warnf(ctx, "Failed to clean up temporary file '%s': %v", tempPath, removeErr)
		}

		return n, fmt.Errorf("failed to write file: %w", err)
	}

	if err = os.Rename(tempPath, filePath); err != nil {
		return n, fmt.Errorf("failed to rename temporary file: %w", err)
	}

	//nolint:gosec // n is never negative.
	logger.Infof(ctx, "Saved '%s' (%s)", filePath, humanize.Bytes(uint64(n)))
	r.stats.addFile(true)

	return n, nil
}
