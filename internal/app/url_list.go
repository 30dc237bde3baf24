package app

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/oshokin/httplog/internal/logger"
	"github.com/oshokin/httplog/internal/utils"
)

// defaultTextExtension marks arguments that are files with one URL per line.
const defaultTextExtension = ".txt"

// ErrUnsupportedURL indicates that a URL is not an absolute http(s) URL.
var ErrUnsupportedURL = errors.New("unsupported URL, expected http or https")

// flattenURLs expands text files into the URLs they list and removes duplicates.
// Order of first appearance is kept.
func flattenURLs(args []string) ([]string, error) {
	var (
		processedSet       = make(map[string]struct{})
		processedTextFiles = make(map[string]struct{})
		processedURLs      []string
	)

	add := func(rawURL string) {
		if _, ok := processedSet[rawURL]; ok {
			return
		}

		processedSet[rawURL] = struct{}{}

		processedURLs = append(processedURLs, rawURL)
	}

	for _, arg := range args {
		if !strings.HasSuffix(arg, defaultTextExtension) {
			add(arg)

			continue
		}

		if _, exists := processedTextFiles[arg]; exists {
			continue
		}

		lines, err := utils.ReadUniqueLinesFromFile(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to read URL list '%s': %w", arg, err)
		}

		for _, line := range lines {
			add(line)
		}

		processedTextFiles[arg] = struct{}{}
	}

	return processedURLs, nil
}

// parseTargetURL parses rawURL and checks that it can be requested.
func parseTargetURL(rawURL string) (*url.URL, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL '%s': %w", rawURL, err)
	}

	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedURL, rawURL)
	}

	return parsed, nil
}

// filterTargetURLs drops the URLs that cannot be requested and logs each one.
func filterTargetURLs(ctx context.Context, urls []string) []*url.URL {
	result := make([]*url.URL, 0, len(urls))

	for _, rawURL := range urls {
		parsed, err := parseTargetURL(rawURL)
		if err != nil {
			logger.Warnf(ctx, "Skipping URL: %v", err)

			continue
		}

		result = append(result, parsed)
	}

	return result
}
