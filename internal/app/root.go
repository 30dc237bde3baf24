package app

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/httplog/internal/config"
	"github.com/oshokin/httplog/internal/logger"
)

// ExecuteRootCommand is the entry point for the application.
// It builds the tracing client, sends the request to every URL and prints a summary.
func ExecuteRootCommand(ctx context.Context, cfg *config.Config, options RequestOptions, args []string) {
	urls, err := flattenURLs(args)
	if err != nil {
		logger.Fatalf(ctx, "Failed to collect URLs: %v", err)
	}

	targets := filterTargetURLs(ctx, urls)

	var (
		registry   *prometheus.Registry
		registerer prometheus.Registerer
	)

	if cfg.MetricsFile != "" {
		registry = prometheus.NewRegistry()
		registerer = registry
	}

	client, err := NewTracingClient(cfg, registerer, nil)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize HTTP client: %v", err)
	}

	runner := NewRunner(cfg, client, &options, WithProgressBar(logger.Level() <= zapcore.InfoLevel))

	// Statistics and metrics are reported even when a request panics.
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf(ctx, "Panic recovered: %v", r)
		}

		runner.Statistics().PrintSummary(ctx)

		if registry == nil {
			return
		}

		if metricsErr := writeMetrics(cfg.MetricsFile, registry); metricsErr != nil {
			logger.Errorf(ctx, "Failed to write metrics: %v", metricsErr)
		}
	}()

	if err = runner.Run(ctx, targets); err != nil {
		logger.Errorf(ctx, "Failed to prepare request: %v", err)
	}
}

// writeMetrics stores the metrics gathered by gatherer in the Prometheus text format.
func writeMetrics(filename string, gatherer prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(filename, gatherer); err != nil {
		return fmt.Errorf("failed to write metrics to '%s': %w", filename, err)
	}

	return nil
}
