package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/oshokin/httplog/internal/logger"
)

// TestFormatDuration tests the formatDuration function.
func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "milliseconds", duration: 250 * time.Millisecond, expected: "250ms"},
		{name: "seconds", duration: 42 * time.Second, expected: "42s"},
		{name: "minutes", duration: 3*time.Minute + 5*time.Second, expected: "3m 5s"},
		{name: "hours", duration: 2*time.Hour + 1*time.Minute + 9*time.Second, expected: "2h 1m 9s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, formatDuration(tt.duration))
		})
	}
}

// TestStatistics_PrintSummary tests the summary lines written for a run.
func TestStatistics_PrintSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		stats    func() *Statistics
		expected []string
	}{
		{
			name:     "nothing sent",
			stats:    func() *Statistics { return &Statistics{} },
			expected: []string{"No requests were sent"},
		},
		{
			name: "mixed outcome",
			stats: func() *Statistics {
				s := &Statistics{}
				s.addResponse(2048)
				s.addResponse(0)
				s.addFailure()
				s.addFile(true)
				s.addFile(false)
				s.StartTime = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
				s.EndTime = s.StartTime.Add(1500 * time.Millisecond)

				return s
			},
			expected: []string{
				"Requests:         3 total",
				"  Completed:      2",
				"  Failed:         1",
				"Files:            1 written, 1 skipped",
				"Data Received:    2.0 kB",
				"Duration:         1s",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			core, logs := observer.New(zapcore.InfoLevel)
			ctx := logger.ToContext(context.Background(), zap.New(core).Sugar())

			tt.stats().PrintSummary(ctx)

			messages := make([]string, 0, logs.Len())
			for _, entry := range logs.All() {
				messages = append(messages, entry.Message)
			}

			assert.Equal(t, tt.expected, messages)
		})
	}
}
