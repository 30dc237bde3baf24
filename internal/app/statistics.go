package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/oshokin/httplog/internal/logger"
)

// Statistics accumulates the outcome of a run.
type Statistics struct {
	mu sync.Mutex

	// RequestsSent counts requests that got a response.
	RequestsSent int
	// RequestsFailed counts requests that failed before or during the exchange.
	RequestsFailed int
	// FilesWritten counts response bodies saved to the output directory.
	FilesWritten int
	// FilesSkipped counts response bodies not saved because the file already existed.
	FilesSkipped int
	// BytesReceived is the total size of response bodies.
	BytesReceived int64
	// StartTime is when the first request started.
	StartTime time.Time
	// EndTime is when the last request finished.
	EndTime time.Time
}

func (s *Statistics) start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.StartTime = time.Now()
}

func (s *Statistics) finish() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.EndTime = time.Now()
}

func (s *Statistics) addResponse(bytes int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.RequestsSent++
	s.BytesReceived += bytes
}

func (s *Statistics) addFailure() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.RequestsFailed++
}

func (s *Statistics) addFile(isWritten bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if isWritten {
		s.FilesWritten++
	} else {
		s.FilesSkipped++
	}
}

// PrintSummary logs the accumulated statistics.
func (s *Statistics) PrintSummary(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := s.RequestsSent + s.RequestsFailed
	if total == 0 {
		logger.Info(ctx, "No requests were sent")

		return
	}

	logger.Infof(ctx, "Requests:         %d total", total)

	if s.RequestsSent > 0 {
		logger.Infof(ctx, "  Completed:      %d", s.RequestsSent)
	}

	if s.RequestsFailed > 0 {
		logger.Infof(ctx, "  Failed:         %d", s.RequestsFailed)
	}

	if s.FilesWritten > 0 || s.FilesSkipped > 0 {
		logger.Infof(ctx, "Files:            %d written, %d skipped", s.FilesWritten, s.FilesSkipped)
	}

	if s.BytesReceived > 0 {
		//nolint:gosec // BytesReceived is never negative.
		logger.Infof(ctx, "Data Received:    %s", humanize.Bytes(uint64(s.BytesReceived)))
	}

	if !s.StartTime.IsZero() && !s.EndTime.IsZero() {
		logger.Infof(ctx, "Duration:         %s", formatDuration(s.EndTime.Sub(s.StartTime)))
	}
}

// formatDuration formats a duration into a human-readable string.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}

	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	return fmt.Sprintf("%ds", seconds)
}
