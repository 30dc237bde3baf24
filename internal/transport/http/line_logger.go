package http

//go:generate $MOCKGEN -source=line_logger.go -destination=mocks/line_logger_mock.go

import (
	"context"

	"github.com/oshokin/httplog/internal/logger"
)

// LineLogger receives the text blocks produced by LogInterceptor.
// Implementations must not block and must not fail.
type LineLogger interface {
	// LogLine records one line or block of trace text.
	LogLine(ctx context.Context, line string)
}

// LineLoggerFunc adapts an ordinary function to the LineLogger interface.
type LineLoggerFunc func(ctx context.Context, line string)

// LogLine calls f(ctx, line).
func (f LineLoggerFunc) LogLine(ctx context.Context, line string) {
	f(ctx, line)
}

// ZapLineLogger writes trace text through the application's zap logger at info level.
type ZapLineLogger struct{}

// NewZapLineLogger creates and returns a new instance of ZapLineLogger.
func NewZapLineLogger() LineLogger {
	return &ZapLineLogger{}
}

// LogLine logs line at info level using the logger carried by ctx.
func (l *ZapLineLogger) LogLine(ctx context.Context, line string) {
	logger.Info(ctx, line)
}
