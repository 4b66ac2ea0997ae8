package report

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Reporter - Interface for the error reporting sink the containers call on every recoverable
// failure. A reporter is injected at container construction time, it is never a process global.
// Reporting never replaces the error returned to the caller, it only mirrors it.
type Reporter interface {
	// Report - Called synchronously with a description of a recoverable failure.
	Report(msg string)
}

// zapReporter - Reporter implementation backed by a zap logger
type zapReporter struct {
	logger *zap.Logger
}

// New - Returns a Reporter that writes every reported message at error level to the given
// zap logger.
func New(logger *zap.Logger) Reporter {
	return &zapReporter{logger: logger}
}

// Report - Writes the message at error level
func (R *zapReporter) Report(msg string) {
	R.logger.Error(msg)
}

// Default - Returns a Reporter writing to stderr through a production configured zap logger.
// This is the sink containers use when nothing else is injected by the application.
func Default() Reporter {
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	logger, _ := config.Build()

	return New(logger)
}

// discard - Reporter that drops every message
type discard struct{}

// Report - Drops the message
func (discard) Report(_ string) {}

// Discard - Returns a Reporter that drops every message. Useful in tests and for callers
// that only care about the returned errors.
func Discard() Reporter {
	return discard{}
}
