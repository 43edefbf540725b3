package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lucheng0127/hostid/internal/config"
	"github.com/lucheng0127/hostid/internal/ident"
	"github.com/lucheng0127/hostid/internal/report"
)

// hostid prints the computer name, double quoted, on one line.
// Arguments are ignored and the exit code is always 0: an unset name
// is reported as "" rather than treated as a failure.
func main() {
	cfg := config.LoadConfig()

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	resolver := ident.NewResolver(ident.OSProvider{}, cfg.QueryTimeout(), logger)
	reporter := report.NewReporter(resolver, logger)

	if err := reporter.Run(context.Background(), os.Stdout); err != nil {
		logger.Error("report failed", zap.Error(err))
	}
}

// newLogger creates a new logger writing to stderr; stdout carries
// only the report line.
func newLogger(logLevel string) *zap.Logger {
	var level zapcore.Level
	switch logLevel {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      true,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	return logger
}
