package report

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/lucheng0127/hostid/internal/ident"
)

// NameSource yields the computer name to report.
type NameSource interface {
	ComputerName(ctx context.Context) (string, error)
}

// Reporter writes the computer name, double quoted, on a single line.
type Reporter struct {
	source NameSource
	logger *zap.Logger
}

// NewReporter creates a reporter.
func NewReporter(source NameSource, logger *zap.Logger) *Reporter {
	return &Reporter{
		source: source,
		logger: logger,
	}
}

// Run emits exactly one line: the quoted name followed by a newline.
// An unavailable name prints as the empty string; it is not an error.
func (r *Reporter) Run(ctx context.Context, w io.Writer) error {
	name, err := r.source.ComputerName(ctx)
	if err != nil {
		if !errors.Is(err, ident.ErrUnavailable) {
			r.logger.Warn("computer name query failed", zap.Error(err))
		}
		name = ""
	}

	if _, err := fmt.Fprintf(w, "\"%s\"\n", name); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
