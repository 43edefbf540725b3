package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lucheng0127/hostid/internal/ident"
)

// ErrUnknownField marks a lookup of a field no one registered.
var ErrUnknownField = errors.New("unknown field")

// FieldFunc resolves one identity field.
type FieldFunc func(ctx context.Context) (string, error)

// FieldSet is a registry of named identity fields.
type FieldSet struct {
	order  []string
	fields map[string]FieldFunc
	logger *zap.Logger
}

// NewFieldSet creates an empty field registry.
func NewFieldSet(logger *zap.Logger) *FieldSet {
	return &FieldSet{
		fields: make(map[string]FieldFunc),
		logger: logger,
	}
}

// Register adds a field under the given name. Registration order is
// the print order.
func (s *FieldSet) Register(name string, fn FieldFunc) {
	if _, exists := s.fields[name]; !exists {
		s.order = append(s.order, name)
	}
	s.fields[name] = fn
}

// Names returns the registered field names in registration order.
func (s *FieldSet) Names() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// Print resolves a single field and writes its value followed by a
// newline. An unavailable field prints as an empty line.
func (s *FieldSet) Print(ctx context.Context, w io.Writer, name string) error {
	fn, exists := s.fields[name]
	if !exists {
		return fmt.Errorf("%q: %w", name, ErrUnknownField)
	}

	value := s.resolve(ctx, name, fn)
	if _, err := fmt.Fprintln(w, value); err != nil {
		return fmt.Errorf("failed to write field %s: %w", name, err)
	}
	return nil
}

// PrintAll resolves every registered field concurrently and writes
// them as aligned "name: value" lines in registration order.
func (s *FieldSet) PrintAll(ctx context.Context, w io.Writer) error {
	values := make([]string, len(s.order))

	group, ctx := errgroup.WithContext(ctx)
	for i, name := range s.order {
		i, name := i, name
		group.Go(func() error {
			values[i] = s.resolve(ctx, name, s.fields[name])
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	width := 0
	for _, name := range s.order {
		if len(name) > width {
			width = len(name)
		}
	}

	for i, name := range s.order {
		padding := strings.Repeat(" ", width-len(name))
		if _, err := fmt.Fprintf(w, "%s:%s %s\n", name, padding, values[i]); err != nil {
			return fmt.Errorf("failed to write field %s: %w", name, err)
		}
	}
	return nil
}

// resolve runs a field function, mapping unavailable to empty.
func (s *FieldSet) resolve(ctx context.Context, name string, fn FieldFunc) string {
	value, err := fn(ctx)
	if err != nil {
		if !errors.Is(err, ident.ErrUnavailable) {
			s.logger.Warn("field query failed", zap.String("field", name), zap.Error(err))
		}
		return ""
	}
	return value
}
