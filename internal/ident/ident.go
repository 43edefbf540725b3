package ident

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrUnavailable indicates the operating system has no answer for an
// identity query. Callers decide whether that is an error; for the
// reporting tools it is not.
var ErrUnavailable = errors.New("identity value unavailable")

// Provider is the platform-specific seam for the two queries that
// genuinely depend on the operating system.
type Provider interface {
	// DeviceName returns the user-assigned, human-readable computer name.
	DeviceName(ctx context.Context) (string, error)

	// Hostname returns the kernel/DNS hostname.
	Hostname(ctx context.Context) (string, error)
}

// Resolver answers host identity queries on top of a Provider.
type Resolver struct {
	provider Provider
	timeout  time.Duration
	logger   *zap.Logger
}

// NewResolver creates a resolver. Each OS query is bounded by timeout.
func NewResolver(provider Provider, timeout time.Duration, logger *zap.Logger) *Resolver {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Resolver{
		provider: provider,
		timeout:  timeout,
		logger:   logger,
	}
}

// ComputerName returns the configured computer name, falling back to the
// raw hostname when the platform has no pretty name. Returns
// ErrUnavailable only when both queries come back empty.
func (r *Resolver) ComputerName(ctx context.Context) (string, error) {
	name, err := r.deviceName(ctx)
	if err == nil {
		return name, nil
	}
	if !errors.Is(err, ErrUnavailable) {
		r.logger.Debug("device name query failed", zap.Error(err))
	}
	return r.Hostname(ctx)
}

// DeviceName returns the pretty device name. When the platform has no
// configured name, a display name is derived from the hostname by
// turning separators into spaces and capitalizing words.
func (r *Resolver) DeviceName(ctx context.Context) (string, error) {
	name, err := r.deviceName(ctx)
	if err == nil {
		return name, nil
	}
	if !errors.Is(err, ErrUnavailable) {
		r.logger.Debug("device name query failed", zap.Error(err))
	}
	host, err := r.Hostname(ctx)
	if err != nil {
		return "", err
	}
	return displayName(host), nil
}

// Hostname returns the kernel/DNS hostname.
func (r *Resolver) Hostname(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	name, err := r.provider.Hostname(ctx)
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			return "", err
		}
		r.logger.Debug("hostname query failed", zap.Error(err))
		return "", ErrUnavailable
	}

	name = sanitize(name)
	if name == "" {
		return "", ErrUnavailable
	}
	return name, nil
}

func (r *Resolver) deviceName(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	name, err := r.provider.DeviceName(ctx)
	if err != nil {
		return "", err
	}

	name = sanitize(name)
	if name == "" {
		return "", ErrUnavailable
	}
	return name, nil
}

// sanitize trims whitespace and drops bytes that are not valid UTF-8.
// A value that does not survive conversion counts as absent.
func sanitize(s string) string {
	return strings.TrimSpace(strings.ToValidUTF8(s, ""))
}
