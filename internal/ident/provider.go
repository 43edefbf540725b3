package ident

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// OSProvider queries the running operating system.
type OSProvider struct{}

// Hostname returns the kernel hostname, falling back to uname(2) on
// platforms that have it.
func (OSProvider) Hostname(ctx context.Context) (string, error) {
	name, err := os.Hostname()
	if err == nil && name != "" {
		return name, nil
	}
	return unameNodename()
}

// commandOutput runs an external tool and returns its stdout. The
// context bounds the run; a missing tool or non-zero exit is reported
// as ErrUnavailable since it just means the facility is not present.
func commandOutput(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("%s timed out: %w", name, ErrUnavailable)
		}
		return "", fmt.Errorf("%s: %v: %w", name, err, ErrUnavailable)
	}
	return string(out), nil
}
