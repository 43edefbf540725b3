package ident

import (
	"context"
	"strings"
)

// Distro returns the macOS product name, version and build, the way
// sw_vers reports them.
func (r *Resolver) Distro(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	parts := make([]string, 0, 3)
	for _, flag := range []string{"-productName", "-productVersion", "-buildVersion"} {
		out, err := commandOutput(ctx, "sw_vers", flag)
		if err != nil {
			return "", err
		}
		if out = sanitize(out); out != "" {
			parts = append(parts, out)
		}
	}

	if len(parts) == 0 {
		return "", ErrUnavailable
	}
	return strings.Join(parts, " "), nil
}
