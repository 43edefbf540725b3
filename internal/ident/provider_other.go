//go:build !darwin && !linux

package ident

import "context"

// DeviceName has no platform facility here; callers fall back to the
// hostname.
func (OSProvider) DeviceName(ctx context.Context) (string, error) {
	return "", ErrUnavailable
}
