//go:build !darwin

package ident

import "context"

// Distro returns the OS distribution name, from os-release where the
// platform ships one, otherwise the platform name itself.
func (r *Resolver) Distro(ctx context.Context) (string, error) {
	if name, ok := readOSRelease(); ok {
		return name, nil
	}
	if p := CurrentPlatform(); p != PlatformUnknown {
		return string(p), nil
	}
	return "", ErrUnavailable
}
