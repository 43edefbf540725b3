package ident

import "context"

// DeviceName returns the user-friendly macOS Computer Name from the
// dynamic configuration store, via scutil.
func (OSProvider) DeviceName(ctx context.Context) (string, error) {
	return commandOutput(ctx, "scutil", "--get", "ComputerName")
}
