package ident

import (
	"context"
	"os"
	"strings"
)

const machineInfoPath = "/etc/machine-info"

// DeviceName returns the pretty hostname. systemd hosts expose it via
// hostnamectl; /etc/machine-info covers hosts where the tool is absent.
func (OSProvider) DeviceName(ctx context.Context) (string, error) {
	out, err := commandOutput(ctx, "hostnamectl", "--pretty")
	if err == nil && strings.TrimSpace(out) != "" {
		return out, nil
	}

	data, err := os.ReadFile(machineInfoPath)
	if err != nil {
		return "", ErrUnavailable
	}
	if name, ok := parseEnvFile(string(data))["PRETTY_HOSTNAME"]; ok && name != "" {
		return name, nil
	}
	return "", ErrUnavailable
}
