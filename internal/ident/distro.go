package ident

import "os"

// distroFromRelease extracts a distribution string from os-release
// content: PRETTY_NAME when present, otherwise NAME.
func distroFromRelease(data string) (string, bool) {
	fields := parseEnvFile(data)
	if name := fields["PRETTY_NAME"]; name != "" {
		return name, true
	}
	if name := fields["NAME"]; name != "" {
		return name, true
	}
	return "", false
}

// readOSRelease reads the first os-release file that exists.
func readOSRelease() (string, bool) {
	for _, path := range []string{"/etc/os-release", "/usr/lib/os-release"} {
		if data, err := os.ReadFile(path); err == nil {
			if name, ok := distroFromRelease(string(data)); ok {
				return name, true
			}
		}
	}
	return "", false
}
