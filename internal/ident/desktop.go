package ident

import (
	"os"
	"runtime"
)

// DesktopEnv reports the desktop environment, "Unknown" when none is
// discoverable.
func (r *Resolver) DesktopEnv() (string, error) {
	switch runtime.GOOS {
	case "darwin", "ios":
		return "Aqua", nil
	case "windows":
		return "Windows", nil
	}

	for _, key := range []string{"XDG_CURRENT_DESKTOP", "DESKTOP_SESSION"} {
		if env := sanitize(os.Getenv(key)); env != "" {
			return env, nil
		}
	}
	return "Unknown", nil
}
