package ident

import (
	"os"
	"os/user"
	"strings"
)

// Username returns the account name of the invoking user. os/user can
// fail on static builds without nss, so $USER and $LOGNAME serve as a
// fallback.
func (r *Resolver) Username() (string, error) {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return sanitizeUsername(u.Username), nil
	}

	for _, key := range []string{"USER", "LOGNAME"} {
		if name := sanitize(os.Getenv(key)); name != "" {
			return name, nil
		}
	}
	return "", ErrUnavailable
}

// RealName returns the user's full name from the account database
// (the GECOS field on unix). An account without one gets a display
// name derived from the username.
func (r *Resolver) RealName() (string, error) {
	if u, err := user.Current(); err == nil {
		if name := gecosName(u.Name); name != "" {
			return name, nil
		}
	}

	username, err := r.Username()
	if err != nil {
		return "", err
	}
	return displayName(username), nil
}

// gecosName extracts the full-name segment of a GECOS value: the part
// before the first comma, trimmed.
func gecosName(gecos string) string {
	name, _, _ := strings.Cut(gecos, ",")
	return sanitize(name)
}

// sanitizeUsername strips a Windows DOMAIN\ prefix and trims.
func sanitizeUsername(name string) string {
	if i := strings.LastIndexByte(name, '\\'); i >= 0 {
		name = name[i+1:]
	}
	return sanitize(name)
}
