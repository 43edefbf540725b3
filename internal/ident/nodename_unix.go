//go:build unix

package ident

import (
	"bytes"
	"fmt"

	"golang.org/x/sys/unix"
)

// unameNodename reads the nodename field of uname(2).
func unameNodename() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", fmt.Errorf("uname: %w", err)
	}

	name := uts.Nodename[:]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	if len(name) == 0 {
		return "", ErrUnavailable
	}
	return string(name), nil
}
