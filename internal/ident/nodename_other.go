//go:build !unix

package ident

func unameNodename() (string, error) {
	return "", ErrUnavailable
}
