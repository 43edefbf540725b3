package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlatformFor(t *testing.T) {
	tests := []struct {
		goos string
		want Platform
	}{
		{"linux", PlatformLinux},
		{"darwin", PlatformMac},
		{"windows", PlatformWindows},
		{"freebsd", PlatformBSD},
		{"openbsd", PlatformBSD},
		{"solaris", PlatformIllumos},
		{"ios", PlatformIOS},
		{"android", PlatformAndroid},
		{"plan9", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.want, platformFor(tt.goos))
		})
	}
}

func TestArchFor(t *testing.T) {
	tests := []struct {
		goarch string
		want   Arch
	}{
		{"amd64", ArchX64},
		{"386", ArchI686},
		{"arm64", ArchArm64},
		{"arm", ArchArm32},
		{"riscv64", ArchRiscv64},
		{"wasm", ArchWasm32},
		{"loong64", Arch("loong64")},
	}

	for _, tt := range tests {
		t.Run(tt.goarch, func(t *testing.T) {
			assert.Equal(t, tt.want, archFor(tt.goarch))
		})
	}
}

func TestCurrentPlatformKnown(t *testing.T) {
	// The test targets are all mapped platforms.
	assert.NotEqual(t, PlatformUnknown, CurrentPlatform())
	assert.NotEmpty(t, CurrentArch())
}
