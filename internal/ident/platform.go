package ident

import "runtime"

// Platform is the family of operating system the process runs on.
type Platform string

const (
	PlatformLinux   Platform = "Linux"
	PlatformBSD     Platform = "BSD"
	PlatformWindows Platform = "Windows"
	PlatformMac     Platform = "macOS"
	PlatformIllumos Platform = "illumos"
	PlatformIOS     Platform = "iOS"
	PlatformAndroid Platform = "Android"
	PlatformUnknown Platform = "Unknown"
)

// Arch is the CPU architecture, in the names the wider ecosystem uses
// (uname -m style) rather than Go's GOARCH values.
type Arch string

const (
	ArchX64     Arch = "x86_64"
	ArchI686    Arch = "i686"
	ArchArm64   Arch = "aarch64"
	ArchArm32   Arch = "arm"
	ArchRiscv64 Arch = "riscv64"
	ArchPpc64   Arch = "powerpc64"
	ArchS390x   Arch = "s390x"
	ArchWasm32  Arch = "wasm32"
)

// CurrentPlatform reports the platform of the running process.
func CurrentPlatform() Platform {
	return platformFor(runtime.GOOS)
}

// CurrentArch reports the CPU architecture of the running process.
func CurrentArch() Arch {
	return archFor(runtime.GOARCH)
}

func platformFor(goos string) Platform {
	switch goos {
	case "linux":
		return PlatformLinux
	case "darwin":
		return PlatformMac
	case "windows":
		return PlatformWindows
	case "freebsd", "openbsd", "netbsd", "dragonfly":
		return PlatformBSD
	case "illumos", "solaris":
		return PlatformIllumos
	case "ios":
		return PlatformIOS
	case "android":
		return PlatformAndroid
	default:
		return PlatformUnknown
	}
}

func archFor(goarch string) Arch {
	switch goarch {
	case "amd64":
		return ArchX64
	case "386":
		return ArchI686
	case "arm64":
		return ArchArm64
	case "arm":
		return ArchArm32
	case "riscv64":
		return ArchRiscv64
	case "ppc64", "ppc64le":
		return ArchPpc64
	case "s390x":
		return ArchS390x
	case "wasm":
		return ArchWasm32
	default:
		return Arch(goarch)
	}
}
