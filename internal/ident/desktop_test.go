package ident

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDesktopEnv(t *testing.T) {
	r := NewResolver(fakeProvider{}, time.Second, zap.NewNop())

	switch runtime.GOOS {
	case "darwin", "ios":
		got, err := r.DesktopEnv()
		require.NoError(t, err)
		assert.Equal(t, "Aqua", got)

	case "windows":
		got, err := r.DesktopEnv()
		require.NoError(t, err)
		assert.Equal(t, "Windows", got)

	default:
		t.Setenv("XDG_CURRENT_DESKTOP", "")
		t.Setenv("DESKTOP_SESSION", "")

		got, err := r.DesktopEnv()
		require.NoError(t, err)
		assert.Equal(t, "Unknown", got)

		t.Setenv("XDG_CURRENT_DESKTOP", "GNOME")
		got, err = r.DesktopEnv()
		require.NoError(t, err)
		assert.Equal(t, "GNOME", got)
	}
}
