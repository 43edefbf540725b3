package ident

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on unix shell tools")
	}

	out, err := commandOutput(context.Background(), "echo", "hi")
	require.NoError(t, err)
	assert.Equal(t, "hi\n", out)
}

func TestCommandOutputExpiredContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := commandOutput(ctx, "hostname")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestCommandOutputMissingTool(t *testing.T) {
	_, err := commandOutput(context.Background(), "no-such-tool-hostid-test")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestCommandOutputTimeoutIsBounded(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on unix shell tools")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := commandOutput(ctx, "sleep", "30")

	require.ErrorIs(t, err, ErrUnavailable)
	// The command is killed at the deadline, not waited out.
	assert.Less(t, time.Since(start), 10*time.Second)
}
