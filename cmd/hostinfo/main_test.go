package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lucheng0127/hostid/internal/ident"
)

func TestLangsFieldStaysOnOneLine(t *testing.T) {
	t.Setenv("LANGUAGE", "fr_FR:en_US")

	resolver := ident.NewResolver(ident.OSProvider{}, time.Second, zap.NewNop())
	fields := newFields(resolver, zap.NewNop())

	var buf bytes.Buffer
	require.NoError(t, fields.Print(context.Background(), &buf, "langs"))

	assert.Equal(t, "fr-FR, en-US\n", buf.String())
}

func TestFieldNamesRegistered(t *testing.T) {
	resolver := ident.NewResolver(ident.OSProvider{}, time.Second, zap.NewNop())
	fields := newFields(resolver, zap.NewNop())

	want := []string{
		"username", "realname", "devicename", "hostname",
		"distro", "platform", "arch", "desktop", "langs",
	}
	assert.Equal(t, want, fields.Names())
}
