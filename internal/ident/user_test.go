package ident

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGecosName(t *testing.T) {
	tests := []struct {
		gecos string
		want  string
	}{
		{"Ada Lovelace,Room 1,555-0100,,", "Ada Lovelace"},
		{"Ada Lovelace", "Ada Lovelace"},
		{",,,", ""},
		{"", ""},
		{"  padded  ,office", "padded"},
	}

	for _, tt := range tests {
		t.Run(tt.gecos, func(t *testing.T) {
			assert.Equal(t, tt.want, gecosName(tt.gecos))
		})
	}
}

func TestSanitizeUsername(t *testing.T) {
	assert.Equal(t, "ada", sanitizeUsername(`CORP\ada`))
	assert.Equal(t, "ada", sanitizeUsername("ada\n"))
	assert.Equal(t, "ada", sanitizeUsername("ada"))
}

func TestUsernameNonEmpty(t *testing.T) {
	// Guarantee the env fallback answers even on stripped-down CI hosts.
	t.Setenv("USER", "tester")

	r := NewResolver(fakeProvider{}, time.Second, zap.NewNop())

	name, err := r.Username()
	require.NoError(t, err)
	assert.NotEmpty(t, name)
}
