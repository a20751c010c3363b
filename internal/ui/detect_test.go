package ui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearModeEnv(t *testing.T) {
	t.Helper()
	t.Setenv("OMARCHIVE_PLAIN", "")
	t.Setenv("CI", "")
	t.Setenv("NO_COLOR", "")
}

func TestDetectMode_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"OMARCHIVE_PLAIN", "OMARCHIVE_PLAIN", "1"},
		{"CI", "CI", "true"},
		{"NO_COLOR", "NO_COLOR", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearModeEnv(t)
			t.Setenv(tt.key, tt.value)
			assert.Equal(t, ModePlain, DetectMode(os.Stdout))
		})
	}
}

func TestDetectMode_NotATerminal(t *testing.T) {
	clearModeEnv(t)
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, ModePlain, DetectMode(f))
}

func TestDetectMode_Nil(t *testing.T) {
	clearModeEnv(t)
	assert.Equal(t, ModePlain, DetectMode(nil))
}
