package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aponysus/verdict/verb"
)

func TestParsePatch(t *testing.T) {
	data := []byte(`
unauthorized:
  message: "Session expired"
  severity: warning
server-error:
  message: "Backend unavailable"
  severity: critical
  reportable: true
  duration: 5s
  metadata:
    team: platform
`)
	patch, err := ParsePatch(data)
	require.NoError(t, err)
	require.Len(t, patch, 2)

	ua := patch[verb.Unauthorized]
	assert.Equal(t, "Session expired", ua.Message)
	assert.Equal(t, SeverityWarning, ua.Severity)
	assert.False(t, ua.Reportable)

	se := patch[verb.ServerError]
	assert.Equal(t, SeverityCritical, se.Severity)
	assert.True(t, se.Reportable)
	assert.Equal(t, 5*time.Second, se.Duration)
	assert.Equal(t, "platform", se.Metadata["team"])
}

func TestParsePatch_InvalidSeverity(t *testing.T) {
	_, err := ParsePatch([]byte("timeout:\n  message: x\n  severity: fatal\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid severity")
}

func TestParsePatch_InvalidDuration(t *testing.T) {
	_, err := ParsePatch([]byte("timeout:\n  message: x\n  duration: soon\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid duration")
}

func TestParsePatch_UnknownKeysKept(t *testing.T) {
	patch, err := ParsePatch([]byte("totally-custom:\n  message: x\n"))
	require.NoError(t, err)
	assert.Contains(t, patch, verb.Verb("totally-custom"))
}

func TestLoadPatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not-found:\n  message: gone\n"), 0o644))

	patch, err := LoadPatch(path)
	require.NoError(t, err)
	assert.Equal(t, "gone", patch[verb.NotFound].Message)

	_, err = LoadPatch(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
