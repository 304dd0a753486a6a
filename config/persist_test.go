package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	require.NoError(t, WriteDefault(path, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# wrapgen configuration"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "com.example.app.layout", cfg.PackageName)
	assert.Equal(t, filepath.Join(dir, DefaultResourcesDir), cfg.ResourcesDir)
	assert.Equal(t, DefaultDebounceMS, cfg.Watch.DebounceMS)
}

func TestWriteDefault_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("package_name = \"keep.me\"\n"), 0o644))

	assert.Error(t, WriteDefault(path, false))
	data, _ := os.ReadFile(path)
	assert.Contains(t, string(data), "keep.me")

	require.NoError(t, WriteDefault(path, true))
	data, _ = os.ReadFile(path)
	assert.NotContains(t, string(data), "keep.me")
}
