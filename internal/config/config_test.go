package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardtags/internal/tagtable"
)

func TestLoad_MissingFileUsesDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	layout, err := cfg.ParsedLayout()
	require.NoError(t, err)
	assert.Equal(t, tagtable.LayoutUpdated, layout)
}

func TestLoad_DecodesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
layout = "legacy"
indent = true

[[override]]
card = "Sure Gamble"
tag = "Gamble"

[[override]]
card = "Hedge Fund"
tag = "Economy"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Indent)
	assert.Equal(t, []tagtable.Override{
		{Card: "Sure Gamble", Tag: "Gamble"},
		{Card: "Hedge Fund", Tag: "Economy"},
	}, cfg.Overrides)

	layout, err := cfg.ParsedLayout()
	require.NoError(t, err)
	assert.Equal(t, tagtable.LayoutLegacy, layout)
}

func TestLoad_InvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("layout = "), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Indent = true

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestGetConfigFilePath_UsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "cardtags", "config.toml"), GetConfigFilePath())
}
