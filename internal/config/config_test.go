package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	return dir
}

func writeRaw(t *testing.T, home, body string) {
	t.Helper()
	cfgDir := filepath.Join(home, ".qbank")
	require.NoError(t, os.MkdirAll(cfgDir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config"), []byte(body), 0600))
}

func TestSaveConfigCreatesDirectories(t *testing.T) {
	withHome(t)

	cfg := Default()
	require.NoError(t, cfg.Save())

	info, err := os.Stat(Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadConfigNonExistentReturnsDefaults(t *testing.T) {
	home := withHome(t)

	cfg, err := Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "not found")
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultDataSource, cfg.DataSource)
	assert.Equal(t, DefaultPageSize, cfg.PageSize)
	assert.Equal(t, filepath.Join(home, ".qbank", "store"), cfg.StoreDir)
}

func TestSaveLoadRoundtripWithAllFields(t *testing.T) {
	withHome(t)

	original := Config{
		DataSource:    "https://example.test/questions.json",
		PageSize:      20,
		StoreDir:      "/tmp/qbank-store",
		SearchDelayMS: 150,
		LogLevel:      "debug",
		VimKeys:       true,
	}
	require.NoError(t, original.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, original, *loaded)
}

func TestLoadConfigEmptyFileUsesDefaults(t *testing.T) {
	home := withHome(t)
	writeRaw(t, home, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, cfg.PageSize)
	assert.Equal(t, DefaultSearchDelayMS, cfg.SearchDelayMS)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	home := withHome(t)
	writeRaw(t, home, "invalid: yaml: content:")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadConfigNormalizesBadValues(t *testing.T) {
	home := withHome(t)
	writeRaw(t, home, "page_size: -3\nsearch_delay_ms: -1\nlog_level: \" WARN \"\nstore_dir: ~/elsewhere\ndata_source: \"  \"\n")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, cfg.PageSize)
	assert.Equal(t, DefaultSearchDelayMS, cfg.SearchDelayMS)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, filepath.Join(home, "elsewhere"), cfg.StoreDir)
	assert.Equal(t, DefaultDataSource, cfg.DataSource)
}

func TestLoadConfigZeroDelayAllowed(t *testing.T) {
	home := withHome(t)
	writeRaw(t, home, "search_delay_ms: 0\n")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.SearchDelayMS)
}

func TestConfigPermissionsStrictlyEnforced(t *testing.T) {
	withHome(t)

	require.NoError(t, Default().Save())
	require.NoError(t, os.Chmod(Path(), 0644))

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "permissions")
}

func TestPathReturnsCorrectLocation(t *testing.T) {
	path := Path()
	assert.Contains(t, path, ".qbank")
	assert.Contains(t, path, "config")
}
