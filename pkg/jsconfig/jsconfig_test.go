package jsconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkdirAll(t *testing.T, parts ...string) string {
	t.Helper()
	path := filepath.Join(parts...)
	require.NoError(t, os.MkdirAll(path, 0755))
	return path
}

func readConfig(t *testing.T, baseDir string) Config {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(baseDir, OutputName))
	require.NoError(t, err)
	var cfg Config
	require.NoError(t, json.Unmarshal(data, &cfg))
	return cfg
}

func TestGenerate_FixedRoots(t *testing.T) {
	baseDir := t.TempDir()
	mkdirAll(t, baseDir, "community", "addons", "web", "static", "src")
	mkdirAll(t, baseDir, "community", "addons", "nostatic")
	mkdirAll(t, baseDir, "enterprise", "account", "static", "src")

	require.NoError(t, Generate(baseDir, nil, nil))
	cfg := readConfig(t, baseDir)

	assert.Equal(t, ".", cfg.CompilerOptions.BaseURL)
	assert.Equal(t, []string{"community/addons/web/static/src/*"}, cfg.CompilerOptions.Paths["@web/*"])
	assert.Equal(t, []string{"enterprise/account/static/src/*"}, cfg.CompilerOptions.Paths["@account/*"])
	// Modules without static/src get no alias.
	assert.NotContains(t, cfg.CompilerOptions.Paths, "@nostatic/*")

	assert.Equal(t, []string{"community/addons/**/*", "enterprise/**/*"}, cfg.Include)
	assert.Equal(t, []string{"node_modules"}, cfg.Exclude)
}

func TestGenerate_ExtraRoots(t *testing.T) {
	baseDir := t.TempDir()
	mkdirAll(t, baseDir, "community", "addons")
	mkdirAll(t, baseDir, "enterprise")
	mkdirAll(t, baseDir, "extra_addons", "custom", "static", "src")

	extra := filepath.Join(baseDir, "extra_addons")
	require.NoError(t, Generate(baseDir, []string{extra}, nil))
	cfg := readConfig(t, baseDir)

	assert.Equal(t, []string{"extra_addons/custom/static/src/*"}, cfg.CompilerOptions.Paths["@custom/*"])
	assert.Contains(t, cfg.Include, "extra_addons/**/*")
}

func TestGenerate_NonDirectoryExtraRootSkipped(t *testing.T) {
	baseDir := t.TempDir()
	notADir := filepath.Join(baseDir, "not-a-dir.txt")
	require.NoError(t, os.WriteFile(notADir, []byte("x"), 0644))

	require.NoError(t, Generate(baseDir, []string{notADir}, nil))
	cfg := readConfig(t, baseDir)

	assert.Empty(t, cfg.CompilerOptions.Paths)
	assert.NotContains(t, cfg.Include, "not-a-dir.txt/**/*")
}

func TestGenerate_MissingFixedRootsSkipped(t *testing.T) {
	// Neither community/addons nor enterprise exists; the run still succeeds
	// and writes an artifact with no aliases.
	baseDir := t.TempDir()
	require.NoError(t, Generate(baseDir, nil, nil))

	cfg := readConfig(t, baseDir)
	assert.Empty(t, cfg.CompilerOptions.Paths)
	assert.Equal(t, []string{"node_modules"}, cfg.Exclude)
}
