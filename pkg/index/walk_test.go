package index

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCollect_PrunesExcludedDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	writeFixtureFile(t, filepath.Join(tmpDir, "src", "main.go"), "package main")
	writeFixtureFile(t, filepath.Join(tmpDir, "node_modules", "dep", "index.js"), "x")

	rs := NewRuleSet(nil)
	rs.AddPatterns(DefaultExcludes...)

	entries, err := Collect(tmpDir, rs, zap.NewNop())
	require.NoError(t, err)

	var relPaths []string
	for _, e := range entries {
		relPaths = append(relPaths, e.RelPath)
	}
	assert.Equal(t, []string{"src", "src/main.go"}, relPaths)
}

func TestCollect_MarksDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	writeFixtureFile(t, filepath.Join(tmpDir, "pkg", "lib.go"), "package lib")

	entries, err := Collect(tmpDir, NewRuleSet(nil), zap.NewNop())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].IsDir)
	assert.Equal(t, "pkg", entries[0].RelPath)
	assert.False(t, entries[1].IsDir)
	assert.Equal(t, "pkg/lib.go", entries[1].RelPath)
}

func TestCollect_MissingRoot(t *testing.T) {
	_, err := Collect(filepath.Join(t.TempDir(), "absent"), NewRuleSet(nil), zap.NewNop())
	assert.Error(t, err)
}

func TestReadManifest(t *testing.T) {
	tmpDir := t.TempDir()
	manifest := filepath.Join(tmpDir, "manifest.txt")
	require.NoError(t, os.WriteFile(manifest, []byte("src/a.py\n\n  src/b.py  \n\n"), 0644))

	paths, err := ReadManifest(manifest)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/a.py", "src/b.py"}, paths)
}

func TestReadManifest_Missing(t *testing.T) {
	_, err := ReadManifest(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}
