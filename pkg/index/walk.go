// File: pkg/index/walk.go
package index

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Entry is one path produced by the traversal, relative to the root.
type Entry struct {
	RelPath string
	IsDir   bool
}

// Collect enumerates every non-excluded path under rootDir in lexical
// per-directory order. Directories that match an exclusion rule are pruned
// without descending; paths that cannot be accessed are logged and skipped.
func Collect(rootDir string, rs *RuleSet, logger *zap.Logger) ([]Entry, error) {
	var entries []Entry
	walkErr := filepath.WalkDir(rootDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == rootDir {
				return err // The root itself must be enumerable.
			}
			logger.Warn("Error accessing path during traversal", zap.String("path", p), zap.Error(err))
			return nil
		}
		if p == rootDir {
			return nil
		}

		relPath, relErr := filepath.Rel(rootDir, p)
		if relErr != nil {
			logger.Warn("Failed to determine relative path", zap.String("path", p), zap.Error(relErr))
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if rs.MatchesPath(relPath) {
			if d.IsDir() {
				logger.Debug("Skipping ignored directory during traversal", zap.String("directory", p))
				return filepath.SkipDir
			}
			return nil
		}

		entries = append(entries, Entry{RelPath: relPath, IsDir: d.IsDir()})
		return nil
	})
	if walkErr != nil {
		logger.Error("Error during file traversal", zap.Error(walkErr))
		return nil, fmt.Errorf("failed to walk %s: %w", rootDir, walkErr)
	}

	logger.Debug("Completed traversal", zap.String("root", rootDir), zap.Int("entryCount", len(entries)))
	return entries, nil
}

// ReadManifest loads an explicit list of relative paths, one per line. Blank
// lines are skipped; an unreadable manifest is fatal to the run.
func ReadManifest(fpath string) ([]string, error) {
	content, err := os.ReadFile(fpath)
	if err != nil {
		return nil, fmt.Errorf("failed to read input list %s: %w", fpath, err)
	}

	var paths []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			paths = append(paths, line)
		}
	}
	return paths, nil
}
