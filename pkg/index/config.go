// File: pkg/index/config.go
package index

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
)

const (
	// DefaultOutput is the destination artifact used when no output flag is set.
	DefaultOutput = "codebase_index.md"
	// ConfigFileName is the optional per-root configuration file.
	ConfigFileName = ".codeindex.toml"
	// IgnoreFileName is the ignore file loaded from the traversal root.
	IgnoreFileName = ".gitignore"
)

// Arguments holds the configuration options for one indexing run.
type Arguments struct {
	Root       string   // Directory to index.
	Output     string   // Destination path for the index artifact.
	Excludes   []string // Additional exclusion patterns provided via command-line arguments.
	SimpleList bool     // If true, emit a sorted path list instead of the full index.
	InputList  string   // Optional manifest of relative paths replacing the recursive scan.
}

// FileConfig mirrors the optional .codeindex.toml at the traversal root.
// Its exclude entries behave exactly like -e patterns; output applies only
// when the output flag is left at its default.
type FileConfig struct {
	Output  string   `toml:"output"`
	Exclude []string `toml:"exclude"`
}

// loadFileConfig reads the per-root config file. A missing file is not an
// error and yields nil; a malformed file is fatal to the run.
func loadFileConfig(rootDir string, logger *zap.Logger) (*FileConfig, error) {
	path := filepath.Join(rootDir, ConfigFileName)
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		logger.Error("Failed to parse config file", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	logger.Debug("Loaded config file",
		zap.String("path", path),
		zap.Int("excludeCount", len(cfg.Exclude)))
	return &cfg, nil
}
