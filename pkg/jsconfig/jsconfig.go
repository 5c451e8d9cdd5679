// Package jsconfig generates an editor path-resolution config from a fixed
// addon directory layout. Every module directory containing a static/src
// subpath yields one alias entry mapping "@<module>/*" to that subpath.
package jsconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// OutputName is the generated artifact, written at the base directory.
const OutputName = "jsconfig.json"

// Config models the generated jsconfig.json document.
type Config struct {
	CompilerOptions CompilerOptions `json:"compilerOptions"`
	Include         []string        `json:"include"`
	Exclude         []string        `json:"exclude"`
}

// CompilerOptions holds the baseUrl and the alias → subpath mapping.
type CompilerOptions struct {
	BaseURL string              `json:"baseUrl"`
	Paths   map[string][]string `json:"paths"`
}

// Generate scans community/addons and enterprise under baseDir as permanent
// roots, plus each extra root named on the command line, and writes the
// jsconfig.json artifact at the base directory.
func Generate(baseDir string, extraRoots []string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return fmt.Errorf("failed to resolve base directory: %w", err)
	}

	aliases := map[string][]string{}

	if err := collectAliases(filepath.Join(absBase, "community", "addons"), "community/addons", aliases, logger); err != nil {
		return err
	}
	if err := collectAliases(filepath.Join(absBase, "enterprise"), "enterprise", aliases, logger); err != nil {
		return err
	}

	include := []string{"community/addons/**/*", "enterprise/**/*"}
	for _, extra := range extraRoots {
		absExtra, absErr := filepath.Abs(extra)
		if absErr != nil {
			logger.Warn("Failed to resolve extra addon root, skipping", zap.String("root", extra), zap.Error(absErr))
			continue
		}
		info, statErr := os.Stat(absExtra)
		if statErr != nil || !info.IsDir() {
			logger.Warn("Extra addon root is not a directory, skipping", zap.String("root", extra))
			continue
		}

		relRoot, relErr := filepath.Rel(absBase, absExtra)
		if relErr != nil {
			relRoot = absExtra // Fallback to absolute path if relative path fails
		}
		relRoot = filepath.ToSlash(relRoot)

		if err := collectAliases(absExtra, relRoot, aliases, logger); err != nil {
			return err
		}
		include = append(include, relRoot+"/**/*")
	}

	cfg := Config{
		CompilerOptions: CompilerOptions{BaseURL: ".", Paths: aliases},
		Include:         include,
		Exclude:         []string{"node_modules"},
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode jsconfig: %w", err)
	}

	outPath := filepath.Join(absBase, OutputName)
	if err := os.WriteFile(outPath, append(data, '\n'), 0644); err != nil {
		logger.Error("Failed to write jsconfig", zap.String("path", outPath), zap.Error(err))
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	logger.Info("Generated jsconfig.json",
		zap.String("path", outPath),
		zap.Int("aliasCount", len(aliases)),
		zap.Int("extraRootCount", len(extraRoots)))
	return nil
}

// collectAliases adds one alias per module under rootAbs that contains a
// static/src directory. The alias target is rooted at relRoot, the root's
// path relative to the base directory. A missing root is skipped with a
// warning rather than failing the run.
func collectAliases(rootAbs, relRoot string, aliases map[string][]string, logger *zap.Logger) error {
	entries, err := os.ReadDir(rootAbs)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("Addon root does not exist, skipping", zap.String("root", rootAbs))
			return nil
		}
		return fmt.Errorf("failed to read addon root %s: %w", rootAbs, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		staticSrc := filepath.Join(rootAbs, entry.Name(), "static", "src")
		info, statErr := os.Stat(staticSrc)
		if statErr != nil || !info.IsDir() {
			continue
		}
		aliases["@"+entry.Name()+"/*"] = []string{relRoot + "/" + entry.Name() + "/static/src/*"}
		logger.Debug("Added module alias", zap.String("module", entry.Name()), zap.String("root", relRoot))
	}
	return nil
}
