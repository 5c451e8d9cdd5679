// File: pkg/index/index.go
package index

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/zap"
)

// Run executes one indexing pass. It resolves the root, assembles the
// exclusion rule set from the defaults, command-line patterns, optional
// config file, and any .gitignore at the root, then writes either the full
// Markdown index or the simple path list to the output artifact.
func Run(args *Arguments, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()

	rootDir, err := filepath.Abs(args.Root)
	if err != nil {
		return fmt.Errorf("failed to resolve root directory: %w", err)
	}
	info, err := os.Stat(rootDir)
	if err != nil {
		logger.Error("Root directory is not accessible", zap.String("root", rootDir), zap.Error(err))
		return fmt.Errorf("root directory %s is not accessible: %w", rootDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root path %s is not a directory", rootDir)
	}

	output := args.Output
	if output == "" {
		output = DefaultOutput
	}
	excludes := args.Excludes

	fileCfg, err := loadFileConfig(rootDir, logger)
	if err != nil {
		return err
	}
	if fileCfg != nil {
		excludes = append(excludes, fileCfg.Exclude...)
		if output == DefaultOutput && fileCfg.Output != "" {
			output = fileCfg.Output
		}
	}

	rs := NewRuleSet(logger)
	rs.AddPatterns(DefaultExcludes...)
	rs.AddPatterns(excludes...)
	// Exclude the artifact itself so a run never indexes its own output.
	rs.AddPatterns(filepath.Base(output))
	if err := rs.AddIgnoreFile(filepath.Join(rootDir, IgnoreFileName)); err != nil {
		return fmt.Errorf("failed to load ignore patterns: %w", err)
	}

	var manifest []string
	useManifest := args.InputList != ""
	if useManifest {
		manifest, err = ReadManifest(args.InputList)
		if err != nil {
			logger.Error("Failed to read input list", zap.String("inputList", args.InputList), zap.Error(err))
			return err
		}
		logger.Debug("Loaded input list", zap.String("inputList", args.InputList), zap.Int("pathCount", len(manifest)))
	}

	logger.Info("Starting indexing run",
		zap.String("root", rootDir),
		zap.String("output", output),
		zap.Bool("simpleList", args.SimpleList),
		zap.Bool("useManifest", useManifest))

	outFile, err := os.Create(output)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", output), zap.Error(err))
		return fmt.Errorf("failed to create output file %s: %w", output, err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			logger.Error("Failed to close output file", zap.String("file", output), zap.Error(closeErr))
		}
	}()
	writer := bufio.NewWriter(outFile)

	if args.SimpleList {
		err = writeSimpleList(writer, rootDir, rs, manifest, useManifest, logger)
	} else {
		err = writeFullIndex(writer, rootDir, rs, manifest, useManifest, logger)
	}
	if err != nil {
		return err
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", output), zap.Error(err))
		return fmt.Errorf("failed to flush output: %w", err)
	}

	logger.Info("Index written",
		zap.String("output", output),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}

// writeSimpleList emits one line per non-excluded path relative to root. A
// recursive scan is sorted lexicographically by full relative path string;
// manifest entries keep their listed order and are checked only for
// existence and non-exclusion.
func writeSimpleList(w *bufio.Writer, rootDir string, rs *RuleSet, manifest []string, useManifest bool, logger *zap.Logger) error {
	if useManifest {
		for _, relPath := range manifest {
			if _, err := os.Stat(filepath.Join(rootDir, relPath)); err != nil {
				logger.Debug("Skipping missing manifest entry", zap.String("path", relPath))
				continue
			}
			if rs.MatchesPath(relPath) {
				continue
			}
			if _, err := fmt.Fprintln(w, relPath); err != nil {
				return fmt.Errorf("failed to write list entry: %w", err)
			}
		}
		return nil
	}

	entries, err := Collect(rootDir, rs, logger)
	if err != nil {
		return err
	}
	relPaths := make([]string, 0, len(entries))
	for _, e := range entries {
		relPaths = append(relPaths, e.RelPath)
	}
	sort.Strings(relPaths)

	for _, p := range relPaths {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return fmt.Errorf("failed to write list entry: %w", err)
		}
	}
	return nil
}

// writeFullIndex emits the header, the directory-structure section (scan mode
// only), and one content block per non-excluded regular file. Blocks are
// streamed to the writer as they are produced.
func writeFullIndex(w *bufio.Writer, rootDir string, rs *RuleSet, manifest []string, useManifest bool, logger *zap.Logger) error {
	if _, err := w.WriteString("# Codebase Index\n\n"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if !useManifest {
		tree := RenderTree(rootDir, rs, logger)
		if _, err := w.WriteString("## Directory Structure\n\n```\n" + tree + "\n```\n\n"); err != nil {
			return fmt.Errorf("failed to write tree section: %w", err)
		}
	}

	if _, err := w.WriteString("## File Contents\n\n"); err != nil {
		return fmt.Errorf("failed to write content header: %w", err)
	}

	var relPaths []string
	if useManifest {
		for _, relPath := range manifest {
			info, err := os.Stat(filepath.Join(rootDir, relPath))
			if err != nil || !info.Mode().IsRegular() {
				logger.Debug("Skipping manifest entry", zap.String("path", relPath))
				continue
			}
			if rs.MatchesPath(relPath) {
				continue
			}
			relPaths = append(relPaths, relPath)
		}
	} else {
		entries, err := Collect(rootDir, rs, logger)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if !e.IsDir {
				relPaths = append(relPaths, e.RelPath)
			}
		}
	}

	blockCount := 0
	for _, relPath := range relPaths {
		block, err := FormatFile(filepath.Join(rootDir, relPath), relPath, logger)
		if err != nil {
			logger.Warn("Failed to format file", zap.String("path", relPath), zap.Error(err))
			continue
		}
		if block == "" {
			continue // Binary file, omitted.
		}
		if _, err := w.WriteString(block); err != nil {
			return fmt.Errorf("failed to write content block: %w", err)
		}
		blockCount++
	}

	logger.Debug("Wrote content blocks", zap.Int("fileCount", blockCount))
	return nil
}
